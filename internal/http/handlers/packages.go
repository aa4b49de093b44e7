package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/geocoder89/mealshare/internal/cache"
	"github.com/geocoder89/mealshare/internal/domain/membership"
	"github.com/gin-gonic/gin"
)

const packagesCacheKey = "packages:all"

type PackagesRepo interface {
	List(ctx context.Context) ([]membership.Package, error)
}

// PackagesHandler serves the membership tiers from cache when it can. Cache
// failures only cost a store read.
type PackagesHandler struct {
	repo  PackagesRepo
	cache cache.Cache
	log   *slog.Logger
}

// NewPackagesHandler accepts a nil cache.
func NewPackagesHandler(repo PackagesRepo, c cache.Cache, log *slog.Logger) *PackagesHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PackagesHandler{repo: repo, cache: c, log: log}
}

func (h *PackagesHandler) List(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()

	if h.cache != nil {
		var cached []membership.Package
		hit, err := cache.GetJSON(reqCtx, h.cache, packagesCacheKey, &cached)
		if err != nil {
			h.log.WarnContext(reqCtx, "packages cache read failed", "err", err)
		}
		if hit {
			ctx.Header("X-Cache", "HIT")
			RespondJSONWithETag(ctx, http.StatusOK, cached)
			return
		}
	}

	pkgs, err := h.repo.List(reqCtx)

	if err != nil {
		RespondInternal(ctx, "Could not list packages", err)
		return
	}

	if h.cache != nil {
		if err := cache.SetJSON(reqCtx, h.cache, packagesCacheKey, pkgs); err != nil {
			h.log.WarnContext(reqCtx, "packages cache write failed", "err", err)
		}
	}

	ctx.Header("X-Cache", "MISS")
	RespondJSONWithETag(ctx, http.StatusOK, pkgs)
}
