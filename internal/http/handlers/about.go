package handlers

import (
	"context"
	"net/http"

	"github.com/geocoder89/mealshare/internal/domain/profile"
	"github.com/geocoder89/mealshare/internal/domain/result"
	"github.com/gin-gonic/gin"
)

type AboutRepo interface {
	GetByEmail(ctx context.Context, email string) (*profile.AboutMe, error)
	Create(ctx context.Context, a profile.AboutMe) (result.InsertResult, error)
}

type AboutHandler struct {
	repo AboutRepo
}

func NewAboutHandler(repo AboutRepo) *AboutHandler {
	return &AboutHandler{repo: repo}
}

func (h *AboutHandler) GetByEmail(ctx *gin.Context) {
	about, err := h.repo.GetByEmail(ctx.Request.Context(), ctx.Param("email"))

	if err != nil {
		RespondInternal(ctx, "Could not fetch profile", err)
		return
	}

	ctx.JSON(http.StatusOK, about)
}

func (h *AboutHandler) Create(ctx *gin.Context) {
	var req profile.CreateAboutRequest

	if !BindJSON(ctx, &req) {
		return
	}

	res, err := h.repo.Create(ctx.Request.Context(), req.ToAboutMe())

	if err != nil {
		RespondInternal(ctx, "Could not create profile", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}
