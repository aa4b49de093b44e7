package handlers

import (
	"context"
	"net/http"

	"github.com/geocoder89/mealshare/internal/domain/result"
	"github.com/geocoder89/mealshare/internal/domain/review"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewsRepo interface {
	List(ctx context.Context) ([]review.Review, error)
	ListByEmail(ctx context.Context, email string) ([]review.Review, error)
	Create(ctx context.Context, rv review.Review) (result.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (result.DeleteResult, error)
}

type ReviewsHandler struct {
	repo ReviewsRepo
}

func NewReviewsHandler(repo ReviewsRepo) *ReviewsHandler {
	return &ReviewsHandler{repo: repo}
}

func (h *ReviewsHandler) List(ctx *gin.Context) {
	reviews, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list reviews", err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

func (h *ReviewsHandler) ListByEmail(ctx *gin.Context) {
	reviews, err := h.repo.ListByEmail(ctx.Request.Context(), ctx.Param("email"))

	if err != nil {
		RespondInternal(ctx, "Could not list reviews", err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

func (h *ReviewsHandler) Create(ctx *gin.Context) {
	var req review.CreateReviewRequest

	if !BindJSON(ctx, &req) {
		return
	}

	res, err := h.repo.Create(ctx.Request.Context(), req.ToReview())

	if err != nil {
		RespondInternal(ctx, "Could not create review", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (h *ReviewsHandler) Delete(ctx *gin.Context) {
	id, ok := objectIDParam(ctx, "id")
	if !ok {
		return
	}

	res, err := h.repo.Delete(ctx.Request.Context(), id)

	if err != nil {
		RespondInternal(ctx, "Could not delete review", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}
