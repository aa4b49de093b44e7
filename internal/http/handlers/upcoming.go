package handlers

import (
	"context"
	"net/http"

	"github.com/geocoder89/mealshare/internal/domain/meal"
	"github.com/geocoder89/mealshare/internal/domain/result"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpcomingRepo interface {
	List(ctx context.Context) ([]meal.Meal, error)
	Create(ctx context.Context, m meal.Meal) (result.InsertResult, error)
	Like(ctx context.Context, id primitive.ObjectID, actor string) (meal.LikeOutcome, error)
}

type UpcomingHandler struct {
	repo UpcomingRepo
}

func NewUpcomingHandler(repo UpcomingRepo) *UpcomingHandler {
	return &UpcomingHandler{repo: repo}
}

func (h *UpcomingHandler) List(ctx *gin.Context) {
	meals, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list upcoming meals", err)
		return
	}

	ctx.JSON(http.StatusOK, meals)
}

func (h *UpcomingHandler) Create(ctx *gin.Context) {
	var req meal.CreateMealRequest

	if !BindJSON(ctx, &req) {
		return
	}

	res, err := h.repo.Create(ctx.Request.Context(), req.ToMeal())

	if err != nil {
		RespondInternal(ctx, "Could not create upcoming meal", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (h *UpcomingHandler) Like(ctx *gin.Context) {
	like(ctx, h.repo)
}
