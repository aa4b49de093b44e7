package handlers

import (
	"context"
	"net/http"

	"github.com/geocoder89/mealshare/internal/domain/meal"
	"github.com/geocoder89/mealshare/internal/domain/result"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MealsRepo interface {
	List(ctx context.Context) ([]meal.Meal, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*meal.Meal, error)
	Create(ctx context.Context, m meal.Meal) (result.InsertResult, error)
	IncrementReviews(ctx context.Context, id primitive.ObjectID, delta int64) (result.UpdateResult, error)
	Like(ctx context.Context, id primitive.ObjectID, actor string) (meal.LikeOutcome, error)
	Delete(ctx context.Context, id primitive.ObjectID) (result.DeleteResult, error)
}

type MealsHandler struct {
	repo MealsRepo
}

func NewMealsHandler(repo MealsRepo) *MealsHandler {
	return &MealsHandler{repo: repo}
}

func (h *MealsHandler) List(ctx *gin.Context) {
	meals, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list meals", err)
		return
	}

	ctx.JSON(http.StatusOK, meals)
}

func (h *MealsHandler) GetByID(ctx *gin.Context) {
	id, ok := objectIDParam(ctx, "id")
	if !ok {
		return
	}

	m, err := h.repo.GetByID(ctx.Request.Context(), id)

	if err != nil {
		RespondInternal(ctx, "Could not fetch meal", err)
		return
	}

	ctx.JSON(http.StatusOK, m)
}

func (h *MealsHandler) Create(ctx *gin.Context) {
	var req meal.CreateMealRequest

	if !BindJSON(ctx, &req) {
		return
	}

	res, err := h.repo.Create(ctx.Request.Context(), req.ToMeal())

	if err != nil {
		RespondInternal(ctx, "Could not create meal", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// UpdateReviews bumps the review counter by the caller's delta. Without the
// "review" discriminator nothing is written and the request is rejected.
func (h *MealsHandler) UpdateReviews(ctx *gin.Context) {
	id, ok := objectIDParam(ctx, "id")
	if !ok {
		return
	}

	var req meal.ReviewCountRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if req.Check != meal.ReviewCheck {
		RespondUnprocessable(ctx, "review_check_rejected", `check must be "review"; nothing was updated`)
		return
	}

	res, err := h.repo.IncrementReviews(ctx.Request.Context(), id, *req.Reviewed)

	if err != nil {
		RespondInternal(ctx, "Could not update reviews", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (h *MealsHandler) Like(ctx *gin.Context) {
	like(ctx, h.repo)
}

func (h *MealsHandler) Delete(ctx *gin.Context) {
	id, ok := objectIDParam(ctx, "id")
	if !ok {
		return
	}

	res, err := h.repo.Delete(ctx.Request.Context(), id)

	if err != nil {
		RespondInternal(ctx, "Could not delete meal", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

type liker interface {
	Like(ctx context.Context, id primitive.ObjectID, actor string) (meal.LikeOutcome, error)
}

// like is shared by meals and upcoming meals. A repeat like answers 200 with
// a message instead of an update result.
func like(ctx *gin.Context, repo liker) {
	id, ok := objectIDParam(ctx, "id")
	if !ok {
		return
	}

	var req meal.LikeRequest

	if !BindJSON(ctx, &req) {
		return
	}

	out, err := repo.Like(ctx.Request.Context(), id, req.Liked)

	if err != nil {
		RespondInternal(ctx, "Could not like meal", err)
		return
	}

	if out.AlreadyLiked {
		ctx.JSON(http.StatusOK, gin.H{"message": "Already liked"})
		return
	}

	ctx.JSON(http.StatusOK, out.Update)
}
