package handlers

import (
	"context"
	"net/http"

	"github.com/geocoder89/mealshare/internal/domain/mealrequest"
	"github.com/geocoder89/mealshare/internal/domain/result"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MealRequestsRepo interface {
	List(ctx context.Context) ([]mealrequest.MealRequest, error)
	ListByEmail(ctx context.Context, email string) ([]mealrequest.MealRequest, error)
	Create(ctx context.Context, req mealrequest.MealRequest) (result.InsertResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (result.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (result.DeleteResult, error)
}

type MealRequestsHandler struct {
	repo MealRequestsRepo
}

func NewMealRequestsHandler(repo MealRequestsRepo) *MealRequestsHandler {
	return &MealRequestsHandler{repo: repo}
}

func (h *MealRequestsHandler) List(ctx *gin.Context) {
	reqs, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list meal requests", err)
		return
	}

	ctx.JSON(http.StatusOK, reqs)
}

func (h *MealRequestsHandler) ListByEmail(ctx *gin.Context) {
	reqs, err := h.repo.ListByEmail(ctx.Request.Context(), ctx.Param("email"))

	if err != nil {
		RespondInternal(ctx, "Could not list meal requests", err)
		return
	}

	ctx.JSON(http.StatusOK, reqs)
}

func (h *MealRequestsHandler) Create(ctx *gin.Context) {
	var req mealrequest.CreateRequest

	if !BindJSON(ctx, &req) {
		return
	}

	res, err := h.repo.Create(ctx.Request.Context(), req.ToMealRequest())

	if err != nil {
		RespondInternal(ctx, "Could not create meal request", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (h *MealRequestsHandler) UpdateStatus(ctx *gin.Context) {
	id, ok := objectIDParam(ctx, "id")
	if !ok {
		return
	}

	var req mealrequest.UpdateStatusRequest

	if !BindJSON(ctx, &req) {
		return
	}

	res, err := h.repo.UpdateStatus(ctx.Request.Context(), id, req.Status)

	if err != nil {
		RespondInternal(ctx, "Could not update meal request", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (h *MealRequestsHandler) Delete(ctx *gin.Context) {
	id, ok := objectIDParam(ctx, "id")
	if !ok {
		return
	}

	res, err := h.repo.Delete(ctx.Request.Context(), id)

	if err != nil {
		RespondInternal(ctx, "Could not delete meal request", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}
