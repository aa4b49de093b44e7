package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type PaymentsHandler struct {
	intents IntentCreator
}

func NewPaymentsHandler(intents IntentCreator) *PaymentsHandler {
	return &PaymentsHandler{intents: intents}
}

type PaymentIntentRequest struct {
	Price *float64 `json:"price" binding:"required"`
}

func (h *PaymentsHandler) CreateIntent(ctx *gin.Context) {
	var req PaymentIntentRequest

	if !BindJSON(ctx, &req) {
		return
	}

	secret, err := h.intents.CreateIntent(ctx.Request.Context(), *req.Price)

	if err != nil {
		RespondInternal(ctx, "Could not create payment intent", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
