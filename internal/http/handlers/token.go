package handlers

import (
	"errors"
	"net/http"

	"github.com/geocoder89/mealshare/internal/auth"
	"github.com/gin-gonic/gin"
)

type TokenIssuer interface {
	Issue(payload map[string]any) (string, error)
}

type TokenHandler struct {
	tokens TokenIssuer
}

func NewTokenHandler(tokens TokenIssuer) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue signs whatever identity payload the client sends, as long as it is a
// JSON object carrying an email.
func (h *TokenHandler) Issue(ctx *gin.Context) {
	var payload map[string]any

	if !BindJSON(ctx, &payload) {
		return
	}

	token, err := h.tokens.Issue(payload)

	if err != nil {
		if errors.Is(err, auth.ErrMissingEmail) {
			RespondBadRequest(ctx, "Invalid request body", gin.H{
				"fields": []FieldError{{Field: "email", Rule: "required", Message: validationMessage("required", "")}},
			})
			return
		}

		RespondInternal(ctx, "Could not issue token", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
