package handlers

import (
	"net/http"

	"github.com/geocoder89/mealshare/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	v, ok := ctx.Get(middlewares.CtxRequestID)

	if ok {
		s, ok := v.(string)
		if ok && s != "" {
			return s
		}
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.AbortWithStatusJSON(status, gin.H{
		"error": APIError{
			Code:      code,
			Message:   message,
			RequestID: requestIDFrom(ctx),
			Details:   details,
		},
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, "invalid_request", message, details)
}

func RespondInvalidID(ctx *gin.Context, param string) {
	RespondError(ctx, http.StatusBadRequest, "invalid_id", param+" must be a 24-character hex object id", nil)
}

func RespondForbidden(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusForbidden, "forbidden", message, nil)
}

func RespondUnprocessable(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusUnprocessableEntity, code, message, nil)
}

// RespondInternal hides err from the caller; it is attached to the gin
// context so the request logger records it.
func RespondInternal(ctx *gin.Context, message string, err error) {
	if err != nil {
		_ = ctx.Error(err)
	}
	RespondError(ctx, http.StatusInternalServerError, "internal_error", message, nil)
}
