package middlewares

import (
	"net/http"
	"strings"

	"github.com/geocoder89/mealshare/internal/actorctx"
	"github.com/geocoder89/mealshare/internal/auth"
	"github.com/gin-gonic/gin"
)

// Keep this small interface so tests can fake it easily.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

type DecisionRecorder interface {
	RecordAuthDecision(gate, outcome string)
}

type AuthMiddleware struct {
	jwt TokenVerifier
	rec DecisionRecorder
}

func NewAuthMiddleware(jwt TokenVerifier, rec DecisionRecorder) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt, rec: rec}
}

const (
	gateAccess = "access"
	gateAdmin  = "admin"
)

// RequireAuth is the access gate. It does no I/O beyond verifying the token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.deny(c, gateAccess, http.StatusUnauthorized, "unauthorized", "Unauthorized access")
			return
		}

		scheme, raw, _ := strings.Cut(authHeader, " ")
		raw = strings.TrimSpace(raw)
		if !strings.EqualFold(scheme, "Bearer") || raw == "" {
			m.deny(c, gateAccess, http.StatusUnauthorized, "unauthorized", "Unauthorized access")
			return
		}

		claims, err := m.jwt.Verify(raw)
		if err != nil {
			m.deny(c, gateAccess, http.StatusUnauthorized, "unauthorized", "Unauthorized access")
			return
		}

		// Stash the decoded payload on both contexts
		c.Set(CtxClaims, claims)
		c.Request = c.Request.WithContext(actorctx.WithClaims(c.Request.Context(), claims))

		m.record(gateAccess, "allow")
		c.Next()
	}
}

func (m *AuthMiddleware) deny(c *gin.Context, gate string, status int, code, message string) {
	outcome := code
	if status >= http.StatusInternalServerError {
		outcome = "error"
	}
	m.record(gate, outcome)

	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func (m *AuthMiddleware) record(gate, outcome string) {
	if m.rec != nil {
		m.rec.RecordAuthDecision(gate, outcome)
	}
}

// Optional helpers so handlers don’t need to know the magic keys.

func ClaimsFromContext(c *gin.Context) (auth.Claims, bool) {
	v, ok := c.Get(CtxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(auth.Claims)
	return claims, ok
}

func EmailFromContext(c *gin.Context) (string, bool) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		return "", false
	}
	email := claims.Email()
	return email, email != ""
}
