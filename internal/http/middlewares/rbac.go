package middlewares

import (
	"context"
	"net/http"

	"github.com/geocoder89/mealshare/internal/domain/user"
	"github.com/gin-gonic/gin"
)

type RoleReader interface {
	RoleByEmail(ctx context.Context, email string) (role string, found bool, err error)
}

// RequireAdmin is the admin gate. It must be mounted after RequireAuth and
// re-reads the role from the store on every request.
func (m *AuthMiddleware) RequireAdmin(roles RoleReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := EmailFromContext(c)

		if !ok {
			m.deny(c, gateAdmin, http.StatusUnauthorized, "unauthorized", "Missing identity context")
			return
		}

		role, found, err := roles.RoleByEmail(c.Request.Context(), email)
		if err != nil {
			m.deny(c, gateAdmin, http.StatusInternalServerError, "internal_error", "Could not verify role")
			return
		}

		if !found || role != user.RoleAdmin {
			m.deny(c, gateAdmin, http.StatusForbidden, "forbidden", "Forbidden Access")
			return
		}

		m.record(gateAdmin, "allow")
		c.Next()
	}
}
