package actorctx

import (
	"context"

	"github.com/geocoder89/mealshare/internal/auth"
)

type ctxKey string

const claimsKey ctxKey = "actor.claims"

func WithClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFrom(ctx context.Context) (auth.Claims, bool) {
	v, ok := ctx.Value(claimsKey).(auth.Claims)

	return v, ok && v != nil
}

func EmailFrom(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFrom(ctx)
	if !ok {
		return "", false
	}

	email := claims.Email()
	return email, email != ""
}
