package db

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"

	"github.com/geocoder89/mealshare/internal/domain/user"
)

type AdminSeeder interface {
	SeedAdmin(ctx context.Context, email string) (user.SeedOutcome, error)
}

var ErrInvalidAdminEmail = errors.New("invalid admin email")

// EnsureAdminUser makes sure the configured bootstrap admin exists. Role
// promotion sits behind the admin gate, so without a seeded admin nobody
// could ever promote anyone. An existing member is promoted in place.
func EnsureAdminUser(ctx context.Context, users AdminSeeder, email string, log *slog.Logger) error {
	if email == "" {
		return nil
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidAdminEmail
	}

	outcome, err := users.SeedAdmin(ctx, email)

	if err != nil {
		return err
	}

	if outcome != user.SeedUnchanged {
		log.InfoContext(ctx, "seeded admin user", "email", email, "outcome", outcome.String())
	}

	return nil
}
