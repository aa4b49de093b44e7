package handlers

import (
	"context"
	"net/http"

	"github.com/geocoder89/mealshare/internal/domain/result"
	"github.com/geocoder89/mealshare/internal/domain/user"
	"github.com/geocoder89/mealshare/internal/http/middlewares"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UsersRepo interface {
	List(ctx context.Context) ([]user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Create(ctx context.Context, u user.User) (result.InsertResult, bool, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (result.UpdateResult, error)
	UpdateProfile(ctx context.Context, email, packageName string, badge *string) (result.UpdateResult, error)
}

type UsersHandler struct {
	repo UsersRepo
}

func NewUsersHandler(repo UsersRepo) *UsersHandler {
	return &UsersHandler{repo: repo}
}

func (h *UsersHandler) List(ctx *gin.Context) {
	users, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list users", err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// GetByEmail answers null for an unknown email.
func (h *UsersHandler) GetByEmail(ctx *gin.Context) {
	u, err := h.repo.GetByEmail(ctx.Request.Context(), ctx.Param("email"))

	if err != nil {
		RespondInternal(ctx, "Could not fetch user", err)
		return
	}

	ctx.JSON(http.StatusOK, u)
}

// Create is the first sign-in insert; repeating it for a known email is a
// benign no-op.
func (h *UsersHandler) Create(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	res, created, err := h.repo.Create(ctx.Request.Context(), user.User{
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
		Badge: req.Badge,
	})

	if err != nil {
		RespondInternal(ctx, "Could not create user", err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, gin.H{
			"message":    "User already exist",
			"insertedId": nil,
		})
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// IsAdmin lets a signed-in user ask about their own role only.
func (h *UsersHandler) IsAdmin(ctx *gin.Context) {
	email := ctx.Param("email")

	tokenEmail, ok := middlewares.EmailFromContext(ctx)
	if !ok || email != tokenEmail {
		RespondForbidden(ctx, "Forbidden access")
		return
	}

	u, err := h.repo.GetByEmail(ctx.Request.Context(), email)

	if err != nil {
		RespondInternal(ctx, "Could not fetch user", err)
		return
	}

	admin := false
	if u != nil {
		admin = u.IsAdmin()
	}

	ctx.JSON(http.StatusOK, gin.H{"admin": admin})
}

func (h *UsersHandler) Promote(ctx *gin.Context) {
	id, ok := objectIDParam(ctx, "id")
	if !ok {
		return
	}

	res, err := h.repo.PromoteToAdmin(ctx.Request.Context(), id)

	if err != nil {
		RespondInternal(ctx, "Could not promote user", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (h *UsersHandler) UpdateProfile(ctx *gin.Context) {
	var req user.UpdateProfileRequest

	if !BindJSON(ctx, &req) {
		return
	}

	res, err := h.repo.UpdateProfile(ctx.Request.Context(), ctx.Param("email"), req.Info.PackageName, req.Info.BadgeSource())

	if err != nil {
		RespondInternal(ctx, "Could not update profile", err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}
