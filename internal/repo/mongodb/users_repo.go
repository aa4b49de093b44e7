package mongodb

import (
	"context"

	"github.com/geocoder89/mealshare/internal/domain/result"
	"github.com/geocoder89/mealshare/internal/domain/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UsersRepo struct {
	c collection
}

func NewUsersRepo(coll *mongo.Collection, obs Observer) *UsersRepo {
	return &UsersRepo{c: collection{coll: coll, obs: obs}}
}

func (r *UsersRepo) List(ctx context.Context) ([]user.User, error) {
	return findAll[user.User](ctx, r.c, bson.M{})
}

// GetByEmail returns nil when no user has that email.
func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return findOne[user.User](ctx, r.c, bson.M{"email": email})
}

// Create inserts u unless a user with the same email exists. created is false
// for the existing-user case, which is not an error.
func (r *UsersRepo) Create(ctx context.Context, u user.User) (res result.InsertResult, created bool, err error) {
	existing, err := r.GetByEmail(ctx, u.Email)
	if err != nil {
		return result.InsertResult{}, false, err
	}

	if existing != nil {
		return result.InsertResult{}, false, nil
	}

	res, err = insertOne(ctx, r.c, u)
	if err != nil {
		// lost a race with a concurrent first sign-in
		if mongo.IsDuplicateKeyError(err) {
			return result.InsertResult{}, false, nil
		}
		return result.InsertResult{}, false, err
	}

	return res, true, nil
}

// RoleByEmail is the admin gate's single read.
func (r *UsersRepo) RoleByEmail(ctx context.Context, email string) (role string, found bool, err error) {
	u, err := findOne[user.User](ctx, r.c, bson.M{"email": email},
		options.FindOne().SetProjection(bson.M{"role": 1}))
	if err != nil || u == nil {
		return "", false, err
	}

	return u.Role, true, nil
}

// PromoteToAdmin sets role unconditionally. A missing id matches nothing and
// is reported through MatchedCount.
func (r *UsersRepo) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (result.UpdateResult, error) {
	return updateOne(ctx, r.c, "promote", bson.M{"_id": id}, bson.M{"$set": bson.M{"role": user.RoleAdmin}})
}

func (r *UsersRepo) UpdateProfile(ctx context.Context, email, packageName string, badge *string) (result.UpdateResult, error) {
	return updateOne(ctx, r.c, "update_profile", bson.M{"email": email}, bson.M{"$set": bson.M{
		"packageName": packageName,
		"badge":       badge,
	}})
}

// SeedAdmin makes email an Admin, inserting the user when missing and
// promoting an existing member otherwise.
func (r *UsersRepo) SeedAdmin(ctx context.Context, email string) (user.SeedOutcome, error) {
	res, err := updateOne(ctx, r.c, "seed_admin",
		bson.M{"email": email},
		bson.M{
			"$set":         bson.M{"role": user.RoleAdmin},
			"$setOnInsert": bson.M{"email": email},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return user.SeedUnchanged, err
	}

	switch {
	case res.UpsertedCount == 1:
		return user.SeedCreated, nil
	case res.ModifiedCount == 1:
		return user.SeedPromoted, nil
	default:
		return user.SeedUnchanged, nil
	}
}
