package mongodb

import (
	"context"

	"github.com/geocoder89/mealshare/internal/domain/result"
	"github.com/geocoder89/mealshare/internal/domain/review"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewsRepo struct {
	c collection
}

func NewReviewsRepo(coll *mongo.Collection, obs Observer) *ReviewsRepo {
	return &ReviewsRepo{c: collection{coll: coll, obs: obs}}
}

func (r *ReviewsRepo) List(ctx context.Context) ([]review.Review, error) {
	return findAll[review.Review](ctx, r.c, bson.M{})
}

func (r *ReviewsRepo) ListByEmail(ctx context.Context, email string) ([]review.Review, error) {
	return findAll[review.Review](ctx, r.c, bson.M{"email": email})
}

func (r *ReviewsRepo) Create(ctx context.Context, rv review.Review) (result.InsertResult, error) {
	return insertOne(ctx, r.c, rv)
}

func (r *ReviewsRepo) Delete(ctx context.Context, id primitive.ObjectID) (result.DeleteResult, error) {
	return deleteByID(ctx, r.c, id)
}
