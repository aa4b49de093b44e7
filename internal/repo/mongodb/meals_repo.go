package mongodb

import (
	"context"
	"slices"

	"github.com/geocoder89/mealshare/internal/domain/meal"
	"github.com/geocoder89/mealshare/internal/domain/result"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MealsRepo serves both the meals and the upcoming collections.
type MealsRepo struct {
	c collection
}

func NewMealsRepo(coll *mongo.Collection, obs Observer) *MealsRepo {
	return &MealsRepo{c: collection{coll: coll, obs: obs}}
}

func (r *MealsRepo) List(ctx context.Context) ([]meal.Meal, error) {
	return findAll[meal.Meal](ctx, r.c, bson.M{})
}

func (r *MealsRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*meal.Meal, error) {
	return findOne[meal.Meal](ctx, r.c, bson.M{"_id": id})
}

func (r *MealsRepo) Create(ctx context.Context, m meal.Meal) (result.InsertResult, error) {
	if m.Likes == nil {
		m.Likes = []string{}
	}
	return insertOne(ctx, r.c, m)
}

func (r *MealsRepo) Delete(ctx context.Context, id primitive.ObjectID) (result.DeleteResult, error) {
	return deleteByID(ctx, r.c, id)
}

// IncrementReviews applies delta with a single $inc; concurrent callers never
// lose an update.
func (r *MealsRepo) IncrementReviews(ctx context.Context, id primitive.ObjectID, delta int64) (result.UpdateResult, error) {
	return updateOne(ctx, r.c, "inc_reviews", bson.M{"_id": id}, bson.M{"$inc": bson.M{"reviews": delta}})
}

// Like adds actor to the likes set at most once. The membership read only
// decides which answer to give; the write itself is $addToSet, so racing
// callers still cannot introduce a duplicate. A document without likes, or
// no document at all, counts as an empty set.
func (r *MealsRepo) Like(ctx context.Context, id primitive.ObjectID, actor string) (meal.LikeOutcome, error) {
	current, err := findOne[meal.Meal](ctx, r.c, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"likes": 1}))
	if err != nil {
		return meal.LikeOutcome{}, err
	}

	if current != nil && slices.Contains(current.Likes, actor) {
		return meal.LikeOutcome{AlreadyLiked: true}, nil
	}

	res, err := updateOne(ctx, r.c, "like", bson.M{"_id": id}, bson.M{"$addToSet": bson.M{"likes": actor}})
	if err != nil {
		return meal.LikeOutcome{}, err
	}

	return meal.LikeOutcome{Update: res}, nil
}
