package mongodb

import (
	"context"

	"github.com/geocoder89/mealshare/internal/domain/mealrequest"
	"github.com/geocoder89/mealshare/internal/domain/result"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MealRequestsRepo struct {
	c collection
}

func NewMealRequestsRepo(coll *mongo.Collection, obs Observer) *MealRequestsRepo {
	return &MealRequestsRepo{c: collection{coll: coll, obs: obs}}
}

func (r *MealRequestsRepo) List(ctx context.Context) ([]mealrequest.MealRequest, error) {
	return findAll[mealrequest.MealRequest](ctx, r.c, bson.M{})
}

func (r *MealRequestsRepo) ListByEmail(ctx context.Context, email string) ([]mealrequest.MealRequest, error) {
	return findAll[mealrequest.MealRequest](ctx, r.c, bson.M{"email": email})
}

func (r *MealRequestsRepo) Create(ctx context.Context, req mealrequest.MealRequest) (result.InsertResult, error) {
	return insertOne(ctx, r.c, req)
}

func (r *MealRequestsRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (result.UpdateResult, error) {
	return updateOne(ctx, r.c, "update_status", bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
}

func (r *MealRequestsRepo) Delete(ctx context.Context, id primitive.ObjectID) (result.DeleteResult, error) {
	return deleteByID(ctx, r.c, id)
}
