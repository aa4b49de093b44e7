package mongodb

import (
	"context"

	"github.com/geocoder89/mealshare/internal/domain/profile"
	"github.com/geocoder89/mealshare/internal/domain/result"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AboutRepo struct {
	c collection
}

func NewAboutRepo(coll *mongo.Collection, obs Observer) *AboutRepo {
	return &AboutRepo{c: collection{coll: coll, obs: obs}}
}

func (r *AboutRepo) GetByEmail(ctx context.Context, email string) (*profile.AboutMe, error) {
	return findOne[profile.AboutMe](ctx, r.c, bson.M{"email": email})
}

func (r *AboutRepo) Create(ctx context.Context, a profile.AboutMe) (result.InsertResult, error) {
	return insertOne(ctx, r.c, a)
}
