package mongodb

import (
	"context"

	"github.com/geocoder89/mealshare/internal/domain/membership"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MembershipRepo struct {
	c collection
}

func NewMembershipRepo(coll *mongo.Collection, obs Observer) *MembershipRepo {
	return &MembershipRepo{c: collection{coll: coll, obs: obs}}
}

func (r *MembershipRepo) List(ctx context.Context) ([]membership.Package, error) {
	return findAll[membership.Package](ctx, r.c, bson.M{})
}
