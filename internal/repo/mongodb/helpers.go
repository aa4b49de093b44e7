package mongodb

import (
	"context"
	"errors"

	"github.com/geocoder89/mealshare/internal/domain/result"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection bundles a driver collection with its observer and a name used
// as the metric op prefix.
type collection struct {
	coll *mongo.Collection
	obs  Observer
}

func (c collection) op(name string) string {
	return c.coll.Name() + "." + name
}

func findAll[T any](ctx context.Context, c collection, filter any) ([]T, error) {
	out := []T{}

	err := c.obs.ObserveStore(c.op("find"), func() error {
		cur, err := c.coll.Find(ctx, filter)
		if err != nil {
			return err
		}
		return cur.All(ctx, &out)
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

// findOne returns nil, nil when nothing matches.
func findOne[T any](ctx context.Context, c collection, filter any, opts ...*options.FindOneOptions) (*T, error) {
	var doc T
	found := true

	err := c.obs.ObserveStore(c.op("find_one"), func() error {
		err := c.coll.FindOne(ctx, filter, opts...).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			found = false
			return nil
		}
		return err
	})

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &doc, nil
}

func insertOne(ctx context.Context, c collection, doc any) (result.InsertResult, error) {
	var res *mongo.InsertOneResult

	err := c.obs.ObserveStore(c.op("insert_one"), func() error {
		var err error
		res, err = c.coll.InsertOne(ctx, doc)
		return err
	})

	if err != nil {
		return result.InsertResult{}, err
	}

	out := result.InsertResult{Acknowledged: true}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.InsertedID = &id
	}
	return out, nil
}

func updateOne(ctx context.Context, c collection, opName string, filter, update any, opts ...*options.UpdateOptions) (result.UpdateResult, error) {
	var res *mongo.UpdateResult

	err := c.obs.ObserveStore(c.op(opName), func() error {
		var err error
		res, err = c.coll.UpdateOne(ctx, filter, update, opts...)
		return err
	})

	if err != nil {
		return result.UpdateResult{}, err
	}

	out := result.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = &id
	}
	return out, nil
}

func deleteByID(ctx context.Context, c collection, id primitive.ObjectID) (result.DeleteResult, error) {
	var res *mongo.DeleteResult

	err := c.obs.ObserveStore(c.op("delete_one"), func() error {
		var err error
		res, err = c.coll.DeleteOne(ctx, bson.M{"_id": id})
		return err
	})

	if err != nil {
		return result.DeleteResult{}, err
	}

	return result.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
