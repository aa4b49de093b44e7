// Package result mirrors the write acknowledgements of the document store so
// handlers can return them to callers unchanged.
package result

import "go.mongodb.org/mongo-driver/bson/primitive"

type InsertResult struct {
	Acknowledged bool                `json:"acknowledged"`
	InsertedID   *primitive.ObjectID `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool                `json:"acknowledged"`
	MatchedCount  int64               `json:"matchedCount"`
	ModifiedCount int64               `json:"modifiedCount"`
	UpsertedCount int64               `json:"upsertedCount"`
	UpsertedID    *primitive.ObjectID `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func Inserted(id primitive.ObjectID) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: &id}
}
