package membership

import "go.mongodb.org/mongo-driver/bson/primitive"

// Package is a purchasable membership tier. The collection is maintained
// outside the API and only read here.
type Package struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Badge    string             `bson:"badge,omitempty" json:"badge,omitempty"`
	Benefits []string           `bson:"benefits,omitempty" json:"benefits,omitempty"`
}
