package review

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	MealID    string             `bson:"mealId,omitempty" json:"mealId,omitempty"`
	MealTitle string             `bson:"mealTitle,omitempty" json:"mealTitle,omitempty"`
	Review    string             `bson:"review" json:"review"`
	Rating    float64            `bson:"rating,omitempty" json:"rating,omitempty"`
}

type CreateReviewRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Name      string  `json:"name" binding:"omitempty,max=120"`
	MealID    string  `json:"mealId" binding:"omitempty,max=64"`
	MealTitle string  `json:"mealTitle" binding:"omitempty,max=200"`
	Review    string  `json:"review" binding:"required,max=5000"`
	Rating    float64 `json:"rating" binding:"omitempty,min=0,max=5"`
}

func (r CreateReviewRequest) ToReview() Review {
	return Review{
		Email:     r.Email,
		Name:      r.Name,
		MealID:    r.MealID,
		MealTitle: r.MealTitle,
		Review:    r.Review,
		Rating:    r.Rating,
	}
}
