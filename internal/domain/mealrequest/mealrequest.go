package mealrequest

import "go.mongodb.org/mongo-driver/bson/primitive"

// Status is free-form; the client decides the vocabulary. New requests
// default to StatusPending.
const StatusPending = "pending"

type MealRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	MealID    string             `bson:"mealId,omitempty" json:"mealId,omitempty"`
	MealTitle string             `bson:"mealTitle,omitempty" json:"mealTitle,omitempty"`
	Likes     int64              `bson:"likes,omitempty" json:"likes,omitempty"`
	Reviews   int64              `bson:"reviews,omitempty" json:"reviews,omitempty"`
	Status    string             `bson:"status" json:"status"`
}

type CreateRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"name" binding:"omitempty,max=120"`
	MealID    string `json:"mealId" binding:"omitempty,max=64"`
	MealTitle string `json:"mealTitle" binding:"omitempty,max=200"`
	Likes     int64  `json:"likes"`
	Reviews   int64  `json:"reviews"`
	Status    string `json:"status" binding:"omitempty,max=40"`
}

func (r CreateRequest) ToMealRequest() MealRequest {
	status := r.Status
	if status == "" {
		status = StatusPending
	}

	return MealRequest{
		Email:     r.Email,
		Name:      r.Name,
		MealID:    r.MealID,
		MealTitle: r.MealTitle,
		Likes:     r.Likes,
		Reviews:   r.Reviews,
		Status:    status,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,max=40"`
}
