package meal

import (
	"github.com/geocoder89/mealshare/internal/domain/result"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewCheck is the discriminator a review-count update must carry.
const ReviewCheck = "review"

// Meal is shared by the meals and upcoming collections. Likes holds actor
// identifiers (email or user id) and never holds the same actor twice.
type Meal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Ingredients []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Rating      float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	PostTime    string             `bson:"postTime,omitempty" json:"postTime,omitempty"`
	AdminName   string             `bson:"adminName,omitempty" json:"adminName,omitempty"`
	AdminEmail  string             `bson:"adminEmail,omitempty" json:"adminEmail,omitempty"`
	Reviews     int64              `bson:"reviews" json:"reviews"`
	Likes       []string           `bson:"likes" json:"likes"`
}

type CreateMealRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Category    string   `json:"category" binding:"omitempty,max=80"`
	Image       string   `json:"image" binding:"omitempty,max=2048"`
	Ingredients []string `json:"ingredients"`
	Description string   `json:"description" binding:"omitempty,max=5000"`
	Price       float64  `json:"price" binding:"omitempty,min=0"`
	Rating      float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	PostTime    string   `json:"postTime"`
	AdminName   string   `json:"adminName" binding:"omitempty,max=120"`
	AdminEmail  string   `json:"adminEmail" binding:"omitempty,email"`
	Reviews     int64    `json:"reviews"`
	Likes       []string `json:"likes"`
}

// ToMeal builds the stored document. Duplicate likes in the request collapse
// to one entry each.
func (r CreateMealRequest) ToMeal() Meal {
	likes := make([]string, 0, len(r.Likes))
	seen := make(map[string]struct{}, len(r.Likes))

	for _, actor := range r.Likes {
		if actor == "" {
			continue
		}
		if _, ok := seen[actor]; ok {
			continue
		}
		seen[actor] = struct{}{}
		likes = append(likes, actor)
	}

	return Meal{
		Title:       r.Title,
		Category:    r.Category,
		Image:       r.Image,
		Ingredients: r.Ingredients,
		Description: r.Description,
		Price:       r.Price,
		Rating:      r.Rating,
		PostTime:    r.PostTime,
		AdminName:   r.AdminName,
		AdminEmail:  r.AdminEmail,
		Reviews:     r.Reviews,
		Likes:       likes,
	}
}

type LikeRequest struct {
	Liked string `json:"liked" binding:"required,max=320"`
}

type ReviewCountRequest struct {
	Check    string `json:"check"`
	Reviewed *int64 `json:"reviewed" binding:"required"`
}

// LikeOutcome is either a no-op (actor already present) or the store's update
// acknowledgement.
type LikeOutcome struct {
	AlreadyLiked bool
	Update       result.UpdateResult
}
