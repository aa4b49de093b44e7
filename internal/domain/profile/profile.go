package profile

import "go.mongodb.org/mongo-driver/bson/primitive"

// AboutMe is the free-text profile shown on a member's dashboard.
type AboutMe struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email   string             `bson:"email" json:"email"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Image   string             `bson:"image,omitempty" json:"image,omitempty"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
	About   string             `bson:"about,omitempty" json:"about,omitempty"`
}

type CreateAboutRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"omitempty,max=120"`
	Image   string `json:"image" binding:"omitempty,max=2048"`
	Phone   string `json:"phone" binding:"omitempty,max=40"`
	Address string `json:"address" binding:"omitempty,max=300"`
	About   string `json:"about" binding:"omitempty,max=5000"`
}

func (r CreateAboutRequest) ToAboutMe() AboutMe {
	return AboutMe{
		Email:   r.Email,
		Name:    r.Name,
		Image:   r.Image,
		Phone:   r.Phone,
		Address: r.Address,
		About:   r.About,
	}
}
