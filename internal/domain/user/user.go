package user

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values are compared case-sensitively. Anything other than RoleAdmin,
// including an absent role, is an ordinary member.
const (
	RoleAdmin  = "Admin"
	RoleMember = ""
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
	PackageName string             `bson:"packageName,omitempty" json:"packageName,omitempty"`
	Badge       *string            `bson:"badge,omitempty" json:"badge,omitempty"`
}

// SeedOutcome reports what seeding the bootstrap admin changed.
type SeedOutcome int

const (
	SeedUnchanged SeedOutcome = iota
	SeedCreated
	SeedPromoted
)

func (o SeedOutcome) String() string {
	switch o {
	case SeedCreated:
		return "created"
	case SeedPromoted:
		return "promoted"
	default:
		return "unchanged"
	}
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CreateUserRequest is the first sign-in payload. Role is never taken from
// the caller.
type CreateUserRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  string  `json:"name" binding:"omitempty,max=120"`
	Photo string  `json:"photo" binding:"omitempty,max=2048"`
	Badge *string `json:"badge" binding:"omitempty,max=2048"`
}

type UpdateProfileRequest struct {
	Info *ProfileInfo `json:"info" binding:"required"`
}

type ProfileInfo struct {
	PackageName string        `json:"packageName" binding:"required,max=120"`
	Image       *ProfileImage `json:"image"`
}

type ProfileImage struct {
	Props *struct {
		Src string `json:"src"`
	} `json:"props"`
}

// BadgeSource resolves info.image.props.src, nil when any link is missing.
func (i ProfileInfo) BadgeSource() *string {
	if i.Image == nil || i.Image.Props == nil || i.Image.Props.Src == "" {
		return nil
	}
	src := i.Image.Props.Src
	return &src
}
