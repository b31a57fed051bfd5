package models

import (
	"propertyHub/internal/enums"

	"gorm.io/gorm"
)

// User represents an account in the application. The role decides which
// records a user may touch; who they may message is derived from property
// links, not from the role alone.
type User struct {
	gorm.Model
	FirstName    string  `gorm:"not null" json:"first_name"`
	LastName     string  `gorm:"not null" json:"last_name"`
	Email        string  `gorm:"unique;not null" json:"email"`
	Role         string  `gorm:"not null;default:'tenant'" json:"role"`
	ProfilePhoto *string `json:"profile_photo"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Password     string  `gorm:"-" json:"password"`
}

func (user *User) IsAdmin() bool {
	return user.Role == enums.ROLE_ADMIN
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Role:         user.Role,
		ProfilePhoto: user.ProfilePhoto,
	}
}
