package models

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	Type          string `gorm:"not null" json:"type"`
	Message       string `gorm:"not null" json:"message"`
	RelatedUserID *uint  `gorm:"index" json:"related_user_id"`
	Seen          bool   `gorm:"not null;default:false" json:"seen"`

	RelatedUser *User `gorm:"foreignKey:RelatedUserID" json:"related_user,omitempty"`
}
