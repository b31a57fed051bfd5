package models

import (
	"gorm.io/gorm"
)

// StoredFile is the database record for an object uploaded to the file store;
// the bytes themselves live in the object storage bucket under ObjectKey.
type StoredFile struct {
	gorm.Model
	UploaderID   uint   `gorm:"not null;index" json:"uploader_id"`
	PropertyID   *uint  `gorm:"index" json:"property_id"`
	AssignedToID *uint  `gorm:"index" json:"assigned_to_id"`
	FileURL      string `gorm:"not null" json:"file_url"`
	ObjectKey    string `json:"object_key"`
	OriginalName string `json:"original_name"`
	FileType     string `gorm:"not null;default:'other'" json:"file_type"`
	Description  string `json:"description"`

	Uploader *User     `gorm:"foreignKey:UploaderID" json:"uploader,omitempty"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}
