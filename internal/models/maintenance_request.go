package models

import (
	"gorm.io/gorm"
)

type MaintenanceRequest struct {
	gorm.Model
	TenantID   uint   `gorm:"not null;index" json:"tenant_id"`
	PropertyID uint   `gorm:"not null;index" json:"property_id"`
	Issue      string `gorm:"not null" json:"issue"`
	Status     string `gorm:"not null;default:'pending'" json:"status"`
	Response   string `json:"response"`

	Tenant   *User     `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}
