package models

import (
	"gorm.io/gorm"
)

// Property ties a landlord and an optional tenant together. These links are
// what the messaging permission graph is derived from.
type Property struct {
	gorm.Model
	Title      string  `gorm:"not null" json:"title"`
	Address    string  `gorm:"not null" json:"address"`
	Price      float64 `gorm:"not null" json:"price"`
	Status     string  `gorm:"not null;default:'available'" json:"status"`
	LandlordID *uint   `gorm:"index" json:"landlord_id"`
	TenantID   *uint   `gorm:"index" json:"tenant_id"`

	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Nationality  string `json:"nationality"`
	ShareCode    string `json:"share_code"`

	// Certificate file URLs
	GasSafety      string `json:"gas_safety"`
	Epc            string `json:"epc"`
	ElectricalCert string `json:"electrical_cert"`

	Landlord *User `gorm:"foreignKey:LandlordID" json:"landlord,omitempty"`
	Tenant   *User `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}
