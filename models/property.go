package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property is read-only reference data for the panel; nothing in the
// contact or note engines mutates it.
type Property struct {
	Id       string  `json:"id" gorm:"primaryKey"`
	Address  string  `json:"address" gorm:"not null"`
	City     string  `json:"city" gorm:"not null"`
	State    string  `json:"state"`
	Zip      string  `json:"zip"`
	Status   string  `json:"status" gorm:"type:VARCHAR(20)"` // Active | Pending | Sold | Off Market
	Price    float64 `json:"price" gorm:"type:numeric(12,2)"`
	ImageUrl string  `json:"image_url"`
}

func (property *Property) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if property.Id == "" {
		property.Id = uuid.NewString()
	}
	return
}
