package entity

import (
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	IsFeatured  bool    `json:"isFeatured"`

	Drinks []Drink       `json:"-"`
	Orders []Order       `json:"-"`
	Admins []VendorAdmin `json:"-"`
}
