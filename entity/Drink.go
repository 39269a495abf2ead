package entity

import (
	"gorm.io/gorm"
)

type Drink struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents
	Category    string `json:"category"`
	Picture     string `json:"picture"`

	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"` // preload only when vendor detail is needed

	OrderItems []OrderItem `json:"-"`
}
