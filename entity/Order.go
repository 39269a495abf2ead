package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`

	Status     OrderStatus `gorm:"type:varchar(16);not null" json:"status"`
	PickupTime string      `json:"pickupTime"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for vendor-facing detail

	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"`

	// preload only on detail
	OrderItems []OrderItem `json:"-"`
}
