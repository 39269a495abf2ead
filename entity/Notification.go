package entity

import (
	"gorm.io/gorm"
)

const (
	NotificationNewOrder     = "new_order"
	NotificationStatusUpdate = "status_update"
)

// Notification is addressed to exactly one recipient: a user or a vendor.
// The unset side stays NULL.
type Notification struct {
	gorm.Model
	UserID *uint `json:"userId"`
	User   *User `json:"-"`

	VendorID *uint   `json:"vendorId"`
	Vendor   *Vendor `json:"-"`

	Type    string `gorm:"not null" json:"type"`
	Message string `json:"message"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	IsRead bool `gorm:"not null;default:false" json:"isRead"`
}
