package entity

import (
	"gorm.io/gorm"
)

// VendorAdmin links a user account to management rights over one vendor.
type VendorAdmin struct {
	gorm.Model
	UserID uint `gorm:"index:idx_vendor_admin,unique" json:"userId"`
	User   User `json:"-"`

	VendorID uint   `gorm:"index:idx_vendor_admin,unique" json:"vendorId"`
	Vendor   Vendor `json:"-"`
}
