package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty int `json:"qty"`
	// UnitPrice is the catalog price captured at order time. Historical
	// orders keep it even if the drink is repriced later.
	UnitPrice int64 `json:"unitPrice"`
	Total     int64 `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DrinkID uint  `json:"drinkId"`
	Drink   Drink `json:"-"` // preload only when the drink name is needed
}
