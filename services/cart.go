package services

import "github.com/jculp24/thrsty/entity"

// CartLine is one drink in a cart, stamped with the vendor so the pickup
// location can be shown later.
type CartLine struct {
	DrinkID        uint   `json:"drinkId"`
	Name           string `json:"name"`
	UnitPrice      int64  `json:"unitPrice"`
	Quantity       int    `json:"quantity"`
	VendorID       uint   `json:"vendorId"`
	VendorName     string `json:"vendorName"`
	VendorLocation string `json:"vendorLocation"`
}

// Cart is ephemeral, single-session state. It is never persisted and is
// consumed at checkout.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges by drink identity: an existing line gains one unit, otherwise
// a new line is inserted with quantity one.
func (c *Cart) Add(drink entity.Drink, vendor entity.Vendor) {
	for i := range c.lines {
		if c.lines[i].DrinkID == drink.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		DrinkID:        drink.ID,
		Name:           drink.Name,
		UnitPrice:      drink.Price,
		Quantity:       1,
		VendorID:       vendor.ID,
		VendorName:     vendor.Name,
		VendorLocation: vendor.Location,
	})
}

// UpdateQuantity applies a delta, clamping at zero. A line that reaches
// zero is removed entirely.
func (c *Cart) UpdateQuantity(drinkID uint, delta int) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.DrinkID == drinkID {
			line.Quantity += delta
			if line.Quantity < 0 {
				line.Quantity = 0
			}
		}
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []CartLine {
	return c.lines
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, line := range c.lines {
		sum += line.UnitPrice * int64(line.Quantity)
	}
	return sum
}

// OrderLines converts the cart into the order-placement request shape.
func (c *Cart) OrderLines() []OrderLineIn {
	out := make([]OrderLineIn, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, OrderLineIn{DrinkID: line.DrinkID, Qty: line.Quantity, VendorID: line.VendorID})
	}
	return out
}
