package repository

import (
	"time"

	"github.com/jculp24/thrsty/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID         uint               `json:"id"`
	VendorID   uint               `json:"vendorId"`
	Total      int64              `json:"total"`
	Status     entity.OrderStatus `json:"status"`
	PickupTime string             `json:"pickupTime"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, vendor_id, total, status, pickup_time, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type VendorOrderSummary struct {
	ID           uint               `json:"id"`
	UserID       uint               `json:"userId"`
	CustomerName string             `json:"customerName"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForVendor(vendorID uint, limit int) ([]VendorOrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var rows []struct {
		ID        uint
		UserID    uint
		Total     int64
		Status    entity.OrderStatus
		CreatedAt time.Time
		FirstName string
		LastName  string
	}
	err := r.DB.Table("orders AS o").
		Select("o.id, o.user_id, o.total, o.status, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.vendor_id = ?", vendorID).
		Order("o.id DESC").Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]VendorOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, VendorOrderSummary{
			ID:           row.ID,
			UserID:       row.UserID,
			CustomerName: row.FirstName + " " + row.LastName,
			Total:        row.Total,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, qty, unit_price, total, drink_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ---------------- Helpers ----------------

// GetDrinkBasics loads just enough of a drink to price an order line.
func (r *OrderRepository) GetDrinkBasics(id uint) (entity.Drink, error) {
	var d entity.Drink
	err := r.DB.Select("id, price, vendor_id").First(&d, id).Error
	return d, err
}
