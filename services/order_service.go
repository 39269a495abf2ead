package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/jculp24/thrsty/entity"
	"github.com/jculp24/thrsty/repository"

	"gorm.io/gorm"
)

// Tax is applied to the order subtotal at a fixed 8.5%.
const taxRatePermille = 85 // per 1000

const defaultPickupTime = "15-20 min"

// Notifier pushes a stored notification to connected clients. Optional.
type Notifier interface {
	Publish(n *entity.Notification)
}

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	VendorRepo *repository.VendorRepository
	NotifRepo  *repository.NotificationRepository
	Hub        Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	vendorRepo *repository.VendorRepository,
	notifRepo *repository.NotificationRepository,
	hub Notifier,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, VendorRepo: vendorRepo, NotifRepo: notifRepo, Hub: hub}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	DrinkID uint `json:"drinkId" binding:"required"`
	Qty     int  `json:"qty" binding:"required,min=1"`
	// VendorID is the vendor the client believes the line belongs to.
	// Zero means "same as the order"; anything else must match.
	VendorID uint `json:"vendorId"`
}

type PlaceOrderReq struct {
	VendorID   uint          `json:"vendorId" binding:"required"`
	Items      []OrderLineIn `json:"items"`
	PickupTime string        `json:"pickupTime"`
}

type PlaceOrderRes struct {
	OrderID uint               `json:"orderId"`
	Status  entity.OrderStatus `json:"status"`
	Total   int64              `json:"total"`
}

// Place creates the order header and its items as one atomic unit, then
// notifies the vendor best-effort. Totals are recomputed from the drinks
// catalog; a client-supplied total is never trusted.
func (s *OrderService) Place(userID uint, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, it := range req.Items {
		if it.Qty < 1 {
			return nil, ErrInvalidQuantity
		}
		if it.VendorID != 0 && it.VendorID != req.VendorID {
			return nil, ErrMixedVendorOrder
		}
	}

	ok, err := s.VendorRepo.Exists(req.VendorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	var subtotal int64
	rows := make([]struct {
		drinkID   uint
		qty       int
		unitPrice int64
	}, 0, len(req.Items))

	for _, it := range req.Items {
		d, err := s.Repo.GetDrinkBasics(it.DrinkID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		// A drink owned by another vendor makes this a mixed-vendor cart.
		if d.VendorID != req.VendorID {
			return nil, ErrMixedVendorOrder
		}
		subtotal += d.Price * int64(it.Qty)
		rows = append(rows, struct {
			drinkID   uint
			qty       int
			unitPrice int64
		}{d.ID, it.Qty, d.Price})
	}

	tax := taxFor(subtotal)
	total := subtotal + tax

	pickup := req.PickupTime
	if pickup == "" {
		pickup = defaultPickupTime
	}

	var order entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order = entity.Order{
			Subtotal:   subtotal,
			Tax:        tax,
			Total:      total,
			Status:     entity.StatusPending,
			PickupTime: pickup,
			UserID:     userID,
			VendorID:   req.VendorID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, r := range rows {
			oi := entity.OrderItem{
				Qty: r.qty, UnitPrice: r.unitPrice, Total: r.unitPrice * int64(r.qty),
				OrderID: order.ID, DrinkID: r.drinkID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}

	// Best-effort after commit: a lost notification must not fail the order.
	s.notify(&entity.Notification{
		VendorID: &req.VendorID,
		Type:     entity.NotificationNewOrder,
		Message:  fmt.Sprintf("New order #%d received", order.ID),
		OrderID:  order.ID,
	})

	return &PlaceOrderRes{OrderID: order.ID, Status: order.Status, Total: order.Total}, nil
}

// UpdateStatus moves an order to any of the enumerated statuses. No
// transition graph is enforced. The actor must be an admin of the order's
// vendor. The purchaser is notified best-effort.
func (s *OrderService) UpdateStatus(actorID, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := s.VendorRepo.IsAdmin(o.VendorID, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	if _, err := s.Repo.UpdateStatus(s.DB, o.ID, status); err != nil {
		return nil, &PersistenceError{Err: err}
	}
	o.Status = status

	s.notify(&entity.Notification{
		UserID:  &o.UserID,
		Type:    entity.NotificationStatusUpdate,
		Message: fmt.Sprintf("Your order #%d status has been updated to %s", o.ID, status),
		OrderID: o.ID,
	})

	return o, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	ID         uint               `json:"id"`
	Subtotal   int64              `json:"subtotal"`
	Tax        int64              `json:"tax"`
	Total      int64              `json:"total"`
	Status     entity.OrderStatus `json:"status"`
	PickupTime string             `json:"pickupTime"`
	VendorID   uint               `json:"vendorId"`
	Items      []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, Subtotal: o.Subtotal, Tax: o.Tax, Total: o.Total,
		Status: o.Status, PickupTime: o.PickupTime, VendorID: o.VendorID, Items: items,
	}, nil
}

func (s *OrderService) ListForVendor(actorID, vendorID uint, limit int) ([]repository.VendorOrderSummary, error) {
	ok, err := s.VendorRepo.IsAdmin(vendorID, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.Repo.ListOrdersForVendor(vendorID, limit)
}

// notify stores and pushes a notification; failures are logged only.
func (s *OrderService) notify(n *entity.Notification) {
	if err := s.NotifRepo.Create(n); err != nil {
		log.Printf("notification insert failed (order %d): %v", n.OrderID, err)
		return
	}
	if s.Hub != nil {
		s.Hub.Publish(n)
	}
}

// taxFor rounds half-up in cents.
func taxFor(subtotal int64) int64 {
	return (subtotal*taxRatePermille + 500) / 1000
}
