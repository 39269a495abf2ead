package services

import (
	"github.com/jculp24/thrsty/entity"
	"github.com/jculp24/thrsty/repository"
)

type NotificationService struct {
	Repo *repository.NotificationRepository
	Hub  Notifier
}

func NewNotificationService(repo *repository.NotificationRepository, hub Notifier) *NotificationService {
	return &NotificationService{Repo: repo, Hub: hub}
}

func (s *NotificationService) ListForUser(userID uint) ([]entity.Notification, error) {
	return s.Repo.ListForUser(userID)
}

// ListForVendor serves the vendor's order-queue feed. Callers are gated by
// the vendor-admin middleware, like the vendor websocket stream.
func (s *NotificationService) ListForVendor(vendorID uint) ([]entity.Notification, error) {
	return s.Repo.ListForVendor(vendorID)
}

type CreateNotificationIn struct {
	UserID   *uint  `json:"userId"`
	VendorID *uint  `json:"vendorId"`
	Type     string `json:"type" binding:"required,oneof=new_order status_update"`
	Message  string `json:"message" binding:"required"`
	OrderID  uint   `json:"orderId"`
}

// Create stores a manually addressed notification. Exactly one recipient
// side must be set.
func (s *NotificationService) Create(in *CreateNotificationIn) (*entity.Notification, error) {
	if (in.UserID == nil) == (in.VendorID == nil) {
		return nil, ErrBadRecipient
	}
	n := &entity.Notification{
		UserID:   in.UserID,
		VendorID: in.VendorID,
		Type:     in.Type,
		Message:  in.Message,
		OrderID:  in.OrderID,
	}
	if err := s.Repo.Create(n); err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.Publish(n)
	}
	return n, nil
}

func (s *NotificationService) MarkRead(userID, id uint) error {
	affected, err := s.Repo.MarkRead(userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *NotificationService) MarkReadForVendor(vendorID, id uint) error {
	affected, err := s.Repo.MarkReadForVendor(vendorID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *NotificationService) Delete(userID, id uint) error {
	affected, err := s.Repo.Delete(userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
