package repository

import (
	"github.com/jculp24/thrsty/entity"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) ListForUser(userID uint) ([]entity.Notification, error) {
	var out []entity.Notification
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *NotificationRepository) ListForVendor(vendorID uint) ([]entity.Notification, error) {
	var out []entity.Notification
	err := r.DB.Where("vendor_id = ?", vendorID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// MarkRead flips is_read for a notification owned by the user.
func (r *NotificationRepository) MarkRead(userID, id uint) (int64, error) {
	res := r.DB.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// MarkReadForVendor flips is_read for a vendor-addressed notification.
func (r *NotificationRepository) MarkReadForVendor(vendorID, id uint) (int64, error) {
	res := r.DB.Model(&entity.Notification{}).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *NotificationRepository) Delete(userID, id uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Notification{})
	return res.RowsAffected, res.Error
}
