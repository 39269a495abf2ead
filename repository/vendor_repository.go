package repository

import (
	"github.com/jculp24/thrsty/entity"
	"gorm.io/gorm"
)

type VendorRepository struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) List() ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	err := r.DB.Order("is_featured DESC, name").Find(&vendors).Error
	return vendors, err
}

func (r *VendorRepository) Get(id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Vendor{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VendorRepository) Create(v *entity.Vendor) error {
	return r.DB.Create(v).Error
}

func (r *VendorRepository) Update(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Vendor{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *VendorRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Vendor{}, id).Error
}

func (r *VendorRepository) Menu(vendorID uint) ([]entity.Drink, error) {
	var drinks []entity.Drink
	err := r.DB.Where("vendor_id = ?", vendorID).Order("category, name").Find(&drinks).Error
	return drinks, err
}

// IsAdmin reports whether the user holds the vendor-admin relation for
// this vendor.
func (r *VendorRepository) IsAdmin(vendorID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.VendorAdmin{}).
		Where("vendor_id = ? AND user_id = ?", vendorID, userID).
		Count(&count).Error
	return count > 0, err
}
