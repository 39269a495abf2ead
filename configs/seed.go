package configs

import (
	"log"

	"github.com/jculp24/thrsty/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedVendorAdmin creates the first vendor-admin account from env, so a
// fresh install has someone who can work the order queue.
func SeedVendorAdmin(db *gorm.DB) error {
	email := getEnv("VENDOR_ADMIN_EMAIL", "")
	pass := getEnv("VENDOR_ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding vendor admin: missing VENDOR_ADMIN_EMAIL/VENDOR_ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("vendor admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Vendor",
		LastName:  "Admin",
		Role:      "vendor",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	var vendor entity.Vendor
	if err := db.First(&vendor).Error; err != nil {
		log.Println("skip vendor admin relation: no vendors seeded yet")
		return nil
	}
	return db.Create(&entity.VendorAdmin{UserID: admin.ID, VendorID: vendor.ID}).Error
}

// SeedVendors loads a demo catalog when the vendors table is empty.
func SeedVendors(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Vendor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	vendors := []struct {
		v      entity.Vendor
		drinks []entity.Drink
	}{
		{
			v: entity.Vendor{Name: "Brew Haven", Location: "Student Union, Level 1", Category: "Coffee", Rating: 4.7, IsFeatured: true},
			drinks: []entity.Drink{
				{Name: "Cold Brew", Price: 425, Category: "Coffee"},
				{Name: "Oat Latte", Price: 525, Category: "Coffee"},
				{Name: "Espresso", Price: 300, Category: "Coffee"},
			},
		},
		{
			v: entity.Vendor{Name: "Leaf & Steep", Location: "Library Plaza", Category: "Tea", Rating: 4.4},
			drinks: []entity.Drink{
				{Name: "Matcha Latte", Price: 550, Category: "Tea"},
				{Name: "Thai Iced Tea", Price: 475, Category: "Tea"},
			},
		},
		{
			v: entity.Vendor{Name: "Squeeze Bar", Location: "Rec Center Entrance", Category: "Juice", Rating: 4.2},
			drinks: []entity.Drink{
				{Name: "Green Machine", Price: 650, Category: "Juice"},
				{Name: "Citrus Crush", Price: 600, Category: "Juice"},
			},
		},
	}

	for _, row := range vendors {
		v := row.v
		if err := db.Create(&v).Error; err != nil {
			return err
		}
		for _, d := range row.drinks {
			d.VendorID = v.ID
			if err := db.Create(&d).Error; err != nil {
				return err
			}
		}
	}

	log.Println("demo vendors seeded")
	return nil
}
