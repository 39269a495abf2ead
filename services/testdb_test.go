package services

import (
	"path/filepath"
	"testing"

	"github.com/jculp24/thrsty/configs"
	"github.com/jculp24/thrsty/entity"
	"github.com/jculp24/thrsty/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewVendorRepository(db),
		repository.NewNotificationRepository(db),
		nil,
	)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", FirstName: "Test", LastName: "User"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedVendor(t *testing.T, db *gorm.DB, name string, prices ...int64) (*entity.Vendor, []entity.Drink) {
	t.Helper()
	v := &entity.Vendor{Name: name, Location: "Campus"}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	drinks := make([]entity.Drink, 0, len(prices))
	for _, p := range prices {
		d := entity.Drink{Name: name + " drink", Price: p, VendorID: v.ID}
		if err := db.Create(&d).Error; err != nil {
			t.Fatalf("seed drink: %v", err)
		}
		drinks = append(drinks, d)
	}
	return v, drinks
}

func seedVendorAdmin(t *testing.T, db *gorm.DB, userID, vendorID uint) {
	t.Helper()
	if err := db.Create(&entity.VendorAdmin{UserID: userID, VendorID: vendorID}).Error; err != nil {
		t.Fatalf("seed vendor admin: %v", err)
	}
}
