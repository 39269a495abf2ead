package configs

import (
	"fmt"

	"github.com/jculp24/thrsty/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDB connects to the configured database. The handle is returned, not
// stored globally, so tests can substitute their own.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return gorm.Open(dial, &gorm.Config{})
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Vendor{}, &entity.VendorAdmin{},
		&entity.Drink{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Notification{},
	)
}
