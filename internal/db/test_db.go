package db

import (
	"fmt"
	"log"

	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB() (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := gdb.SetupJoinTable(&model.Order{}, "Tags", &model.OrderTag{}); err != nil {
		return nil, fmt.Errorf("failed to set up join table: %w", err)
	}
	if err := gdb.SetupJoinTable(&model.Tag{}, "Orders", &model.OrderTag{}); err != nil {
		return nil, fmt.Errorf("failed to set up join table: %w", err)
	}

	err = gdb.AutoMigrate(
		&model.Contact{},
		&model.Product{},
		&model.Tag{},
		&model.Order{},
		&model.OrderLine{},
		&model.OrderTag{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return gdb, nil
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Printf("Failed to get DB instance: %v", err)
		return
	}
	sqlDB.Close()
}

// TruncateAllTables removes all data from tables
func TruncateAllTables(gdb *gorm.DB) error {
	tables := []string{"order_tags", "order_lines", "orders", "tags", "products", "contacts"}
	for _, table := range tables {
		if err := gdb.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return err
		}
	}
	return nil
}
