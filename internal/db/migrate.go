package db

import (
	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate creates the schema if it is missing. Safe to run on every
// startup against an already-initialized store.
func Migrate(gdb *gorm.DB) error {
	logger.Info("Running database migrations...")

	// The order/tag link uses an explicit join model so its rows keep a
	// surrogate key of their own.
	if err := gdb.SetupJoinTable(&model.Order{}, "Tags", &model.OrderTag{}); err != nil {
		logger.Error("Failed to set up order tag join table", err)
		return err
	}
	if err := gdb.SetupJoinTable(&model.Tag{}, "Orders", &model.OrderTag{}); err != nil {
		logger.Error("Failed to set up tag order join table", err)
		return err
	}

	models := []interface{}{
		&model.Contact{},
		&model.Product{},
		&model.Tag{},
		&model.Order{},
		&model.OrderLine{},
		&model.OrderTag{},
	}

	if err := gdb.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
