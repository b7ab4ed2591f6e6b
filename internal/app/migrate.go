package app

import (
	"fmt"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/messaging/kafka"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&domain.Worker{},
		&domain.Job{},
		&domain.DayAssignment{},
		&domain.PayrollSnapshot{},
		&domain.UserProfile{},
		&kafka.OutboxRecord{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
