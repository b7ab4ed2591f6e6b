package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Worker struct {
	ID        string          `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string          `gorm:"column:name;type:varchar(255);not null;index" json:"name"`
	Email     string          `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_workers_email" json:"email"`
	DailyRate decimal.Decimal `gorm:"column:daily_rate;type:numeric(12,2);not null;default:0" json:"daily_rate"`
	CreatedAt time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Worker) TableName() string {
	return "workers"
}
