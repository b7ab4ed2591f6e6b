package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollSnapshot is a frozen weekly pay record. RateSnapshot is the rate
// at generation time and Total is trusted as stored; neither is ever
// recomputed from the worker's current daily rate.
type PayrollSnapshot struct {
	ID           string          `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	WorkerID     string          `gorm:"column:worker_id;type:uuid;not null;index" json:"worker_id"`
	WorkerName   string          `gorm:"column:worker_name;type:varchar(255);not null" json:"worker_name"`
	WeekStart    Date            `gorm:"column:week_start;type:date;not null;index" json:"week_start"`
	WeekEnd      Date            `gorm:"column:week_end;type:date;not null" json:"week_end"`
	UniqueDays   int             `gorm:"column:unique_days;not null;default:0" json:"unique_days"`
	RateSnapshot decimal.Decimal `gorm:"column:rate_snapshot;type:numeric(12,2);not null" json:"rate_snapshot"`
	Total        decimal.Decimal `gorm:"column:total;type:numeric(14,2);not null" json:"total"`
	CreatedAt    time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (PayrollSnapshot) TableName() string {
	return "payroll_snapshots"
}
