package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayAssignment puts one worker on one calendar day of one job. A job day
// may hold any number of them, and a worker may hold several on the same day.
type DayAssignment struct {
	ID         string          `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	JobID      string          `gorm:"column:job_id;type:uuid;not null;index:idx_day_assignments_job_day" json:"job_id"`
	DayDate    Date            `gorm:"column:day_date;type:date;not null;index:idx_day_assignments_job_day" json:"day_date"`
	WorkerID   string          `gorm:"column:worker_id;type:uuid;not null;index" json:"worker_id"`
	Multiplier decimal.Decimal `gorm:"column:multiplier;type:numeric(3,2);not null;default:1;check:chk_day_assignments_multiplier,multiplier IN (0.5, 1.0)" json:"multiplier"`
	CreatedAt  time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (DayAssignment) TableName() string {
	return "day_assignments"
}
