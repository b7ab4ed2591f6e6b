package domain

import (
	"net/http"
	"time"

	"github.com/BMarcano/dispatcher/internal/shared/apperror"
)

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusDone       JobStatus = "done"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusDone:
		return true
	default:
		return false
	}
}

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidJobStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of scheduled, in_progress, done",
		http.StatusBadRequest,
	)
)

// Job spans StartDate..EndDate, both inclusive.
type Job struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ExternalRef  string    `gorm:"column:hcp_id;type:varchar(64);not null;uniqueIndex" json:"external_reference"`
	CustomerName string    `gorm:"column:customer_name;type:varchar(255);not null" json:"customer_name"`
	Address      string    `gorm:"column:address;type:text;not null" json:"address"`
	StartDate    Date      `gorm:"column:start_date;type:date;not null;index" json:"start_date"`
	EndDate      Date      `gorm:"column:end_date;type:date;not null" json:"end_date"`
	Status       JobStatus `gorm:"column:status;type:varchar(20);not null;default:scheduled;index" json:"status"`
	Notes        *string   `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// Validate enforces the invariants a Job must satisfy before it is accepted.
func (j Job) Validate() error {
	if j.EndDate.Before(j.StartDate) {
		return ErrInvalidDateRange
	}
	if !j.Status.Valid() {
		return ErrInvalidJobStatus
	}
	return nil
}

// Covers reports whether d is one of the job's calendar days.
func (j Job) Covers(d Date) bool {
	return d.Within(j.StartDate, j.EndDate)
}

// NewJob builds a Job and validates it. An empty status means scheduled.
func NewJob(externalRef, customerName, address string, start, end Date, status JobStatus, notes *string) (Job, error) {
	if status == "" {
		status = JobStatusScheduled
	}
	j := Job{
		ExternalRef:  externalRef,
		CustomerName: customerName,
		Address:      address,
		StartDate:    start,
		EndDate:      end,
		Status:       status,
		Notes:        notes,
	}
	if err := j.Validate(); err != nil {
		return Job{}, err
	}
	return j, nil
}
