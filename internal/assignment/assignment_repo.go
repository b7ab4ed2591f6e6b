package assignment

import (
	"context"
	"database/sql"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListAll(ctx context.Context) ([]domain.DayAssignment, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.DayAssignment, error)
	ListByJobs(ctx context.Context, jobIDs []string) ([]domain.DayAssignment, error)
	ListByWorker(ctx context.Context, workerID string) ([]domain.DayAssignment, error)
	FindByID(ctx context.Context, id string) (*domain.DayAssignment, error)
	CreateBatch(ctx context.Context, assignments []domain.DayAssignment) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Conn(ctx, r.db, r.tx)
}

// insertion order within a day is created_at, then id for rows written in
// the same statement
func (r *repository) ordered(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Order("day_date ASC").
		Order("created_at ASC").
		Order("id ASC")
}

func (r *repository) ListAll(ctx context.Context) ([]domain.DayAssignment, error) {
	var out []domain.DayAssignment
	err := r.ordered(ctx).Find(&out).Error
	return out, err
}

func (r *repository) ListByJob(ctx context.Context, jobID string) ([]domain.DayAssignment, error) {
	var out []domain.DayAssignment
	err := r.ordered(ctx).
		Where("job_id = ?", jobID).
		Find(&out).Error
	return out, err
}

func (r *repository) ListByJobs(ctx context.Context, jobIDs []string) ([]domain.DayAssignment, error) {
	if len(jobIDs) == 0 {
		return []domain.DayAssignment{}, nil
	}
	var out []domain.DayAssignment
	err := r.ordered(ctx).
		Where("job_id IN ?", jobIDs).
		Find(&out).Error
	return out, err
}

func (r *repository) ListByWorker(ctx context.Context, workerID string) ([]domain.DayAssignment, error) {
	var out []domain.DayAssignment
	err := r.ordered(ctx).
		Where("worker_id = ?", workerID).
		Find(&out).Error
	return out, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*domain.DayAssignment, error) {
	var a domain.DayAssignment
	err := r.conn(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) CreateBatch(ctx context.Context, assignments []domain.DayAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&assignments).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&domain.DayAssignment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
