package job

import (
	"context"
	"database/sql"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, j *domain.Job) error
	FindAll(ctx context.Context) ([]domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Job, error)
	UpdateStatus(ctx context.Context, id string, status domain.JobStatus) error
}

// AssignmentReader is the slice of the assignment store the job views need.
type AssignmentReader interface {
	ListByJob(ctx context.Context, jobID string) ([]domain.DayAssignment, error)
	ListByJobs(ctx context.Context, jobIDs []string) ([]domain.DayAssignment, error)
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

func (r *repository) Create(ctx context.Context, j *domain.Job) error {
	return r.conn(ctx).Create(j).Error
}

func (r *repository) FindAll(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.conn(ctx).
		Order("start_date ASC").
		Order("id ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	var j domain.Job
	err := r.conn(ctx).First(&j, "id = ?", id).Error
	return &j, err
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]domain.Job, error) {
	if len(ids) == 0 {
		return []domain.Job{}, nil
	}
	var jobs []domain.Job
	err := r.conn(ctx).
		Where("id IN ?", ids).
		Order("start_date ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status domain.JobStatus) error {
	res := r.conn(ctx).
		Model(&domain.Job{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
