package payroll

import (
	"context"

	"github.com/BMarcano/dispatcher/internal/domain"

	"gorm.io/gorm"
)

// SnapshotFilter keeps snapshots whose week lies inside [WeekStart, WeekEnd].
// Nil bounds are open.
type SnapshotFilter struct {
	WeekStart *domain.Date
	WeekEnd   *domain.Date
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, f SnapshotFilter) ([]domain.PayrollSnapshot, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, f SnapshotFilter) ([]domain.PayrollSnapshot, error) {
	q := r.db.WithContext(ctx)
	if f.WeekStart != nil {
		q = q.Where("week_start >= ?", *f.WeekStart)
	}
	if f.WeekEnd != nil {
		q = q.Where("week_end <= ?", *f.WeekEnd)
	}

	var snapshots []domain.PayrollSnapshot
	err := q.
		Order("week_start DESC").
		Order("worker_name ASC").
		Find(&snapshots).Error
	return snapshots, err
}
