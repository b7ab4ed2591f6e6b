package worker

import (
	"context"
	"database/sql"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=worker_repo.go -destination=mock/worker_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *domain.Worker) error
	FindAll(ctx context.Context) ([]domain.Worker, error)
	FindByID(ctx context.Context, id string) (*domain.Worker, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Worker, error)
	Update(ctx context.Context, w *domain.Worker) error
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

func (r *repository) Create(ctx context.Context, w *domain.Worker) error {
	return r.conn(ctx).Create(w).Error
}

func (r *repository) FindAll(ctx context.Context) ([]domain.Worker, error) {
	var workers []domain.Worker
	err := r.conn(ctx).
		Order("name ASC").
		Find(&workers).Error
	return workers, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*domain.Worker, error) {
	var w domain.Worker
	err := r.conn(ctx).First(&w, "id = ?", id).Error
	return &w, err
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]domain.Worker, error) {
	if len(ids) == 0 {
		return []domain.Worker{}, nil
	}
	var workers []domain.Worker
	err := r.conn(ctx).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&workers).Error
	return workers, err
}

func (r *repository) Update(ctx context.Context, w *domain.Worker) error {
	return r.conn(ctx).Save(w).Error
}
