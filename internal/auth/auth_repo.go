package auth

import (
	"context"
	"strings"

	"github.com/BMarcano/dispatcher/internal/domain"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, user *domain.UserProfile) error
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *domain.UserProfile) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	var user domain.UserProfile
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	return &user, err
}

// GetByID loads the profile together with its linked worker, if any.
func (r *repository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var user domain.UserProfile
	err := r.db.WithContext(ctx).
		Preload("Worker").
		First(&user, "id = ?", id).Error
	return &user, err
}
