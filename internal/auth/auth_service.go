package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "github.com/BMarcano/dispatcher/internal/auth/errors"
	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"
	"github.com/BMarcano/dispatcher/internal/shared/token"
	"github.com/BMarcano/dispatcher/internal/worker"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Me(ctx context.Context, session contextutil.Session) (UserResponse, error)
}

type service struct {
	repo    Repository
	workers worker.Repository
	issuer  *token.Issuer
	logger  *zap.Logger
}

func NewService(repo Repository, workers worker.Repository, issuer *token.Issuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, workers: workers, issuer: issuer, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("login unknown email")
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login fetch user failed", zap.Error(err))
		return LoginResponse{}, apperror.Fetch(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login wrong password", zap.String("user_id", user.ID))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	res, err := s.issue(*user)
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return res, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (LoginResponse, error) {
	if refreshToken == "" {
		return LoginResponse{}, autherrors.ErrTokenNotFound
	}

	claims, err := s.issuer.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return LoginResponse{}, autherrors.ErrTokenExpired
		}
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}

	// role or worker link may have changed since the token was issued
	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return LoginResponse{}, apperror.Fetch(err)
	}

	return s.issue(*user)
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	role := domain.Role(strings.ToLower(strings.TrimSpace(req.Role)))
	if !role.Valid() {
		return UserResponse{}, autherrors.ErrInvalidRole
	}

	var workerID *string
	if id := strings.TrimSpace(req.WorkerID); id != "" {
		workerID = &id
	}
	if role == domain.RoleWorker && workerID == nil {
		return UserResponse{}, autherrors.ErrWorkerRequired
	}

	var linked *domain.Worker
	if workerID != nil {
		w, err := s.workers.FindByID(ctx, *workerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return UserResponse{}, autherrors.ErrWorkerNotFound
			}
			return UserResponse{}, apperror.Fetch(err)
		}
		linked = w
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	user := &domain.UserProfile{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Role:         role,
		WorkerID:     workerID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Warn("register persist failed", zap.String("email", user.Email), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	user.Worker = linked

	s.logger.Info("register success", zap.String("user_id", user.ID), zap.String("role", string(role)))
	return mapToUserResponse(*user), nil
}

func (s *service) Me(ctx context.Context, session contextutil.Session) (UserResponse, error) {
	user, err := s.repo.GetByID(ctx, session.UserID)
	if err != nil {
		return UserResponse{}, apperror.AsFetch(mapRepositoryError(err))
	}
	return mapToUserResponse(*user), nil
}

func (s *service) issue(user domain.UserProfile) (LoginResponse, error) {
	claims := token.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	if user.WorkerID != nil {
		claims.WorkerID = *user.WorkerID
	}

	claims.Type = token.TypeAccess
	access, err := s.issuer.Sign(claims, token.AccessTTL)
	if err != nil {
		s.logger.Error("sign access token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	claims.Type = token.TypeRefresh
	refresh, err := s.issuer.Sign(claims, token.RefreshTTL)
	if err != nil {
		s.logger.Error("sign refresh token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		User:         mapToUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(token.AccessTTL.Seconds()),
	}, nil
}
