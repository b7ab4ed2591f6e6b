package worker

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"
	workererrors "github.com/BMarcano/dispatcher/internal/worker/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// WorkersAllKey caches the roster shown in the assign dialog.
const (
	WorkersAllKey = "workers:all"
	workersAllTTL = 10 * time.Minute
)

//go:generate mockgen -source=worker_service.go -destination=mock/worker_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	GetAll(ctx context.Context) ([]WorkerResponse, error)
	GetByID(ctx context.Context, id string) (WorkerResponse, error)
	Update(ctx context.Context, id string, req UpdateWorkerRequest) (WorkerResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService builds the worker service. rdb may be nil, which disables the
// roster cache.
func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("worker.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worker.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func parseDailyRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || rate.IsNegative() {
		return decimal.Decimal{}, workererrors.ErrInvalidDailyRate
	}
	return rate.Round(2), nil
}

func (s *service) Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create worker requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	rate, err := parseDailyRate(req.DailyRate)
	if err != nil {
		s.logger.Warn("create worker invalid daily_rate", zap.String("daily_rate", req.DailyRate))
		return WorkerResponse{}, err
	}

	w := &domain.Worker{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		DailyRate: rate,
	}

	if err := s.repo.Create(ctx, w); err != nil {
		s.logger.Error("create worker persist failed", zap.String("request_id", rid), zap.Error(err))
		return WorkerResponse{}, mapRepositoryError(err)
	}

	s.invalidateRoster(ctx)

	s.logger.Info("create worker success",
		zap.String("request_id", rid),
		zap.String("worker_id", w.ID),
	)
	return mapToResponse(*w), nil
}

func (s *service) GetAll(ctx context.Context) ([]WorkerResponse, error) {
	s.logger.Debug("get all workers requested")

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, WorkersAllKey).Result()
		if err == nil {
			var resp []WorkerResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// concurrent misses share one query
	v, err, _ := s.sf.Do(WorkersAllKey, func() (any, error) {
		workers, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(workers)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, WorkersAllKey, string(data), workersAllTTL).Err(); err != nil {
					s.logger.Warn("cache worker roster failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all workers failed", zap.Error(err))
		return nil, apperror.AsFetch(mapRepositoryError(err))
	}

	return v.([]WorkerResponse), nil
}

func (s *service) invalidateRoster(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, WorkersAllKey).Err(); err != nil {
		s.logger.Warn("invalidate worker roster failed", zap.String("key", WorkersAllKey), zap.Error(err))
	}
}

func (s *service) GetByID(ctx context.Context, id string) (WorkerResponse, error) {
	s.logger.Debug("get worker by id requested", zap.String("worker_id", id))

	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get worker by id failed", zap.String("worker_id", id), zap.Error(err))
		return WorkerResponse{}, apperror.AsFetch(mapRepositoryError(err))
	}

	return mapToResponse(*w), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateWorkerRequest) (WorkerResponse, error) {
	s.logger.Debug("update worker requested", zap.String("worker_id", id))

	rate, err := parseDailyRate(req.DailyRate)
	if err != nil {
		return WorkerResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update worker begin tx failed", zap.Error(err))
		return WorkerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update worker fetch existing failed", zap.Error(err))
		return WorkerResponse{}, mapRepositoryError(err)
	}

	w.Name = strings.TrimSpace(req.Name)
	w.Email = strings.ToLower(strings.TrimSpace(req.Email))
	w.DailyRate = rate

	if err := qtx.Update(ctx, w); err != nil {
		s.logger.Error("update worker persist failed", zap.Error(err))
		return WorkerResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update worker commit failed", zap.Error(err))
		return WorkerResponse{}, err
	}
	s.invalidateRoster(ctx)

	s.logger.Info("update worker success", zap.String("worker_id", id))
	return mapToResponse(*w), nil
}

func mapToResponse(w domain.Worker) WorkerResponse {
	return WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		DailyRate: w.DailyRate.StringFixed(2),
	}
}

func mapToListResponse(workers []domain.Worker) []WorkerResponse {
	res := make([]WorkerResponse, len(workers))
	for i, w := range workers {
		res[i] = mapToResponse(w)
	}
	return res
}
