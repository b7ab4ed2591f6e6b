package payroll

import (
	"context"
	"io"
	"strings"

	"github.com/BMarcano/dispatcher/internal/domain"
	payrollerrors "github.com/BMarcano/dispatcher/internal/payroll/errors"
	"github.com/BMarcano/dispatcher/internal/schedule"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	ListSnapshots(ctx context.Context, q SnapshotFilterQuery) ([]SnapshotResponse, error)
	Summary(ctx context.Context, q SnapshotFilterQuery) (SummaryResponse, error)
	ExportCSV(ctx context.Context, q SnapshotFilterQuery, w io.Writer) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, logger: l}
}

func (q SnapshotFilterQuery) filter() (SnapshotFilter, error) {
	var f SnapshotFilter
	if v := strings.TrimSpace(q.WeekStart); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return f, payrollerrors.ErrInvalidWeekStart
		}
		f.WeekStart = &d
	}
	if v := strings.TrimSpace(q.WeekEnd); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return f, payrollerrors.ErrInvalidWeekEnd
		}
		f.WeekEnd = &d
	}
	if f.WeekStart != nil && f.WeekEnd != nil && f.WeekEnd.Before(*f.WeekStart) {
		return f, payrollerrors.ErrInvalidWeekRange
	}
	return f, nil
}

func (s *service) load(ctx context.Context, q SnapshotFilterQuery) ([]domain.PayrollSnapshot, error) {
	f, err := q.filter()
	if err != nil {
		return nil, err
	}

	snapshots, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("list payroll snapshots failed", zap.Error(err))
		return nil, apperror.AsFetch(err)
	}
	return snapshots, nil
}

func (s *service) ListSnapshots(ctx context.Context, q SnapshotFilterQuery) ([]SnapshotResponse, error) {
	snapshots, err := s.load(ctx, q)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(snapshots), nil
}

func (s *service) Summary(ctx context.Context, q SnapshotFilterQuery) (SummaryResponse, error) {
	snapshots, err := s.load(ctx, q)
	if err != nil {
		return SummaryResponse{}, err
	}

	sum := schedule.AggregatePayroll(snapshots)
	return SummaryResponse{
		Total:       sum.Total.StringFixed(2),
		WorkerCount: sum.WorkerCount,
		DayCount:    sum.DayCount,
		RecordCount: sum.RecordCount,
	}, nil
}

func (s *service) ExportCSV(ctx context.Context, q SnapshotFilterQuery, w io.Writer) error {
	snapshots, err := s.load(ctx, q)
	if err != nil {
		return err
	}

	if err := WriteCSV(w, snapshots); err != nil {
		s.logger.Error("write payroll csv failed", zap.Error(err))
		return apperror.Wrap(err, payrollerrors.ErrExportFailed.Code, payrollerrors.ErrExportFailed.Message, payrollerrors.ErrExportFailed.HTTPStatus)
	}

	s.logger.Info("payroll export written", zap.Int("rows", len(snapshots)))
	return nil
}
