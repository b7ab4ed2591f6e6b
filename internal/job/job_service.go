package job

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/events"
	joberrors "github.com/BMarcano/dispatcher/internal/job/errors"
	"github.com/BMarcano/dispatcher/internal/messaging/kafka"
	"github.com/BMarcano/dispatcher/internal/schedule"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q ListJobsQuery) ([]JobResponse, error)
	GetByID(ctx context.Context, id string) (JobDetailResponse, error)
	Create(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	UpdateStatus(ctx context.Context, actor contextutil.Session, id string, req UpdateJobStatusRequest) (JobResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	assignments AssignmentReader
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	assignments AssignmentReader,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		assignments: assignments,
		outbox:      outbox,
		logger:      l,
	}
}

func (q ListJobsQuery) filter() (schedule.JobFilter, error) {
	var f schedule.JobFilter
	if q.Status != "" {
		st := domain.JobStatus(q.Status)
		if !st.Valid() {
			return f, domain.ErrInvalidJobStatus
		}
		f.Status = &st
	}
	if strings.TrimSpace(q.Date) != "" {
		d, err := domain.ParseDate(strings.TrimSpace(q.Date))
		if err != nil {
			return f, joberrors.ErrInvalidFilterDate
		}
		f.Date = &d
	}
	return f, nil
}

func (s *service) List(ctx context.Context, q ListJobsQuery) ([]JobResponse, error) {
	s.logger.Debug("list jobs requested",
		zap.String("status", q.Status),
		zap.String("date", q.Date),
	)

	f, err := q.filter()
	if err != nil {
		return nil, err
	}

	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list jobs fetch failed", zap.Error(err))
		return nil, apperror.AsFetch(mapRepositoryError(err))
	}
	jobs = schedule.FilterJobs(jobs, f)

	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}

	assignments, err := s.assignments.ListByJobs(ctx, ids)
	if err != nil {
		s.logger.Error("list jobs fetch assignments failed", zap.Error(err))
		return nil, apperror.AsFetch(err)
	}

	statuses := schedule.StatusByJob(jobs, assignments)
	res := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		res[i] = ToJobResponse(j, statuses[j.ID])
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobDetailResponse, error) {
	s.logger.Debug("get job requested", zap.String("job_id", id))

	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get job failed", zap.String("job_id", id), zap.Error(err))
		return JobDetailResponse{}, apperror.AsFetch(mapRepositoryError(err))
	}

	assignments, err := s.assignments.ListByJob(ctx, id)
	if err != nil {
		s.logger.Error("get job fetch assignments failed", zap.String("job_id", id), zap.Error(err))
		return JobDetailResponse{}, apperror.AsFetch(err)
	}

	return toJobDetailResponse(*j, assignments), nil
}

func (s *service) Create(ctx context.Context, req CreateJobRequest) (JobResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create job requested",
		zap.String("request_id", rid),
		zap.String("external_reference", req.ExternalReference),
	)

	start, err := domain.ParseDate(strings.TrimSpace(req.StartDate))
	if err != nil {
		return JobResponse{}, joberrors.ErrInvalidStartDate
	}
	end, err := domain.ParseDate(strings.TrimSpace(req.EndDate))
	if err != nil {
		return JobResponse{}, joberrors.ErrInvalidEndDate
	}

	j, err := domain.NewJob(
		strings.TrimSpace(req.ExternalReference),
		strings.TrimSpace(req.CustomerName),
		strings.TrimSpace(req.Address),
		start, end,
		domain.JobStatus(req.Status),
		req.Notes,
	)
	if err != nil {
		s.logger.Warn("create job rejected", zap.String("request_id", rid), zap.Error(err))
		return JobResponse{}, err
	}
	j.ID = uuid.New().String()

	if err := s.repo.Create(ctx, &j); err != nil {
		s.logger.Error("create job persist failed", zap.String("request_id", rid), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create job success",
		zap.String("request_id", rid),
		zap.String("job_id", j.ID),
	)
	return ToJobResponse(j, schedule.StatusNotAssigned), nil
}

func (s *service) UpdateStatus(ctx context.Context, actor contextutil.Session, id string, req UpdateJobStatusRequest) (JobResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update job status requested",
		zap.String("request_id", rid),
		zap.String("job_id", id),
		zap.String("status", req.Status),
	)

	to := domain.JobStatus(req.Status)
	if !to.Valid() {
		return JobResponse{}, domain.ErrInvalidJobStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update job status begin tx failed", zap.Error(err))
		return JobResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	j, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update job status fetch failed", zap.String("job_id", id), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}
	from := j.Status

	if from != to {
		if err := qtx.UpdateStatus(ctx, id, to); err != nil {
			s.logger.Error("update job status persist failed", zap.String("job_id", id), zap.Error(err))
			return JobResponse{}, mapRepositoryError(err)
		}

		event, err := kafka.NewEvent(rid, "job", id, events.JobStatusChanged, events.JobTopic, events.JobStatusChangedEvent{
			EventType:  events.JobStatusChanged,
			RequestID:  rid,
			JobID:      id,
			From:       string(from),
			To:         string(to),
			ActorID:    actor.UserID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return JobResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("update job status outbox failed", zap.String("job_id", id), zap.Error(err))
			return JobResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update job status commit failed", zap.Error(err))
		return JobResponse{}, err
	}
	j.Status = to

	assignments, err := s.assignments.ListByJob(ctx, id)
	if err != nil {
		return JobResponse{}, apperror.AsFetch(err)
	}

	s.logger.Info("update job status success",
		zap.String("request_id", rid),
		zap.String("job_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	return ToJobResponse(*j, schedule.AssignmentStatus(*j, assignments)), nil
}
