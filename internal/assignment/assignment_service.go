package assignment

import (
	"context"
	"database/sql"
	"strings"
	"time"

	assignmenterrors "github.com/BMarcano/dispatcher/internal/assignment/errors"
	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/events"
	"github.com/BMarcano/dispatcher/internal/job"
	"github.com/BMarcano/dispatcher/internal/messaging/kafka"
	"github.com/BMarcano/dispatcher/internal/schedule"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"
	"github.com/BMarcano/dispatcher/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=assignment_service.go -destination=mock/assignment_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q ListAssignmentsQuery) ([]job.DayAssignmentResponse, error)
	ListByJob(ctx context.Context, jobID string) ([]job.DayAssignmentResponse, error)
	Create(ctx context.Context, actor contextutil.Session, jobID string, req CreateAssignmentsRequest) (CreateAssignmentsResponse, error)
	Preview(ctx context.Context, jobID string, req CreateAssignmentsRequest) (PreviewResponse, error)
	Delete(ctx context.Context, actor contextutil.Session, id string) error
	ListForWorker(ctx context.Context, actor contextutil.Session) (WorkerViewResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	jobs    job.Repository
	workers worker.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	jobs job.Repository,
	workers worker.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		jobs:    jobs,
		workers: workers,
		outbox:  outbox,
		logger:  l,
	}
}

type batch struct {
	days       []domain.Date
	multiplier decimal.Decimal
}

// parseBatch checks the request shape; repeated days collapse to one.
func parseBatch(req CreateAssignmentsRequest) (batch, error) {
	multiplier := domain.FullDay
	if req.Multiplier != nil {
		if err := domain.ValidateMultiplier(*req.Multiplier); err != nil {
			return batch{}, err
		}
		multiplier = *req.Multiplier
	}

	seen := make(map[domain.Date]struct{}, len(req.Days))
	days := make([]domain.Date, 0, len(req.Days))
	for _, raw := range req.Days {
		d, err := domain.ParseDate(strings.TrimSpace(raw))
		if err != nil {
			return batch{}, assignmenterrors.ErrInvalidDay
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	return batch{days: days, multiplier: multiplier}, nil
}

func (b batch) records(j domain.Job, workerID string, now time.Time) ([]domain.DayAssignment, error) {
	out := make([]domain.DayAssignment, len(b.days))
	for i, d := range b.days {
		if !j.Covers(d) {
			return nil, assignmenterrors.ErrDayOutsideJob
		}
		out[i] = domain.DayAssignment{
			ID:         uuid.New().String(),
			JobID:      j.ID,
			DayDate:    d,
			WorkerID:   workerID,
			Multiplier: b.multiplier,
			CreatedAt:  now,
		}
	}
	return out, nil
}

// List returns every assignment, or those of one job when q.JobID is set.
func (s *service) List(ctx context.Context, q ListAssignmentsQuery) ([]job.DayAssignmentResponse, error) {
	if q.JobID != "" {
		return s.ListByJob(ctx, q.JobID)
	}

	assignments, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("list all assignments failed", zap.Error(err))
		return nil, apperror.AsFetch(err)
	}
	return job.ToDayAssignmentResponses(assignments), nil
}

func (s *service) ListByJob(ctx context.Context, jobID string) ([]job.DayAssignmentResponse, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, apperror.AsFetch(mapJobError(err))
	}

	assignments, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		s.logger.Error("list assignments failed", zap.String("job_id", jobID), zap.Error(err))
		return nil, apperror.AsFetch(err)
	}
	return job.ToDayAssignmentResponses(assignments), nil
}

func (s *service) Create(ctx context.Context, actor contextutil.Session, jobID string, req CreateAssignmentsRequest) (CreateAssignmentsResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create assignments requested",
		zap.String("request_id", rid),
		zap.String("job_id", jobID),
		zap.String("worker_id", req.WorkerID),
		zap.Int("days", len(req.Days)),
	)

	b, err := parseBatch(req)
	if err != nil {
		return CreateAssignmentsResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create assignments begin tx failed", zap.Error(err))
		return CreateAssignmentsResponse{}, err
	}
	defer tx.Rollback()

	j, err := s.jobs.WithTx(tx).FindByID(ctx, jobID)
	if err != nil {
		return CreateAssignmentsResponse{}, mapJobError(err)
	}
	if _, err := s.workers.WithTx(tx).FindByID(ctx, req.WorkerID); err != nil {
		return CreateAssignmentsResponse{}, mapWorkerError(err)
	}

	records, err := b.records(*j, req.WorkerID, time.Now().UTC())
	if err != nil {
		s.logger.Warn("create assignments rejected", zap.String("job_id", jobID), zap.Error(err))
		return CreateAssignmentsResponse{}, err
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateBatch(ctx, records); err != nil {
		s.logger.Error("create assignments persist failed", zap.String("job_id", jobID), zap.Error(err))
		return CreateAssignmentsResponse{}, mapRepositoryError(err)
	}

	ids := make([]string, len(records))
	days := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
		days[i] = r.DayDate.String()
	}
	event, err := kafka.NewEvent(rid, "job", jobID, events.AssignmentCreated, events.AssignmentTopic, events.AssignmentCreatedEvent{
		EventType:     events.AssignmentCreated,
		RequestID:     rid,
		JobID:         jobID,
		WorkerID:      req.WorkerID,
		AssignmentIDs: ids,
		Days:          days,
		Multiplier:    b.multiplier.StringFixed(1),
		ActorID:       actor.UserID,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return CreateAssignmentsResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("create assignments outbox failed", zap.String("job_id", jobID), zap.Error(err))
		return CreateAssignmentsResponse{}, err
	}

	all, err := qtx.ListByJob(ctx, jobID)
	if err != nil {
		return CreateAssignmentsResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create assignments commit failed", zap.Error(err))
		return CreateAssignmentsResponse{}, err
	}

	s.logger.Info("create assignments success",
		zap.String("request_id", rid),
		zap.String("job_id", jobID),
		zap.Int("created", len(records)),
	)
	return CreateAssignmentsResponse{
		JobID:            jobID,
		AssignmentStatus: string(schedule.AssignmentStatus(*j, all)),
		Assignments:      job.ToDayAssignmentResponses(records),
	}, nil
}

// Preview applies the request to a Board built from the stored job and
// returns the status it would produce. Nothing is written.
func (s *service) Preview(ctx context.Context, jobID string, req CreateAssignmentsRequest) (PreviewResponse, error) {
	b, err := parseBatch(req)
	if err != nil {
		return PreviewResponse{}, err
	}

	j, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return PreviewResponse{}, apperror.AsFetch(mapJobError(err))
	}
	if _, err := s.workers.FindByID(ctx, req.WorkerID); err != nil {
		return PreviewResponse{}, apperror.AsFetch(mapWorkerError(err))
	}

	existing, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		return PreviewResponse{}, apperror.AsFetch(err)
	}

	records, err := b.records(*j, req.WorkerID, time.Now().UTC())
	if err != nil {
		return PreviewResponse{}, err
	}

	board := schedule.NewBoard([]domain.Job{*j}, existing)
	next := board.WithAssignments(records...)

	return PreviewResponse{
		JobID:            jobID,
		CurrentStatus:    string(board.Status(jobID)),
		AssignmentStatus: string(next.Status(jobID)),
		Assignments:      job.ToDayAssignmentResponses(records),
	}, nil
}

func (s *service) Delete(ctx context.Context, actor contextutil.Session, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete assignment requested",
		zap.String("request_id", rid),
		zap.String("assignment_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete assignment begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete assignment persist failed", zap.String("assignment_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	event, err := kafka.NewEvent(rid, "job", a.JobID, events.AssignmentDeleted, events.AssignmentTopic, events.AssignmentDeletedEvent{
		EventType:    events.AssignmentDeleted,
		RequestID:    rid,
		AssignmentID: a.ID,
		JobID:        a.JobID,
		WorkerID:     a.WorkerID,
		Day:          a.DayDate.String(),
		ActorID:      actor.UserID,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("delete assignment outbox failed", zap.String("assignment_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete assignment commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete assignment success",
		zap.String("request_id", rid),
		zap.String("assignment_id", id),
	)
	return nil
}

func (s *service) ListForWorker(ctx context.Context, actor contextutil.Session) (WorkerViewResponse, error) {
	if !actor.IsWorker() {
		return WorkerViewResponse{}, assignmenterrors.ErrNoWorkerLinked
	}
	workerID := actor.WorkerID
	s.logger.Debug("list own assignments requested", zap.String("worker_id", workerID))

	own, err := s.repo.ListByWorker(ctx, workerID)
	if err != nil {
		s.logger.Error("list own assignments failed", zap.String("worker_id", workerID), zap.Error(err))
		return WorkerViewResponse{}, apperror.AsFetch(err)
	}

	jobIDs := uniqueIDs(own, func(a domain.DayAssignment) string { return a.JobID })

	// every assignment on those jobs, so coworkers can be resolved
	crew, err := s.repo.ListByJobs(ctx, jobIDs)
	if err != nil {
		return WorkerViewResponse{}, apperror.AsFetch(err)
	}

	jobs, err := s.jobs.FindByIDs(ctx, jobIDs)
	if err != nil {
		return WorkerViewResponse{}, apperror.AsFetch(err)
	}

	workers, err := s.workers.FindByIDs(ctx, uniqueIDs(crew, func(a domain.DayAssignment) string { return a.WorkerID }))
	if err != nil {
		return WorkerViewResponse{}, apperror.AsFetch(err)
	}

	view := schedule.BuildWorkerView(workerID, crew, jobs, workers)
	return toWorkerViewResponse(workerID, view, schedule.StatusByJob(jobs, crew)), nil
}

func uniqueIDs(assignments []domain.DayAssignment, key func(domain.DayAssignment) string) []string {
	seen := make(map[string]struct{}, len(assignments))
	out := make([]string, 0, len(assignments))
	for _, a := range assignments {
		id := key(a)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
