package job_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/job"
	joberrors "github.com/BMarcano/dispatcher/internal/job/errors"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeJobService struct {
	ListFn         func(ctx context.Context, q job.ListJobsQuery) ([]job.JobResponse, error)
	GetByIDFn      func(ctx context.Context, id string) (job.JobDetailResponse, error)
	CreateFn       func(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error)
	UpdateStatusFn func(ctx context.Context, actor contextutil.Session, id string, req job.UpdateJobStatusRequest) (job.JobResponse, error)
}

func (f *fakeJobService) List(ctx context.Context, q job.ListJobsQuery) ([]job.JobResponse, error) {
	return f.ListFn(ctx, q)
}
func (f *fakeJobService) GetByID(ctx context.Context, id string) (job.JobDetailResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeJobService) Create(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeJobService) UpdateStatus(ctx context.Context, actor contextutil.Session, id string, req job.UpdateJobStatusRequest) (job.JobResponse, error) {
	return f.UpdateStatusFn(ctx, actor, id, req)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func withSession(s contextutil.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", s)
		c.Set("user_id", s.UserID)
		c.Next()
	}
}

func TestJobHandler_List(t *testing.T) {
	t.Run("passes the query filter", func(t *testing.T) {
		svc := &fakeJobService{
			ListFn: func(ctx context.Context, q job.ListJobsQuery) ([]job.JobResponse, error) {
				assert.Equal(t, "in_progress", q.Status)
				assert.Equal(t, "2026-03-05", q.Date)
				return []job.JobResponse{{ID: "job-2", AssignmentStatus: "fully_assigned", DurationDays: 1}}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/jobs?status=in_progress&date=2026-03-05", nil)

		job.NewHandler(svc).List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"assignment_status":"fully_assigned"`)
		assert.Contains(t, w.Body.String(), `"duration_days":1`)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/jobs?status=cancelled", nil)

		job.NewHandler(&fakeJobService{}).List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestJobHandler_Create(t *testing.T) {
	t.Run("invalid range surfaces as validation error", func(t *testing.T) {
		svc := &fakeJobService{
			CreateFn: func(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
				return job.JobResponse{}, domain.ErrInvalidDateRange
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(
			`{"external_reference":"HCP-1","customer_name":"Acme","address":"1 Main","start_date":"2026-03-05","end_date":"2026-03-01"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		job.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})

	t.Run("created", func(t *testing.T) {
		svc := &fakeJobService{
			CreateFn: func(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
				return job.JobResponse{ID: "job-1", Status: "scheduled"}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(
			`{"external_reference":"HCP-1","customer_name":"Acme","address":"1 Main","start_date":"2026-03-01","end_date":"2026-03-05"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		job.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestJobHandler_GetByID(t *testing.T) {
	svc := &fakeJobService{
		GetByIDFn: func(ctx context.Context, id string) (job.JobDetailResponse, error) {
			if id != "5b9d2e7a-1c43-4f08-b6a5-7e3d9c2f1a80" {
				return job.JobDetailResponse{}, joberrors.ErrJobNotFound
			}
			return job.JobDetailResponse{
				JobResponse: job.JobResponse{ID: "job-1"},
				Days:        []job.JobDayResponse{{Date: "2026-03-02", Assignments: []job.DayAssignmentResponse{}}},
			}, nil
		},
	}

	r := gin.New()
	r.GET("/jobs/:id", job.NewHandler(svc).GetByID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/5b9d2e7a-1c43-4f08-b6a5-7e3d9c2f1a80", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"days":[{"date":"2026-03-02","assignments":[]}]`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/6c0e3f8b-2d54-4a19-87b6-8f4e0d3a2b91", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/nope", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
}

func TestJobHandler_UpdateStatus(t *testing.T) {
	t.Run("passes the session as actor", func(t *testing.T) {
		svc := &fakeJobService{
			UpdateStatusFn: func(ctx context.Context, actor contextutil.Session, id string, req job.UpdateJobStatusRequest) (job.JobResponse, error) {
				assert.Equal(t, "user-sup", actor.UserID)
				assert.Equal(t, "5b9d2e7a-1c43-4f08-b6a5-7e3d9c2f1a80", id)
				return job.JobResponse{ID: id, Status: req.Status}, nil
			},
		}

		r := gin.New()
		r.PATCH("/jobs/:id/status",
			withSession(contextutil.Session{UserID: "user-sup", Role: domain.RoleSupervisor}),
			job.NewHandler(svc).UpdateStatus,
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/jobs/5b9d2e7a-1c43-4f08-b6a5-7e3d9c2f1a80/status", strings.NewReader(`{"status":"done"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"done"`)
	})

	t.Run("malformed id", func(t *testing.T) {
		r := gin.New()
		r.PATCH("/jobs/:id/status",
			withSession(contextutil.Session{UserID: "user-sup", Role: domain.RoleSupervisor}),
			job.NewHandler(&fakeJobService{}).UpdateStatus,
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/jobs/not-a-uuid/status", strings.NewReader(`{"status":"done"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "id is invalid")
	})

	t.Run("no session", func(t *testing.T) {
		r := gin.New()
		r.PATCH("/jobs/:id/status", job.NewHandler(&fakeJobService{}).UpdateStatus)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/jobs/5b9d2e7a-1c43-4f08-b6a5-7e3d9c2f1a80/status", strings.NewReader(`{"status":"done"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
