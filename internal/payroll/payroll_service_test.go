package payroll_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/payroll"
	payrollerrors "github.com/BMarcano/dispatcher/internal/payroll/errors"
	payrollMock "github.com/BMarcano/dispatcher/internal/payroll/mock"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupServiceTest(t *testing.T) (payroll.Service, *payrollMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := payrollMock.NewMockRepository(ctrl)
	return payroll.NewService(repo), repo
}

func snapshot(worker, name, start, end string, days int, rate, total string) domain.PayrollSnapshot {
	return domain.PayrollSnapshot{
		ID:           worker + "-" + start,
		WorkerID:     worker,
		WorkerName:   name,
		WeekStart:    domain.MustParseDate(start),
		WeekEnd:      domain.MustParseDate(end),
		UniqueDays:   days,
		RateSnapshot: decimal.RequireFromString(rate),
		Total:        decimal.RequireFromString(total),
	}
}

func sampleSnapshots() []domain.PayrollSnapshot {
	return []domain.PayrollSnapshot{
		snapshot("w-1", "Ana", "2026-03-09", "2026-03-15", 5, "200", "1000"),
		snapshot("w-2", "Ben, Jr.", "2026-03-09", "2026-03-15", 3, "150.5", "451.5"),
		snapshot("w-1", "Ana", "2026-03-02", "2026-03-08", 4, "180", "720.10"),
	}
}

func TestPayrollService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates stored totals", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().List(ctx, payroll.SnapshotFilter{}).Return(sampleSnapshots(), nil)

		res, err := svc.Summary(ctx, payroll.SnapshotFilterQuery{})

		require.NoError(t, err)
		assert.Equal(t, "2171.60", res.Total)
		assert.Equal(t, 2, res.WorkerCount)
		assert.Equal(t, 12, res.DayCount)
		assert.Equal(t, 3, res.RecordCount)
	})

	t.Run("empty set is zero", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().List(ctx, gomock.Any()).Return(nil, nil)

		res, err := svc.Summary(ctx, payroll.SnapshotFilterQuery{})

		require.NoError(t, err)
		assert.Equal(t, payroll.SummaryResponse{Total: "0.00"}, res)
	})

	t.Run("passes the week window", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().
			List(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, f payroll.SnapshotFilter) ([]domain.PayrollSnapshot, error) {
				require.NotNil(t, f.WeekStart)
				require.NotNil(t, f.WeekEnd)
				assert.Equal(t, "2026-03-09", f.WeekStart.String())
				assert.Equal(t, "2026-03-15", f.WeekEnd.String())
				return sampleSnapshots()[:2], nil
			})

		res, err := svc.Summary(ctx, payroll.SnapshotFilterQuery{WeekStart: "2026-03-09", WeekEnd: "2026-03-15"})

		require.NoError(t, err)
		assert.Equal(t, "1451.50", res.Total)
	})

	t.Run("inverted window", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.Summary(ctx, payroll.SnapshotFilterQuery{WeekStart: "2026-03-15", WeekEnd: "2026-03-09"})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidWeekRange)
	})

	t.Run("store failure is a fetch error", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().List(ctx, gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := svc.Summary(ctx, payroll.SnapshotFilterQuery{})
		assert.ErrorIs(t, err, apperror.ErrFetch)
	})
}

func TestPayrollService_ListSnapshots(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupServiceTest(t)
	repo.EXPECT().List(ctx, gomock.Any()).Return(sampleSnapshots(), nil)

	res, err := svc.ListSnapshots(ctx, payroll.SnapshotFilterQuery{})

	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "150.50", res[1].RateSnapshot)
	assert.Equal(t, "720.10", res[2].Total)
	assert.Equal(t, "2026-03-02", res[2].WeekStart)
}

func TestPayrollService_ExportCSV(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupServiceTest(t)
	repo.EXPECT().List(ctx, gomock.Any()).Return(sampleSnapshots(), nil)

	var buf bytes.Buffer
	err := svc.ExportCSV(ctx, payroll.SnapshotFilterQuery{}, &buf)

	require.NoError(t, err)
	assert.Equal(t,
		"Worker Name,Week Range,Days Counted,Rate Snapshot,Total\n"+
			"Ana,2026-03-09 to 2026-03-15,5,200.00,1000.00\n"+
			"\"Ben, Jr.\",2026-03-09 to 2026-03-15,3,150.50,451.50\n"+
			"Ana,2026-03-02 to 2026-03-08,4,180.00,720.10\n",
		buf.String(),
	)
}

func TestWriteCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, payroll.WriteCSV(&buf, nil))
	assert.Equal(t, "Worker Name,Week Range,Days Counted,Rate Snapshot,Total\n", buf.String())
}
