package schedule_test

import (
	"math/rand"
	"testing"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/schedule"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) domain.Date {
	return domain.MustParseDate(s)
}

func job(id, start, end string) domain.Job {
	return domain.Job{ID: id, StartDate: d(start), EndDate: d(end), Status: domain.JobStatusScheduled}
}

func assign(id, jobID, day, workerID string) domain.DayAssignment {
	return domain.DayAssignment{ID: id, JobID: jobID, DayDate: d(day), WorkerID: workerID, Multiplier: domain.FullDay}
}

func TestExpandJobDates(t *testing.T) {
	t.Run("single day", func(t *testing.T) {
		got := schedule.ExpandJobDates(job("j", "2026-01-20", "2026-01-20"))
		assert.Equal(t, []domain.Date{d("2026-01-20")}, got)
	})

	t.Run("three days", func(t *testing.T) {
		got := schedule.ExpandJobDates(job("j", "2026-01-20", "2026-01-22"))
		assert.Equal(t, []domain.Date{d("2026-01-20"), d("2026-01-21"), d("2026-01-22")}, got)
	})

	t.Run("across month and year", func(t *testing.T) {
		got := schedule.ExpandJobDates(job("j", "2025-12-30", "2026-01-02"))
		require.Len(t, got, 4)
		assert.Equal(t, "2025-12-31", got[1].String())
		assert.Equal(t, "2026-01-01", got[2].String())
	})

	t.Run("across DST changes", func(t *testing.T) {
		spring := schedule.ExpandJobDates(job("j", "2026-03-07", "2026-03-10"))
		assert.Equal(t, []domain.Date{d("2026-03-07"), d("2026-03-08"), d("2026-03-09"), d("2026-03-10")}, spring)

		fall := schedule.ExpandJobDates(job("j", "2026-10-31", "2026-11-02"))
		assert.Equal(t, []domain.Date{d("2026-10-31"), d("2026-11-01"), d("2026-11-02")}, fall)
	})

	t.Run("leap day", func(t *testing.T) {
		got := schedule.ExpandJobDates(job("j", "2028-02-28", "2028-03-01"))
		assert.Equal(t, []domain.Date{d("2028-02-28"), d("2028-02-29"), d("2028-03-01")}, got)
	})

	t.Run("end before start", func(t *testing.T) {
		got := schedule.ExpandJobDates(job("j", "2026-01-22", "2026-01-20"))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("length, order and uniqueness", func(t *testing.T) {
		j := job("j", "2026-01-01", "2026-12-31")
		got := schedule.ExpandJobDates(j)
		assert.Len(t, got, schedule.JobDuration(j))
		assert.Len(t, got, 365)
		for i := 1; i < len(got); i++ {
			assert.Equal(t, 1, got[i].DaysSince(got[i-1]))
		}
	})
}

func TestAssignmentStatus(t *testing.T) {
	j := job("job-1", "2026-01-20", "2026-01-22")

	t.Run("no assignments", func(t *testing.T) {
		assert.Equal(t, schedule.StatusNotAssigned, schedule.AssignmentStatus(j, nil))
	})

	t.Run("partial (first and last day only)", func(t *testing.T) {
		as := []domain.DayAssignment{
			assign("a1", "job-1", "2026-01-20", "w-001"),
			assign("a2", "job-1", "2026-01-22", "w-002"),
		}
		assert.Equal(t, schedule.StatusPartiallyAssigned, schedule.AssignmentStatus(j, as))
	})

	t.Run("fully assigned", func(t *testing.T) {
		as := []domain.DayAssignment{
			assign("a1", "job-1", "2026-01-20", "w-001"),
			assign("a2", "job-1", "2026-01-21", "w-001"),
			assign("a3", "job-1", "2026-01-22", "w-001"),
		}
		assert.Equal(t, schedule.StatusFullyAssigned, schedule.AssignmentStatus(j, as))
	})

	t.Run("many workers on one day count once", func(t *testing.T) {
		as := []domain.DayAssignment{
			assign("a1", "job-1", "2026-01-21", "w-001"),
			assign("a2", "job-1", "2026-01-21", "w-002"),
			assign("a3", "job-1", "2026-01-21", "w-003"),
		}
		assert.Equal(t, schedule.StatusPartiallyAssigned, schedule.AssignmentStatus(j, as))
	})

	t.Run("other jobs and out of span dates are ignored", func(t *testing.T) {
		as := []domain.DayAssignment{
			assign("a1", "job-2", "2026-01-20", "w-001"),
			assign("a2", "job-1", "2026-01-19", "w-001"),
			assign("a3", "job-1", "2026-01-23", "w-001"),
		}
		assert.Equal(t, schedule.StatusNotAssigned, schedule.AssignmentStatus(j, as))
	})

	t.Run("single day job", func(t *testing.T) {
		one := job("job-1", "2026-01-20", "2026-01-20")
		assert.Equal(t, schedule.StatusFullyAssigned,
			schedule.AssignmentStatus(one, []domain.DayAssignment{assign("a1", "job-1", "2026-01-20", "w-001")}))
	})
}

func TestStatusByJob(t *testing.T) {
	jobs := []domain.Job{
		job("job-1", "2026-01-20", "2026-01-21"),
		job("job-2", "2026-01-20", "2026-01-20"),
		job("job-3", "2026-01-20", "2026-01-20"),
	}
	as := []domain.DayAssignment{
		assign("a1", "job-1", "2026-01-20", "w-001"),
		assign("a2", "job-2", "2026-01-20", "w-001"),
	}

	got := schedule.StatusByJob(jobs, as)
	assert.Equal(t, map[string]schedule.Status{
		"job-1": schedule.StatusPartiallyAssigned,
		"job-2": schedule.StatusFullyAssigned,
		"job-3": schedule.StatusNotAssigned,
	}, got)
}

func snapshot(workerID, total string, days int) domain.PayrollSnapshot {
	return domain.PayrollSnapshot{
		WorkerID:   workerID,
		WorkerName: workerID,
		UniqueDays: days,
		Total:      decimal.RequireFromString(total),
	}
}

func TestAggregatePayroll(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := schedule.AggregatePayroll(nil)
		assert.True(t, got.Total.IsZero())
		assert.Equal(t, 0, got.WorkerCount)
		assert.Equal(t, 0, got.DayCount)
		assert.Equal(t, 0, got.RecordCount)
	})

	t.Run("two workers", func(t *testing.T) {
		got := schedule.AggregatePayroll([]domain.PayrollSnapshot{
			snapshot("w1", "1000.00", 5),
			snapshot("w2", "880.00", 4),
		})
		assert.Equal(t, "1880.00", got.Total.StringFixed(2))
		assert.Equal(t, 2, got.WorkerCount)
		assert.Equal(t, 9, got.DayCount)
		assert.Equal(t, 2, got.RecordCount)
	})

	t.Run("same worker across weeks", func(t *testing.T) {
		got := schedule.AggregatePayroll([]domain.PayrollSnapshot{
			snapshot("w1", "200.00", 2),
			snapshot("w1", "300.00", 3),
		})
		assert.Equal(t, 1, got.WorkerCount)
		assert.Equal(t, 5, got.DayCount)
		assert.Equal(t, 2, got.RecordCount)
	})

	t.Run("stored totals are trusted", func(t *testing.T) {
		s := snapshot("w1", "123.45", 3)
		s.RateSnapshot = decimal.RequireFromString("999.99")
		got := schedule.AggregatePayroll([]domain.PayrollSnapshot{s})
		assert.Equal(t, "123.45", got.Total.StringFixed(2))
	})

	t.Run("exact regardless of order", func(t *testing.T) {
		var snaps []domain.PayrollSnapshot
		for i := 0; i < 50; i++ {
			snaps = append(snaps, snapshot("w", "0.10", 1), snapshot("w", "0.20", 1))
		}
		want := schedule.AggregatePayroll(snaps).Total
		assert.Equal(t, "15.00", want.StringFixed(2))

		r := rand.New(rand.NewSource(7))
		for i := 0; i < 5; i++ {
			r.Shuffle(len(snaps), func(a, b int) { snaps[a], snaps[b] = snaps[b], snaps[a] })
			assert.True(t, want.Equal(schedule.AggregatePayroll(snaps).Total))
		}
	})
}

func TestBuildWorkerView(t *testing.T) {
	jobs := []domain.Job{
		job("job-001", "2026-01-19", "2026-01-19"),
		job("job-002", "2026-01-20", "2026-01-22"),
	}
	workers := []domain.Worker{
		{ID: "w-001", Name: "Ana"},
		{ID: "w-002", Name: "Ben"},
		{ID: "w-003", Name: "Cy"},
	}
	assignments := []domain.DayAssignment{
		assign("a1", "job-002", "2026-01-20", "w-001"),
		assign("a2", "job-002", "2026-01-20", "w-001"),
		assign("a3", "job-002", "2026-01-20", "w-003"),
		assign("a4", "job-001", "2026-01-19", "w-001"),
		assign("a5", "job-missing", "2026-01-21", "w-001"),
		assign("a6", "job-002", "2026-01-21", "w-002"),
	}

	t.Run("coworkers on shared job day", func(t *testing.T) {
		view := schedule.BuildWorkerView("w-001", assignments, jobs, workers)

		require.Len(t, view, 2)
		assert.Equal(t, d("2026-01-19"), view[0].Date)
		assert.Equal(t, d("2026-01-20"), view[1].Date)

		day := view[1]
		require.Len(t, day.Entries, 2)
		assert.Equal(t, "a1", day.Entries[0].Assignment.ID)
		assert.Equal(t, "a2", day.Entries[1].Assignment.ID)
		for _, e := range day.Entries {
			assert.Equal(t, "job-002", e.Job.ID)
			require.Len(t, e.Coworkers, 1)
			assert.Equal(t, "w-003", e.Coworkers[0].ID)
		}
		assert.Empty(t, view[0].Entries[0].Coworkers)
	})

	t.Run("and vice versa", func(t *testing.T) {
		view := schedule.BuildWorkerView("w-003", assignments, jobs, workers)

		require.Len(t, view, 1)
		require.Len(t, view[0].Entries, 1)
		cw := view[0].Entries[0].Coworkers
		require.Len(t, cw, 1)
		assert.Equal(t, "w-001", cw[0].ID)
	})

	t.Run("entries with missing job are dropped", func(t *testing.T) {
		view := schedule.BuildWorkerView("w-001", assignments, jobs, workers)
		for _, g := range view {
			assert.NotEqual(t, d("2026-01-21"), g.Date)
		}
	})

	t.Run("unknown worker", func(t *testing.T) {
		assert.Empty(t, schedule.BuildWorkerView("w-999", assignments, jobs, workers))
	})
}

func TestJobDayBreakdown(t *testing.T) {
	j := job("job-1", "2026-01-20", "2026-01-22")
	as := []domain.DayAssignment{
		assign("a2", "job-1", "2026-01-22", "w-002"),
		assign("a1", "job-1", "2026-01-20", "w-001"),
		assign("a3", "job-1", "2026-01-22", "w-001"),
		assign("x", "job-9", "2026-01-21", "w-001"),
	}

	days := schedule.JobDayBreakdown(j, as)
	require.Len(t, days, 3)
	assert.Len(t, days[0].Assignments, 1)
	assert.Empty(t, days[1].Assignments)
	require.Len(t, days[2].Assignments, 2)
	assert.Equal(t, "a2", days[2].Assignments[0].ID)
	assert.Equal(t, "a3", days[2].Assignments[1].ID)
}

func TestFilterJobs(t *testing.T) {
	done := domain.JobStatusDone
	jobs := []domain.Job{
		job("j1", "2026-01-20", "2026-01-22"),
		job("j2", "2026-01-23", "2026-01-23"),
		job("j3", "2026-01-21", "2026-01-21"),
	}
	jobs[2].Status = domain.JobStatusDone

	assert.Len(t, schedule.FilterJobs(jobs, schedule.JobFilter{}), 3)

	byStatus := schedule.FilterJobs(jobs, schedule.JobFilter{Status: &done})
	require.Len(t, byStatus, 1)
	assert.Equal(t, "j3", byStatus[0].ID)

	day := d("2026-01-21")
	byDate := schedule.FilterJobs(jobs, schedule.JobFilter{Date: &day})
	require.Len(t, byDate, 2)
	assert.Equal(t, "j1", byDate[0].ID)
	assert.Equal(t, "j3", byDate[1].ID)
}

func TestBoard(t *testing.T) {
	jobs := []domain.Job{job("job-1", "2026-01-20", "2026-01-21")}
	initial := []domain.DayAssignment{assign("a1", "job-1", "2026-01-20", "w-001")}

	b := schedule.NewBoard(jobs, initial)
	assert.Equal(t, schedule.StatusPartiallyAssigned, b.Status("job-1"))

	full := b.WithAssignments(assign("a2", "job-1", "2026-01-21", "w-002"))
	assert.Equal(t, schedule.StatusFullyAssigned, full.Status("job-1"))
	assert.Equal(t, schedule.StatusPartiallyAssigned, b.Status("job-1"))
	assert.Len(t, b.Assignments(), 1)

	empty := full.WithoutAssignment("a1").WithoutAssignment("a2")
	assert.Equal(t, schedule.StatusNotAssigned, empty.Status("job-1"))
	assert.Equal(t, schedule.StatusFullyAssigned, full.Status("job-1"))

	done := full.WithJobStatus("job-1", domain.JobStatusDone)
	got, ok := done.Job("job-1")
	require.True(t, ok)
	assert.Equal(t, domain.JobStatusDone, got.Status)
	orig, _ := full.Job("job-1")
	assert.Equal(t, domain.JobStatusScheduled, orig.Status)

	assert.Equal(t, schedule.StatusNotAssigned, b.Status("nope"))

	// the caller's slices are not aliased
	initial[0].DayDate = d("2026-01-21")
	assert.Equal(t, d("2026-01-20"), b.AssignmentsFor("job-1")[0].DayDate)
}
