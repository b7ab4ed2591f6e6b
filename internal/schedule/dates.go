package schedule

import "github.com/BMarcano/dispatcher/internal/domain"

// ExpandJobDates returns every calendar day from job.StartDate through
// job.EndDate, ascending. A job whose end precedes its start yields an empty
// slice; such jobs are rejected by domain.Job.Validate before they get here.
func ExpandJobDates(job domain.Job) []domain.Date {
	n := JobDuration(job)
	if n == 0 {
		return []domain.Date{}
	}

	dates := make([]domain.Date, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, job.StartDate.AddDays(i))
	}
	return dates
}

// JobDuration is the number of calendar days the job spans, inclusive.
func JobDuration(job domain.Job) int {
	if job.EndDate.Before(job.StartDate) {
		return 0
	}
	return job.EndDate.DaysSince(job.StartDate) + 1
}
