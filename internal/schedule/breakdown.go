package schedule

import "github.com/BMarcano/dispatcher/internal/domain"

type JobDay struct {
	Date        domain.Date
	Assignments []domain.DayAssignment
}

// JobDayBreakdown lists every day of the job with its assignments in the
// order they were given. Days with no assignment have an empty slice.
func JobDayBreakdown(job domain.Job, assignments []domain.DayAssignment) []JobDay {
	dates := ExpandJobDates(job)
	idx := make(map[domain.Date]int, len(dates))
	days := make([]JobDay, len(dates))
	for i, d := range dates {
		idx[d] = i
		days[i] = JobDay{Date: d, Assignments: []domain.DayAssignment{}}
	}

	for _, a := range assignments {
		if a.JobID != job.ID {
			continue
		}
		if i, ok := idx[a.DayDate]; ok {
			days[i].Assignments = append(days[i].Assignments, a)
		}
	}
	return days
}

// JobFilter narrows a job list. Nil fields match everything.
type JobFilter struct {
	Status *domain.JobStatus
	Date   *domain.Date
}

func (f JobFilter) Match(j domain.Job) bool {
	if f.Status != nil && j.Status != *f.Status {
		return false
	}
	if f.Date != nil && !j.Covers(*f.Date) {
		return false
	}
	return true
}

// FilterJobs keeps the jobs matching f, preserving order.
func FilterJobs(jobs []domain.Job, f JobFilter) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Match(j) {
			out = append(out, j)
		}
	}
	return out
}
