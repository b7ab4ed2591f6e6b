package schedule

import "github.com/BMarcano/dispatcher/internal/domain"

type Status string

const (
	StatusNotAssigned       Status = "not_assigned"
	StatusPartiallyAssigned Status = "partially_assigned"
	StatusFullyAssigned     Status = "fully_assigned"
)

// AssignmentStatus classifies how many of the job's days have at least one
// assignment. Assignments for other jobs or for dates outside the job span
// are ignored, and several workers on one day count once.
func AssignmentStatus(job domain.Job, assignments []domain.DayAssignment) Status {
	total := JobDuration(job)
	if total == 0 {
		return StatusNotAssigned
	}

	covered := make(map[domain.Date]struct{}, total)
	for _, a := range assignments {
		if a.JobID != job.ID || !job.Covers(a.DayDate) {
			continue
		}
		covered[a.DayDate] = struct{}{}
	}

	switch len(covered) {
	case 0:
		return StatusNotAssigned
	case total:
		return StatusFullyAssigned
	default:
		return StatusPartiallyAssigned
	}
}

// StatusByJob groups assignments once and classifies every job.
func StatusByJob(jobs []domain.Job, assignments []domain.DayAssignment) map[string]Status {
	byJob := make(map[string][]domain.DayAssignment, len(jobs))
	for _, a := range assignments {
		byJob[a.JobID] = append(byJob[a.JobID], a)
	}

	out := make(map[string]Status, len(jobs))
	for _, j := range jobs {
		out[j.ID] = AssignmentStatus(j, byJob[j.ID])
	}
	return out
}
