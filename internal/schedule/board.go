package schedule

import (
	"slices"

	"github.com/BMarcano/dispatcher/internal/domain"
)

// Board is an immutable snapshot of jobs and their assignments used for
// optimistic updates. Each command returns a new Board and leaves the
// receiver untouched; the store stays the system of record and the next
// fetch replaces the Board wholesale.
type Board struct {
	jobs        []domain.Job
	assignments []domain.DayAssignment
}

func NewBoard(jobs []domain.Job, assignments []domain.DayAssignment) Board {
	return Board{
		jobs:        slices.Clone(jobs),
		assignments: slices.Clone(assignments),
	}
}

func (b Board) Assignments() []domain.DayAssignment {
	return slices.Clone(b.assignments)
}

func (b Board) Job(id string) (domain.Job, bool) {
	for _, j := range b.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Job{}, false
}

// AssignmentsFor returns the assignments of one job in insertion order.
func (b Board) AssignmentsFor(jobID string) []domain.DayAssignment {
	var out []domain.DayAssignment
	for _, a := range b.assignments {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out
}

// Status is AssignmentStatus over the board contents. Unknown jobs report
// not_assigned.
func (b Board) Status(jobID string) Status {
	job, ok := b.Job(jobID)
	if !ok {
		return StatusNotAssigned
	}
	return AssignmentStatus(job, b.assignments)
}

func (b Board) WithAssignments(added ...domain.DayAssignment) Board {
	next := make([]domain.DayAssignment, 0, len(b.assignments)+len(added))
	next = append(next, b.assignments...)
	next = append(next, added...)
	return Board{jobs: b.jobs, assignments: next}
}

func (b Board) WithoutAssignment(id string) Board {
	next := make([]domain.DayAssignment, 0, len(b.assignments))
	for _, a := range b.assignments {
		if a.ID != id {
			next = append(next, a)
		}
	}
	return Board{jobs: b.jobs, assignments: next}
}

func (b Board) WithJobStatus(jobID string, status domain.JobStatus) Board {
	next := slices.Clone(b.jobs)
	for i := range next {
		if next[i].ID == jobID {
			next[i].Status = status
		}
	}
	return Board{jobs: next, assignments: b.assignments}
}
