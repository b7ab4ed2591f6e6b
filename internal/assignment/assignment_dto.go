package assignment

import (
	"github.com/BMarcano/dispatcher/internal/job"
	"github.com/BMarcano/dispatcher/internal/schedule"

	"github.com/shopspring/decimal"
)

type ListAssignmentsQuery struct {
	JobID string `form:"job_id" json:"job_id" binding:"omitempty,uuid"`
}

// CreateAssignmentsRequest puts one worker on one or more days of a job.
// A missing multiplier means a full day.
type CreateAssignmentsRequest struct {
	WorkerID   string           `json:"worker_id" binding:"required,uuid"`
	Days       []string         `json:"days" binding:"required,min=1,dive,required"`
	Multiplier *decimal.Decimal `json:"multiplier"`
}

type CreateAssignmentsResponse struct {
	JobID            string                      `json:"job_id"`
	AssignmentStatus string                      `json:"assignment_status"`
	Assignments      []job.DayAssignmentResponse `json:"assignments"`
}

type PreviewResponse struct {
	JobID            string                      `json:"job_id"`
	CurrentStatus    string                      `json:"current_status"`
	AssignmentStatus string                      `json:"assignment_status"`
	Assignments      []job.DayAssignmentResponse `json:"assignments"`
}

type CoworkerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type WorkerViewEntryResponse struct {
	Assignment job.DayAssignmentResponse `json:"assignment"`
	Job        job.JobResponse           `json:"job"`
	Coworkers  []CoworkerResponse        `json:"coworkers"`
}

type WorkerDayResponse struct {
	Date    string                    `json:"date"`
	Entries []WorkerViewEntryResponse `json:"entries"`
}

type WorkerViewResponse struct {
	WorkerID string              `json:"worker_id"`
	Days     []WorkerDayResponse `json:"days"`
}

func toWorkerViewResponse(workerID string, view schedule.WorkerView, statuses map[string]schedule.Status) WorkerViewResponse {
	out := WorkerViewResponse{
		WorkerID: workerID,
		Days:     make([]WorkerDayResponse, len(view)),
	}
	for i, g := range view {
		day := WorkerDayResponse{
			Date:    g.Date.String(),
			Entries: make([]WorkerViewEntryResponse, len(g.Entries)),
		}
		for k, e := range g.Entries {
			coworkers := make([]CoworkerResponse, len(e.Coworkers))
			for n, w := range e.Coworkers {
				coworkers[n] = CoworkerResponse{ID: w.ID, Name: w.Name}
			}
			day.Entries[k] = WorkerViewEntryResponse{
				Assignment: job.ToDayAssignmentResponse(e.Assignment),
				Job:        job.ToJobResponse(e.Job, statuses[e.Job.ID]),
				Coworkers:  coworkers,
			}
		}
		out.Days[i] = day
	}
	return out
}
