package job

import (
	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/schedule"
)

type CreateJobRequest struct {
	ExternalReference string  `json:"external_reference" binding:"required,max=64"`
	CustomerName      string  `json:"customer_name" binding:"required,max=255"`
	Address           string  `json:"address" binding:"required"`
	StartDate         string  `json:"start_date" binding:"required"`
	EndDate           string  `json:"end_date" binding:"required"`
	Status            string  `json:"status" binding:"omitempty,oneof=scheduled in_progress done"`
	Notes             *string `json:"notes"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled in_progress done"`
}

type ListJobsQuery struct {
	Status string `form:"status" json:"status" binding:"omitempty,oneof=scheduled in_progress done"`
	Date   string `form:"date" json:"date"`
}

type JobResponse struct {
	ID                string  `json:"id"`
	ExternalReference string  `json:"external_reference"`
	CustomerName      string  `json:"customer_name"`
	Address           string  `json:"address"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	Status            string  `json:"status"`
	Notes             *string `json:"notes,omitempty"`
	DurationDays      int     `json:"duration_days"`
	AssignmentStatus  string  `json:"assignment_status"`
}

type DayAssignmentResponse struct {
	ID         string `json:"id"`
	JobID      string `json:"job_id"`
	WorkerID   string `json:"worker_id"`
	DayDate    string `json:"day_date"`
	Multiplier string `json:"multiplier"`
}

type JobDayResponse struct {
	Date        string                  `json:"date"`
	Assignments []DayAssignmentResponse `json:"assignments"`
}

type JobDetailResponse struct {
	JobResponse
	Days []JobDayResponse `json:"days"`
}

func ToJobResponse(j domain.Job, status schedule.Status) JobResponse {
	return JobResponse{
		ID:                j.ID,
		ExternalReference: j.ExternalRef,
		CustomerName:      j.CustomerName,
		Address:           j.Address,
		StartDate:         j.StartDate.String(),
		EndDate:           j.EndDate.String(),
		Status:            string(j.Status),
		Notes:             j.Notes,
		DurationDays:      schedule.JobDuration(j),
		AssignmentStatus:  string(status),
	}
}

func ToDayAssignmentResponse(a domain.DayAssignment) DayAssignmentResponse {
	return DayAssignmentResponse{
		ID:         a.ID,
		JobID:      a.JobID,
		WorkerID:   a.WorkerID,
		DayDate:    a.DayDate.String(),
		Multiplier: a.Multiplier.StringFixed(1),
	}
}

func ToDayAssignmentResponses(assignments []domain.DayAssignment) []DayAssignmentResponse {
	res := make([]DayAssignmentResponse, len(assignments))
	for i, a := range assignments {
		res[i] = ToDayAssignmentResponse(a)
	}
	return res
}

func toJobDetailResponse(j domain.Job, assignments []domain.DayAssignment) JobDetailResponse {
	days := schedule.JobDayBreakdown(j, assignments)
	out := JobDetailResponse{
		JobResponse: ToJobResponse(j, schedule.AssignmentStatus(j, assignments)),
		Days:        make([]JobDayResponse, len(days)),
	}
	for i, d := range days {
		out.Days[i] = JobDayResponse{
			Date:        d.Date.String(),
			Assignments: ToDayAssignmentResponses(d.Assignments),
		}
	}
	return out
}
