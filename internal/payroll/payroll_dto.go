package payroll

import "github.com/BMarcano/dispatcher/internal/domain"

type SnapshotFilterQuery struct {
	WeekStart string `form:"week_start"`
	WeekEnd   string `form:"week_end"`
}

type SnapshotResponse struct {
	ID           string `json:"id"`
	WorkerID     string `json:"worker_id"`
	WorkerName   string `json:"worker_name"`
	WeekStart    string `json:"week_start"`
	WeekEnd      string `json:"week_end"`
	UniqueDays   int    `json:"unique_days"`
	RateSnapshot string `json:"rate_snapshot"`
	Total        string `json:"total"`
}

type SummaryResponse struct {
	Total       string `json:"total"`
	WorkerCount int    `json:"worker_count"`
	DayCount    int    `json:"day_count"`
	RecordCount int    `json:"record_count"`
}

func mapToResponse(s domain.PayrollSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:           s.ID,
		WorkerID:     s.WorkerID,
		WorkerName:   s.WorkerName,
		WeekStart:    s.WeekStart.String(),
		WeekEnd:      s.WeekEnd.String(),
		UniqueDays:   s.UniqueDays,
		RateSnapshot: s.RateSnapshot.StringFixed(2),
		Total:        s.Total.StringFixed(2),
	}
}

func mapToListResponse(snapshots []domain.PayrollSnapshot) []SnapshotResponse {
	res := make([]SnapshotResponse, len(snapshots))
	for i, s := range snapshots {
		res[i] = mapToResponse(s)
	}
	return res
}
