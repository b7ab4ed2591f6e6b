package schedule

import (
	"github.com/BMarcano/dispatcher/internal/domain"

	"github.com/shopspring/decimal"
)

type PayrollSummary struct {
	Total       decimal.Decimal
	WorkerCount int
	DayCount    int
	RecordCount int
}

// AggregatePayroll sums stored snapshot totals. DayCount adds up each
// snapshot's UniqueDays as-is; it is a worker-day count, not a count of
// distinct calendar dates across the collection.
func AggregatePayroll(snapshots []domain.PayrollSnapshot) PayrollSummary {
	sum := PayrollSummary{Total: decimal.Zero}
	workers := make(map[string]struct{}, len(snapshots))

	for _, s := range snapshots {
		sum.Total = sum.Total.Add(s.Total)
		sum.DayCount += s.UniqueDays
		workers[s.WorkerID] = struct{}{}
	}

	sum.WorkerCount = len(workers)
	sum.RecordCount = len(snapshots)
	return sum
}
