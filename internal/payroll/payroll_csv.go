package payroll

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/BMarcano/dispatcher/internal/domain"
)

const ExportFilename = "payroll_export.csv"

var csvHeader = []string{"Worker Name", "Week Range", "Days Counted", "Rate Snapshot", "Total"}

// WriteCSV renders one row per snapshot with money in two-decimal fixed point.
func WriteCSV(w io.Writer, snapshots []domain.PayrollSnapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range snapshots {
		row := []string{
			s.WorkerName,
			fmt.Sprintf("%s to %s", s.WeekStart, s.WeekEnd),
			strconv.Itoa(s.UniqueDays),
			s.RateSnapshot.StringFixed(2),
			s.Total.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
