package command

import (
	"context"
	"fmt"

	"github.com/BMarcano/dispatcher/internal/payroll"

	"github.com/spf13/cobra"
)

// NewPayrollSummaryCmd creates the payroll-summary command.
func NewPayrollSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll-summary",
		Short: "Total the stored payroll snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gormDB, closeDB, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			var q payroll.SnapshotFilterQuery
			q.WeekStart, _ = cmd.Flags().GetString("week-start")
			q.WeekEnd, _ = cmd.Flags().GetString("week-end")

			return runPayrollSummary(cmd.Context(), cmd, payroll.NewService(payroll.NewRepository(gormDB)), q)
		},
	}
	cmd.Flags().String("week-start", "", "only weeks starting on or after YYYY-MM-DD")
	cmd.Flags().String("week-end", "", "only weeks ending on or before YYYY-MM-DD")
	return cmd
}

func runPayrollSummary(ctx context.Context, cmd *cobra.Command, svc payroll.Service, q payroll.SnapshotFilterQuery) error {
	sum, err := svc.Summary(ctx, q)
	if err != nil {
		return err
	}
	return writeOutput(cmd, sum, fmt.Sprintf(
		"total %s across %d workers, %d days, %d records",
		sum.Total, sum.WorkerCount, sum.DayCount, sum.RecordCount,
	))
}
