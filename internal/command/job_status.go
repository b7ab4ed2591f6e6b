package command

import (
	"context"
	"fmt"

	"github.com/BMarcano/dispatcher/internal/assignment"
	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/job"
	"github.com/BMarcano/dispatcher/internal/messaging/kafka"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// operator is the session recorded for changes made from the CLI.
var operator = contextutil.Session{UserID: "crewctl", Role: domain.RoleSupervisor}

// NewJobStatusCmd creates the job-status command.
func NewJobStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "job-status <job-id> <scheduled|in_progress|done>",
		Short: "Set a job's work status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gormDB, closeDB, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}

			svc := job.NewService(
				sqlDB,
				job.NewRepository(gormDB),
				assignment.NewRepository(gormDB),
				kafka.NewOutboxRepository(sqlDB),
			)

			ctx := contextutil.WithRequestID(cmd.Context(), uuid.NewString())
			return runJobStatus(ctx, cmd, svc, args[0], args[1])
		},
	}
}

func runJobStatus(ctx context.Context, cmd *cobra.Command, svc job.Service, id, status string) error {
	id, err := apperror.ParseID("id", id)
	if err != nil {
		return err
	}
	res, err := svc.UpdateStatus(ctx, operator, id, job.UpdateJobStatusRequest{Status: status})
	if err != nil {
		return err
	}
	return writeOutput(cmd, res, fmt.Sprintf(
		"%s %s: %s (%s)", res.ExternalReference, res.CustomerName, res.Status, res.AssignmentStatus,
	))
}
