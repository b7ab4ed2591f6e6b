package command

import (
	"github.com/BMarcano/dispatcher/internal/app"

	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate command.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := app.Migrate(db); err != nil {
				return err
			}
			return writeOutput(cmd, map[string]bool{"migrated": true}, "schema up to date")
		},
	}
}
