package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BMarcano/dispatcher/internal/app"
	"github.com/BMarcano/dispatcher/internal/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Opener returns the database used by a command.
type Opener func(cfg config.Config) (*gorm.DB, error)

// Env carries what every command needs.
type Env struct {
	Config config.Config
	Open   Opener
}

type envKey struct{}

// NewRootCmd builds the crewctl command tree.
func NewRootCmd(env Env) *cobra.Command {
	if env.Open == nil {
		env.Open = app.OpenDatabase
	}

	root := &cobra.Command{
		Use:           "crewctl",
		Short:         "Operator tooling for the crew scheduling service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, env))
		},
	}
	root.PersistentFlags().Bool("json", false, "print machine-readable output")

	root.AddCommand(
		NewMigrateCmd(),
		NewSeedCmd(),
		NewJobStatusCmd(),
		NewPayrollSummaryCmd(),
	)
	return root
}

func envFrom(cmd *cobra.Command) (Env, error) {
	env, ok := cmd.Context().Value(envKey{}).(Env)
	if !ok {
		return Env{}, fmt.Errorf("command environment not initialised")
	}
	return env, nil
}

func openDB(cmd *cobra.Command) (*gorm.DB, func(), error) {
	env, err := envFrom(cmd)
	if err != nil {
		return nil, nil, err
	}
	db, err := env.Open(env.Config)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, closeFn, nil
}

func writeOutput(cmd *cobra.Command, v any, text string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}
