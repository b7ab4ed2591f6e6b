package command

import (
	"fmt"

	"github.com/BMarcano/dispatcher/internal/domain"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedResult struct {
	Workers     int `json:"workers"`
	Jobs        int `json:"jobs"`
	Assignments int `json:"assignments"`
	Snapshots   int `json:"payroll_snapshots"`
	Users       int `json:"users"`
}

// NewSeedCmd creates the seed command.
func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo workers, jobs, assignments, payroll snapshots and logins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			if len(password) < 6 {
				return fmt.Errorf("--password must be at least 6 characters")
			}

			db, closeDB, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			res, err := Seed(db, demoData(), password)
			if err != nil {
				return err
			}
			return writeOutput(cmd, res, fmt.Sprintf(
				"seeded %d workers, %d jobs, %d assignments, %d payroll snapshots, %d logins",
				res.Workers, res.Jobs, res.Assignments, res.Snapshots, res.Users,
			))
		},
	}
	cmd.Flags().String("password", "changeme", "password for the seeded logins")
	return cmd
}

// Seed upserts data by id. Logins are only created when the email is new.
func Seed(db *gorm.DB, data seedSet, password string) (seedResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return seedResult{}, err
	}

	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}

	users := make([]domain.UserProfile, 0, len(data.Users))
	for _, u := range data.Users {
		p := domain.UserProfile{
			ID:           seedID("user-" + u.Email),
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         u.Role,
		}
		if u.WorkerKey != "" {
			id := seedID(u.WorkerKey)
			p.WorkerID = &id
		}
		users = append(users, p)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(upsert).Create(&data.Workers).Error; err != nil {
			return fmt.Errorf("seed workers: %w", err)
		}
		if err := tx.Clauses(upsert).Create(&data.Jobs).Error; err != nil {
			return fmt.Errorf("seed jobs: %w", err)
		}
		if err := tx.Clauses(upsert).Create(&data.Assignments).Error; err != nil {
			return fmt.Errorf("seed assignments: %w", err)
		}
		if err := tx.Clauses(upsert).Create(&data.Snapshots).Error; err != nil {
			return fmt.Errorf("seed payroll snapshots: %w", err)
		}
		if err := tx.Omit("Worker").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&users).Error; err != nil {
			return fmt.Errorf("seed logins: %w", err)
		}
		return nil
	})
	if err != nil {
		return seedResult{}, err
	}

	return seedResult{
		Workers:     len(data.Workers),
		Jobs:        len(data.Jobs),
		Assignments: len(data.Assignments),
		Snapshots:   len(data.Snapshots),
		Users:       len(users),
	}, nil
}
