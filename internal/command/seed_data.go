package command

import (
	"fmt"

	"github.com/BMarcano/dispatcher/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// seedNamespace keeps seeded ids stable so re-running seed updates rows in place.
var seedNamespace = uuid.MustParse("6f1c1f2e-3b8e-4b53-9a55-0f4f3c0a9d11")

func seedID(key string) string {
	return uuid.NewSHA1(seedNamespace, []byte(key)).String()
}

type seedSet struct {
	Workers     []domain.Worker
	Jobs        []domain.Job
	Assignments []domain.DayAssignment
	Snapshots   []domain.PayrollSnapshot
	Users       []seedUser
}

type seedUser struct {
	Email     string
	Role      domain.Role
	WorkerKey string
}

func strPtr(s string) *string { return &s }

func demoData() seedSet {
	worker := func(key, name, email string, rate int64) domain.Worker {
		return domain.Worker{ID: seedID(key), Name: name, Email: email, DailyRate: decimal.NewFromInt(rate)}
	}
	job := func(key, ref, customer, address, start, end string, status domain.JobStatus, notes *string) domain.Job {
		return domain.Job{
			ID:           seedID(key),
			ExternalRef:  ref,
			CustomerName: customer,
			Address:      address,
			StartDate:    domain.MustParseDate(start),
			EndDate:      domain.MustParseDate(end),
			Status:       status,
			Notes:        notes,
		}
	}
	assign := func(key, jobKey, day, workerKey string, m decimal.Decimal) domain.DayAssignment {
		return domain.DayAssignment{
			ID:         seedID(key),
			JobID:      seedID(jobKey),
			DayDate:    domain.MustParseDate(day),
			WorkerID:   seedID(workerKey),
			Multiplier: m,
		}
	}

	workers := []domain.Worker{
		worker("w-001", "John Smith", "john@example.com", 200),
		worker("w-002", "Sarah Johnson", "sarah@example.com", 220),
		worker("w-003", "Mike Davis", "mike@example.com", 180),
		worker("w-004", "Emily Brown", "emily@example.com", 240),
		worker("w-005", "David Wilson", "david@example.com", 200),
	}
	byKey := map[string]domain.Worker{}
	for i, w := range workers {
		byKey[fmt.Sprintf("w-%03d", i+1)] = w
	}

	snapshot := func(workerKey, start, end string, days int, total int64) domain.PayrollSnapshot {
		w := byKey[workerKey]
		return domain.PayrollSnapshot{
			ID:           seedID("ps-" + workerKey + "-" + start),
			WorkerID:     w.ID,
			WorkerName:   w.Name,
			WeekStart:    domain.MustParseDate(start),
			WeekEnd:      domain.MustParseDate(end),
			UniqueDays:   days,
			RateSnapshot: w.DailyRate,
			Total:        decimal.NewFromInt(total),
		}
	}

	return seedSet{
		Workers: workers,
		Jobs: []domain.Job{
			job("job-001", "hcp-12345", "Robert Anderson", "123 Main St, Springfield, IL", "2026-01-20", "2026-01-20", domain.JobStatusDone, strPtr("Kitchen renovation")),
			job("job-002", "hcp-12346", "Maria Garcia", "456 Oak Ave, Springfield, IL", "2026-01-20", "2026-01-22", domain.JobStatusInProgress, strPtr("Full bathroom remodel")),
			job("job-003", "hcp-12347", "James Wilson", "789 Pine Rd, Decatur, IL", "2026-01-21", "2026-01-21", domain.JobStatusScheduled, nil),
			job("job-004", "hcp-12348", "Patricia Martinez", "321 Elm St, Champaign, IL", "2026-01-21", "2026-01-23", domain.JobStatusScheduled, strPtr("Deck installation")),
			job("job-005", "hcp-12349", "Michael Thompson", "654 Maple Dr, Urbana, IL", "2026-01-22", "2026-01-22", domain.JobStatusScheduled, nil),
			job("job-006", "hcp-12350", "Linda Davis", "987 Cedar Ln, Bloomington, IL", "2026-01-22", "2026-01-24", domain.JobStatusScheduled, strPtr("Roof repair")),
			job("job-007", "hcp-12351", "William Brown", "147 Birch Way, Normal, IL", "2026-01-23", "2026-01-23", domain.JobStatusScheduled, nil),
			job("job-008", "hcp-12352", "Elizabeth Taylor", "258 Walnut Ct, Peoria, IL", "2026-01-24", "2026-01-25", domain.JobStatusScheduled, nil),
		},
		Assignments: []domain.DayAssignment{
			assign("da-001", "job-001", "2026-01-20", "w-001", domain.FullDay),
			assign("da-002", "job-002", "2026-01-20", "w-001", domain.FullDay),
			assign("da-003", "job-002", "2026-01-20", "w-003", domain.FullDay),
			assign("da-004", "job-002", "2026-01-21", "w-001", domain.FullDay),
			assign("da-005", "job-002", "2026-01-22", "w-002", domain.FullDay),
			assign("da-006", "job-006", "2026-01-22", "w-002", domain.FullDay),
			assign("da-007", "job-006", "2026-01-22", "w-004", domain.HalfDay),
		},
		Snapshots: []domain.PayrollSnapshot{
			snapshot("w-001", "2026-01-13", "2026-01-19", 5, 1000),
			snapshot("w-002", "2026-01-13", "2026-01-19", 4, 880),
			snapshot("w-003", "2026-01-13", "2026-01-19", 5, 900),
			snapshot("w-004", "2026-01-13", "2026-01-19", 3, 720),
			snapshot("w-001", "2026-01-06", "2026-01-12", 4, 800),
			snapshot("w-002", "2026-01-06", "2026-01-12", 5, 1100),
		},
		Users: []seedUser{
			{Email: "admin@example.com", Role: domain.RoleAdmin},
			{Email: "supervisor@example.com", Role: domain.RoleSupervisor},
			{Email: "john@example.com", Role: domain.RoleWorker, WorkerKey: "w-001"},
			{Email: "sarah@example.com", Role: domain.RoleWorker, WorkerKey: "w-002"},
		},
	}
}
