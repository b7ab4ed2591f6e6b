package schedule

import (
	"sort"

	"github.com/BMarcano/dispatcher/internal/domain"
)

type WorkerViewEntry struct {
	Assignment domain.DayAssignment
	Job        domain.Job
	Coworkers  []domain.Worker
}

type DayGroup struct {
	Date    domain.Date
	Entries []WorkerViewEntry
}

// WorkerView is ordered by date ascending.
type WorkerView []DayGroup

type jobDay struct {
	jobID string
	date  domain.Date
}

// BuildWorkerView assembles the schedule of one worker. Entries whose job
// is missing from jobs are dropped. Coworkers are the other workers holding
// an assignment on the same job and day, each listed once in first-seen
// order; coworker ids with no matching worker record are skipped.
func BuildWorkerView(workerID string, assignments []domain.DayAssignment, jobs []domain.Job, workers []domain.Worker) WorkerView {
	jobsByID := make(map[string]domain.Job, len(jobs))
	for _, j := range jobs {
		jobsByID[j.ID] = j
	}
	workersByID := make(map[string]domain.Worker, len(workers))
	for _, w := range workers {
		workersByID[w.ID] = w
	}

	crew := make(map[jobDay][]string)
	for _, a := range assignments {
		k := jobDay{jobID: a.JobID, date: a.DayDate}
		crew[k] = appendUnique(crew[k], a.WorkerID)
	}

	groups := make(map[domain.Date]*DayGroup)
	var order []domain.Date

	for _, a := range assignments {
		if a.WorkerID != workerID {
			continue
		}
		job, ok := jobsByID[a.JobID]
		if !ok {
			continue
		}

		var coworkers []domain.Worker
		for _, id := range crew[jobDay{jobID: a.JobID, date: a.DayDate}] {
			if id == workerID {
				continue
			}
			if w, ok := workersByID[id]; ok {
				coworkers = append(coworkers, w)
			}
		}

		g, ok := groups[a.DayDate]
		if !ok {
			g = &DayGroup{Date: a.DayDate}
			groups[a.DayDate] = g
			order = append(order, a.DayDate)
		}
		g.Entries = append(g.Entries, WorkerViewEntry{
			Assignment: a,
			Job:        job,
			Coworkers:  coworkers,
		})
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Before(order[j])
	})

	view := make(WorkerView, 0, len(order))
	for _, d := range order {
		view = append(view, *groups[d])
	}
	return view
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
