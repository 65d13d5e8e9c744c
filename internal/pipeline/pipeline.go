// Package pipeline drives the engine over an input dataset: rows fan out
// across a bounded worker pool and results are re-assembled in input order.
package pipeline

import (
	"context"
	"sync"

	"github.com/crimson-sun/rake/internal/engine"
	"github.com/crimson-sun/rake/internal/model"
)

// Result is the complete output of one run: canonical records in input row
// order and all anomalies merged in row order, detection order within a row.
type Result struct {
	Records   []model.CanonicalRecord
	Anomalies []model.Anomaly
}

// Run processes every row. Rows are independent, so they may be processed
// concurrently; each worker writes into a disjoint result slot and anomalies
// are kept per-row and merged afterwards, which makes the output identical
// regardless of worker count. The only blocking operation inside a row is
// the optional escalation call, which is bounded by its own timeout and
// never fails the row.
func Run(ctx context.Context, eng *engine.Engine, rows []model.RawRecord, workers int) Result {
	n := len(rows)
	if n == 0 {
		return Result{}
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	records := make([]model.CanonicalRecord, n)
	perRow := make([][]model.Anomaly, n)

	if workers == 1 {
		for i, row := range rows {
			records[i], perRow[i] = eng.Process(ctx, row, i+1)
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					records[i], perRow[i] = eng.Process(ctx, rows[i], i+1)
				}
			}()
		}
		for i := range rows {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	var anomalies []model.Anomaly
	for _, a := range perRow {
		anomalies = append(anomalies, a...)
	}
	return Result{Records: records, Anomalies: anomalies}
}
