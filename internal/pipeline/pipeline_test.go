package pipeline

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/crimson-sun/rake/internal/dict"
	"github.com/crimson-sun/rake/internal/engine"
	"github.com/crimson-sun/rake/internal/model"
)

func testRows(n int) []model.RawRecord {
	rows := make([]model.RawRecord, n)
	for i := range rows {
		rows[i] = model.RawRecord{
			IP:       fmt.Sprintf("10.0.%d.%d", i/250, i%250+1),
			Hostname: fmt.Sprintf("sw-%03d", i),
			Owner:    "netops",
			Site:     "SJC",
		}
	}
	// A couple of dirty rows so anomalies exist to merge.
	if n > 3 {
		rows[3].IP = "not-an-ip"
	}
	if n > 7 {
		rows[7].Owner = ""
	}
	return rows
}

func TestRunPreservesOrder(t *testing.T) {
	eng := engine.New(dict.Default())
	rows := testRows(20)

	res := Run(context.Background(), eng, rows, 4)
	if len(res.Records) != len(rows) {
		t.Fatalf("records = %d, want %d", len(res.Records), len(rows))
	}
	for i, rec := range res.Records {
		if want := fmt.Sprintf("sw-%03d", i); rec.Hostname != want {
			t.Errorf("records[%d].Hostname = %q, want %q", i, rec.Hostname, want)
		}
		if rec.SourceRowID != i+1 {
			t.Errorf("records[%d].SourceRowID = %d, want %d", i, rec.SourceRowID, i+1)
		}
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	eng := engine.New(dict.Default())
	rows := testRows(50)

	sequential := Run(context.Background(), eng, rows, 1)
	for _, workers := range []int{2, 4, 16} {
		concurrent := Run(context.Background(), eng, rows, workers)
		if !reflect.DeepEqual(sequential.Records, concurrent.Records) {
			t.Errorf("records differ between 1 and %d workers", workers)
		}
		if !reflect.DeepEqual(sequential.Anomalies, concurrent.Anomalies) {
			t.Errorf("anomalies differ between 1 and %d workers", workers)
		}
	}
}

func TestRunAnomaliesInRowOrder(t *testing.T) {
	eng := engine.New(dict.Default())
	rows := testRows(20)

	res := Run(context.Background(), eng, rows, 4)
	if len(res.Anomalies) == 0 {
		t.Fatal("expected anomalies from dirty rows")
	}
	last := 0
	for _, a := range res.Anomalies {
		if a.RowID < last {
			t.Fatalf("anomaly row order broken: %d after %d", a.RowID, last)
		}
		last = a.RowID
	}
}

func TestRunEmptyInput(t *testing.T) {
	eng := engine.New(dict.Default())
	res := Run(context.Background(), eng, nil, 4)
	if len(res.Records) != 0 || len(res.Anomalies) != 0 {
		t.Errorf("empty input produced %d records, %d anomalies", len(res.Records), len(res.Anomalies))
	}
}

func TestRunClampsWorkers(t *testing.T) {
	eng := engine.New(dict.Default())
	rows := testRows(3)

	// More workers than rows, and a nonsense worker count, both behave.
	for _, workers := range []int{100, 0, -5} {
		res := Run(context.Background(), eng, rows, workers)
		if len(res.Records) != 3 {
			t.Errorf("workers=%d: records = %d, want 3", workers, len(res.Records))
		}
	}
}
