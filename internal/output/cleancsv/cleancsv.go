// Package cleancsv writes canonical records to a CSV file.
package cleancsv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/rake/internal/model"
	"github.com/crimson-sun/rake/internal/output"
)

// Output streams canonical records to a CSV file in the fixed column order.
// Anomalies are ignored.
type Output struct {
	mu sync.Mutex
	f  *os.File
	w  *csv.Writer
}

// New creates (truncating) the CSV file at path and writes the header.
func New(path string) (*Output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cleancsv: create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(output.Columns); err != nil {
		f.Close()
		return nil, fmt.Errorf("cleancsv: write header: %w", err)
	}
	return &Output{f: f, w: w}, nil
}

func (o *Output) WriteRecord(_ context.Context, rec model.CanonicalRecord) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Write(output.RecordRow(rec)); err != nil {
		return fmt.Errorf("cleancsv: write row: %w", err)
	}
	return nil
}

func (o *Output) WriteAnomaly(context.Context, model.Anomaly) error {
	return nil
}

// Close flushes buffered rows and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.w.Flush()
	if err := o.w.Error(); err != nil {
		o.f.Close()
		return fmt.Errorf("cleancsv: flush: %w", err)
	}
	return o.f.Close()
}
