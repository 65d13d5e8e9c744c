// Package anomalyjson writes the anomaly list as an indented JSON array.
package anomalyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/rake/internal/model"
)

// Output accumulates anomalies and writes them as one JSON array on Close.
// Records are ignored. An empty run still produces a valid "[]" document.
type Output struct {
	mu        sync.Mutex
	path      string
	anomalies []model.Anomaly
}

// New creates an anomaly sink targeting the given path.
func New(path string) *Output {
	return &Output{path: path}
}

func (o *Output) WriteRecord(context.Context, model.CanonicalRecord) error {
	return nil
}

func (o *Output) WriteAnomaly(_ context.Context, a model.Anomaly) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.anomalies = append(o.anomalies, a)
	return nil
}

// Close writes the accumulated anomalies, preserving append order.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	payload := o.anomalies
	if payload == nil {
		payload = []model.Anomaly{}
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("anomalyjson: marshal: %w", err)
	}
	if err := os.WriteFile(o.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("anomalyjson: write %s: %w", o.path, err)
	}
	return nil
}
