// Package multi fans out pipeline results to multiple sinks.
package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/rake/internal/model"
	"github.com/crimson-sun/rake/internal/output"
)

// Multi delivers every record and anomaly to each wrapped output in order.
// A failing sink does not prevent delivery to the remaining sinks; errors
// are joined.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi that fans out to the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

func (m *Multi) WriteRecord(ctx context.Context, rec model.CanonicalRecord) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.WriteRecord(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) WriteAnomaly(ctx context.Context, a model.Anomaly) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.WriteAnomaly(ctx, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every wrapped output, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
