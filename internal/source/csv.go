package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/rake/internal/model"
)

// CSVFile reads raw inventory records from a CSV file on disk.
type CSVFile struct {
	path string
}

// NewCSV creates a CSV source for the given path.
func NewCSV(path string) *CSVFile {
	return &CSVFile{path: path}
}

// Records reads the whole file. The first row is the header; ragged rows are
// tolerated (missing trailing cells read as empty).
func (c *CSVFile) Records(_ context.Context) ([]model.RawRecord, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", c.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = false

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("source: %s: empty file", c.path)
	}
	if err != nil {
		return nil, fmt.Errorf("source: read header: %w", err)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("source: read row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, row)
	}
	return FromRows(header, rows), nil
}
