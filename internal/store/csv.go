package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// RecordStore reads and writes ordered rows of text fields against one CSV
// file. The file is external state; the store holds only its path.
type RecordStore struct {
	path string
}

// NewRecordStore creates a record store backed by the CSV file at path.
// The file is not touched until Read or Write is called.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// Path returns the backing file path.
func (s *RecordStore) Path() string {
	return s.path
}

// Read parses the backing file row by row and returns the rows in file
// order. A missing file is not an error; it reads as no rows.
func (s *RecordStore) Read() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Contact rows are fixed-width, but tolerate ragged input on read so a
	// hand-edited file still loads.
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return rows, nil
}

// Write replaces the backing file with the given rows, one CSV record per
// row. Prior content is destroyed.
func (s *RecordStore) Write(rows [][]string) error {
	return writeAtomic(s.path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(rows); err != nil {
			return fmt.Errorf("writing records: %w", err)
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("flushing records: %w", err)
		}
		return nil
	})
}
