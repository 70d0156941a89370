package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// metadataIndent is the indentation used when serializing the metadata
// document. Four spaces keeps the file diffable by hand.
const metadataIndent = "    "

// MetadataStore reads and writes one top-level JSON object against a single
// file. Values are arbitrary JSON-representable data keyed by string.
type MetadataStore struct {
	path string
}

// NewMetadataStore creates a metadata store backed by the JSON document at
// path. The file is not touched until Read or Write is called.
func NewMetadataStore(path string) *MetadataStore {
	return &MetadataStore{path: path}
}

// Path returns the backing file path.
func (s *MetadataStore) Path() string {
	return s.path
}

// Read parses the backing document into a key-value mapping. A missing file
// is not an error; it reads as an empty mapping. A file that exists but does
// not hold a well-formed JSON object fails with ErrMetadataMalformed.
func (s *MetadataStore) Read() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrMetadataMalformed, s.path, err)
	}
	return m, nil
}

// Write serializes the mapping with stable indented formatting, replacing
// prior content entirely.
func (s *MetadataStore) Write(m map[string]any) error {
	data, err := json.MarshalIndent(m, "", metadataIndent)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	return writeAtomic(s.path, func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing metadata: %w", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("writing trailing newline: %w", err)
		}
		return nil
	})
}
