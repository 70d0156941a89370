// Package book implements the contact manager: a request/response façade
// over the record and metadata stores with validation on insert.
package book

import (
	"fmt"

	"github.com/mesh-intelligence/rolodex/internal/match"
	"github.com/mesh-intelligence/rolodex/internal/store"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Manager owns the in-memory contact collection and metadata mapping. Both
// are loaded once at construction and persisted wholesale on save. The
// Manager is not safe for concurrent mutation from multiple goroutines.
type Manager struct {
	records  *store.RecordStore
	meta     *store.MetadataStore
	contacts []types.Contact
	metadata map[string]any
}

// Open creates a Manager over the resources named by cfg, loading existing
// records and metadata. Absent resources load as empty; a malformed metadata
// document is a construction failure.
func Open(cfg types.Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	records := store.NewRecordStore(cfg.ContactsPath)
	meta := store.NewMetadataStore(cfg.MetadataPath)

	rows, err := records.Read()
	if err != nil {
		return nil, fmt.Errorf("loading contacts: %w", err)
	}
	contacts := make([]types.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, types.ContactFromRow(row))
	}

	metadata, err := meta.Read()
	if err != nil {
		return nil, fmt.Errorf("loading metadata: %w", err)
	}

	return &Manager{
		records:  records,
		meta:     meta,
		contacts: contacts,
		metadata: metadata,
	}, nil
}

// AddContact validates email and phone, then appends the contact to the
// in-memory collection. Nothing is persisted; call SaveContacts.
// Returns ErrInvalidEmail when the email field contains no email-shaped
// substring, ErrInvalidPhone when the phone is not well-formed.
func (m *Manager) AddContact(name, email, phone string) error {
	if len(match.ExtractEmails(email)) == 0 {
		return fmt.Errorf("%w: %q", types.ErrInvalidEmail, email)
	}
	if !match.ValidatePhone(phone) {
		return fmt.Errorf("%w: %q", types.ErrInvalidPhone, phone)
	}
	m.contacts = append(m.contacts, types.Contact{Name: name, Email: email, Phone: phone})
	return nil
}

// RemoveContact drops the contact at the given zero-based position from the
// in-memory collection. Nothing is persisted; call SaveContacts.
func (m *Manager) RemoveContact(index int) error {
	if index < 0 || index >= len(m.contacts) {
		return fmt.Errorf("contact index %d out of range [0, %d)", index, len(m.contacts))
	}
	m.contacts = append(m.contacts[:index], m.contacts[index+1:]...)
	return nil
}

// SaveContacts writes the entire in-memory collection to the record store,
// overwriting prior content. Elements are not re-validated; every element
// passed validation at insertion time.
func (m *Manager) SaveContacts() error {
	rows := make([][]string, 0, len(m.contacts))
	for _, c := range m.contacts {
		rows = append(rows, c.Row())
	}
	if err := m.records.Write(rows); err != nil {
		return fmt.Errorf("saving contacts: %w", err)
	}
	return nil
}

// SetMetadata sets metadata[key] = value and immediately persists the entire
// mapping. Every call is an independent read-modify-persist; last write wins.
func (m *Manager) SetMetadata(key string, value any) error {
	m.metadata[key] = value
	if err := m.meta.Write(m.metadata); err != nil {
		return fmt.Errorf("saving metadata: %w", err)
	}
	return nil
}

// Contacts returns a copy of the in-memory collection in insertion order.
func (m *Manager) Contacts() []types.Contact {
	out := make([]types.Contact, len(m.contacts))
	copy(out, m.contacts)
	return out
}

// Len returns the number of contacts in the in-memory collection.
func (m *Manager) Len() int {
	return len(m.contacts)
}

// Metadata returns the value stored under key and whether it is present.
func (m *Manager) Metadata(key string) (any, bool) {
	v, ok := m.metadata[key]
	return v, ok
}

// MetadataLen returns the number of metadata entries.
func (m *Manager) MetadataLen() int {
	return len(m.metadata)
}

// MetadataSnapshot returns a copy of the metadata mapping.
func (m *Manager) MetadataSnapshot() map[string]any {
	out := make(map[string]any, len(m.metadata))
	for k, v := range m.metadata {
		out[k] = v
	}
	return out
}
