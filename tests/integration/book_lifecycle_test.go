package integration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/internal/book"
	"github.com/mesh-intelligence/rolodex/internal/store"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func TestBookLifecycle(t *testing.T) {
	m, cfg := setupBook(t)

	// Add, save, and stamp like the example flow.
	require.NoError(t, m.AddContact("Mol7", "Mol7@kent.ac.uk", "(123) 456-7890"))
	require.NoError(t, m.SaveContacts())
	require.NoError(t, m.SetMetadata("last_updated", "11-12-2024"))
	require.NoError(t, book.StampInBackground(m, "task_status", "running"))

	// A fresh manager over the same resources sees everything.
	m2, err := book.Open(cfg)
	require.NoError(t, err)

	contacts := m2.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, types.Contact{
		Name:  "Mol7",
		Email: "Mol7@kent.ac.uk",
		Phone: "(123) 456-7890",
	}, contacts[0])

	v, ok := m2.Metadata("last_updated")
	require.True(t, ok)
	assert.Equal(t, "11-12-2024", v)

	v, ok = m2.Metadata("task_status")
	require.True(t, ok)
	assert.Equal(t, "running", v)
}

func TestContactsFileRoundTrip(t *testing.T) {
	m, cfg := setupBook(t)

	entries := []types.Contact{
		{Name: "Mol7", Email: "Mol7@kent.ac.uk", Phone: "123-456-7890"},
		{Name: "Quote \"Q\" Smith", Email: "q@example.com", Phone: "456-7890"},
		{Name: "Comma, Inc.", Email: "sales@comma.example.com", Phone: "(555) 123-4567"},
	}
	for _, c := range entries {
		require.NoError(t, m.AddContact(c.Name, c.Email, c.Phone))
	}
	require.NoError(t, m.SaveContacts())

	// Field-for-field through the file, order preserved.
	rows, err := store.NewRecordStore(cfg.ContactsPath).Read()
	require.NoError(t, err)
	require.Len(t, rows, len(entries))
	for i, c := range entries {
		assert.Equal(t, c.Row(), rows[i], "row %d", i)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	m, cfg := setupBook(t)

	require.NoError(t, m.AddContact("A", "a@example.com", "123-4567"))
	require.NoError(t, m.AddContact("B", "b@example.com", "234-5678"))
	require.NoError(t, m.SaveContacts())

	require.NoError(t, m.RemoveContact(0))
	require.NoError(t, m.SaveContacts())

	rows, err := store.NewRecordStore(cfg.ContactsPath).Read()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B", rows[0][0])
}

func TestMetadataDocumentShape(t *testing.T) {
	m, cfg := setupBook(t)

	require.NoError(t, m.SetMetadata("last_updated", "11-12-2024"))
	require.NoError(t, m.SetMetadata("counts", map[string]any{"contacts": 0}))

	data, err := os.ReadFile(cfg.MetadataPath)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "    \"last_updated\": \"11-12-2024\"")
	assert.Contains(t, content, "\"counts\"")
}

func TestValidationRejectionsDoNotTouchDisk(t *testing.T) {
	m, cfg := setupBook(t)

	err := m.AddContact("Bad Email", "not-an-email", "123-456-7890")
	require.ErrorIs(t, err, types.ErrInvalidEmail)

	err = m.AddContact("Bad Phone", "ok@example.com", "1234567890")
	require.ErrorIs(t, err, types.ErrInvalidPhone)

	_, statErr := os.Stat(cfg.ContactsPath)
	assert.True(t, os.IsNotExist(statErr), "contacts file should not exist")
}
