package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty contacts path returns ErrContactsPathEmpty",
			config:  Config{ContactsPath: "", MetadataPath: "/tmp/metadata.json"},
			wantErr: ErrContactsPathEmpty,
		},
		{
			name:    "empty metadata path returns ErrMetadataPathEmpty",
			config:  Config{ContactsPath: "/tmp/contacts.csv", MetadataPath: ""},
			wantErr: ErrMetadataPathEmpty,
		},
		{
			name:    "both paths set is valid",
			config:  Config{ContactsPath: "/tmp/contacts.csv", MetadataPath: "/tmp/metadata.json"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestContactRowRoundTrip(t *testing.T) {
	c := Contact{Name: "Mol7", Email: "Mol7@kent.ac.uk", Phone: "123-456-7890"}
	row := c.Row()
	if len(row) != ContactFields {
		t.Fatalf("expected %d fields, got %d", ContactFields, len(row))
	}
	if got := ContactFromRow(row); got != c {
		t.Fatalf("round trip mismatch: %+v != %+v", got, c)
	}
}

func TestContactFromShortRow(t *testing.T) {
	c := ContactFromRow([]string{"Ada"})
	if c.Name != "Ada" || c.Email != "" || c.Phone != "" {
		t.Fatalf("unexpected contact from short row: %+v", c)
	}
}
