package types

import "errors"

// Config holds the backing resource paths for a contact book. Both paths are
// explicit constructor input so that independent Manager instances can target
// independent resources; nothing is read from ambient state.
type Config struct {
	ContactsPath string `json:"contacts_path" yaml:"contacts_path"`
	MetadataPath string `json:"metadata_path" yaml:"metadata_path"`
}

// Config validation errors.
var (
	ErrContactsPathEmpty = errors.New("contacts path must not be empty")
	ErrMetadataPathEmpty = errors.New("metadata path must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.ContactsPath == "" {
		return ErrContactsPathEmpty
	}
	if c.MetadataPath == "" {
		return ErrMetadataPathEmpty
	}
	return nil
}
