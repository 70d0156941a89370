// Package paths resolves configuration and data directory locations for the
// rolodex CLI.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".rolodex"
	DefaultDataDirName   = ".rolodex-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ROLODEX_CONFIG_DIR"
	EnvDataDir   = "ROLODEX_DATA_DIR"
)

// Backing file names inside the data directory.
const (
	ContactsFileName = "contacts.csv"
	MetadataFileName = "metadata.json"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ROLODEX_CONFIG_DIR env > $(CWD)/.rolodex.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > ROLODEX_DATA_DIR env > $(CWD)/.rolodex-db.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ContactsPath returns the contacts file path inside dataDir.
func ContactsPath(dataDir string) string {
	return filepath.Join(dataDir, ContactsFileName)
}

// MetadataPath returns the metadata file path inside dataDir.
func MetadataPath(dataDir string) string {
	return filepath.Join(dataDir, MetadataFileName)
}
