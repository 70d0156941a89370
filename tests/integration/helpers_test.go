// Package integration provides end-to-end tests for the rolodex contact
// book: library lifecycle, file round trips, and CLI command flows.
package integration

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/rolodex/internal/book"
	"github.com/mesh-intelligence/rolodex/internal/cli"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// setupBook opens a Manager over fresh backing files in a temp directory.
// Each test gets its own book instance for isolation.
func setupBook(t *testing.T) (*book.Manager, types.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := types.Config{
		ContactsPath: filepath.Join(dir, "contacts.csv"),
		MetadataPath: filepath.Join(dir, "metadata.json"),
	}
	m, err := book.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return m, cfg
}

// testEnv holds the directories a CLI test runs against.
type testEnv struct {
	ConfigDir string
	DataDir   string
}

// newTestEnv creates isolated config and data directories.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	base := t.TempDir()
	return testEnv{
		ConfigDir: filepath.Join(base, "config"),
		DataDir:   filepath.Join(base, "data"),
	}
}

// runCLI executes the rolodex root command in-process with the environment's
// directories and returns captured stdout. Fails the test on command error.
func (e testEnv) runCLI(t *testing.T, args ...string) string {
	t.Helper()
	full := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)

	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(full)

	if err := root.Execute(); err != nil {
		t.Fatalf("rolodex %v: %v\noutput:\n%s", args, err, out.String())
	}
	return out.String()
}
