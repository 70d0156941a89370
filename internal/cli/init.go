package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/rolodex/internal/book"
	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataDir string `yaml:"data_dir,omitempty"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize rolodex storage",
		Long:  "Create configuration and data directories, write config.yaml, and seed\nthe book metadata with a stable book identifier.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("resolve config dir: %s", err))
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return exitError(exitUserError, fmt.Sprintf("load config: %s", err))
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("resolve data dir: %s", err))
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return exitError(exitSysError, fmt.Sprintf("create config directory: %s", err))
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return exitError(exitSysError, fmt.Sprintf("create data directory: %s", err))
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := writeConfigIfMissing(configPath, dataDir); err != nil {
		return exitError(exitSysError, fmt.Sprintf("write config: %s", err))
	}

	cfg := types.Config{
		ContactsPath: paths.ContactsPath(dataDir),
		MetadataPath: paths.MetadataPath(dataDir),
	}
	m, err := book.Open(cfg)
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("open book: %s", err))
	}

	// Materialize the contacts file so a fresh book round-trips as empty.
	if err := m.SaveContacts(); err != nil {
		return exitError(exitSysError, fmt.Sprintf("initialize contacts: %s", err))
	}

	// Seed book identity once; re-running init keeps the existing ID.
	if _, ok := m.Metadata("book_id"); !ok {
		id, err := uuid.NewV7()
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("generate book ID: %s", err))
		}
		if err := m.SetMetadata("book_id", id.String()); err != nil {
			return exitError(exitSysError, fmt.Sprintf("seed metadata: %s", err))
		}
		if err := m.SetMetadata("created_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
			return exitError(exitSysError, fmt.Sprintf("seed metadata: %s", err))
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Rolodex initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		DataDir: dataDir,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
