// Package cli implements the rolodex command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/book"
	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "rolodex" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rolodex",
		Short: "A file-backed contact book",
		Long:  "Rolodex manages contacts in a CSV file and book metadata in a\nJSON document, validating email and phone formats on entry.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .rolodex)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .rolodex-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newMetaCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// openManager resolves directories and configuration, then opens the contact
// book over the resolved backing files.
func openManager() (*book.Manager, error) {
	cfg, err := resolveStoreConfig()
	if err != nil {
		return nil, err
	}
	return book.Open(cfg)
}

// resolveStoreConfig builds the store configuration from flags, environment,
// and config.yaml.
func resolveStoreConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	return types.Config{
		ContactsPath: paths.ContactsPath(dataDir),
		MetadataPath: paths.MetadataPath(dataDir),
	}, nil
}

// exitError prints the error to stderr and terminates with the given code.
func exitError(code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
