package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newMetaCmd() *cobra.Command {
	meta := &cobra.Command{
		Use:   "meta",
		Short: "Inspect and update book metadata",
	}
	meta.AddCommand(newMetaSetCmd())
	meta.AddCommand(newMetaGetCmd())
	meta.AddCommand(newMetaListCmd())
	return meta
}

func newMetaSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a metadata key and persist the document",
		Args:  cobra.ExactArgs(2),
		RunE:  runMetaSet,
	}
}

func newMetaGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value stored under a metadata key",
		Args:  cobra.ExactArgs(1),
		RunE:  runMetaGet,
	}
}

func newMetaListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all metadata entries",
		Args:  cobra.NoArgs,
		RunE:  runMetaList,
	}
}

func runMetaSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	m, err := openManager()
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("open book: %s", err))
	}

	if err := m.SetMetadata(key, parseValue(raw)); err != nil {
		return exitError(exitSysError, fmt.Sprintf("save metadata: %s", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)
	return nil
}

func runMetaGet(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("open book: %s", err))
	}

	v, ok := m.Metadata(args[0])
	if !ok {
		return exitError(exitUserError, fmt.Sprintf("no metadata entry %q", args[0]))
	}
	return printValue(cmd, v)
}

func runMetaList(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("open book: %s", err))
	}

	snapshot := m.MetadataSnapshot()

	if flags.jsonMode {
		data, err := json.MarshalIndent(snapshot, "", "    ")
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("encode metadata: %s", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", k, snapshot[k])
	}
	return nil
}

// parseValue interprets raw as a JSON value when possible so numbers,
// booleans, and structured values survive a round trip. Anything that is
// not valid JSON is stored as a plain string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

// printValue writes a metadata value: JSON in --json mode or for structured
// values, plain formatting otherwise.
func printValue(cmd *cobra.Command, v any) error {
	switch v.(type) {
	case string, float64, bool, nil:
		if !flags.jsonMode {
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", v)
			return nil
		}
	}
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("encode value: %s", err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
