package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts in insertion order",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("open book: %s", err))
	}

	contacts := m.Contacts()

	if flags.jsonMode {
		data, err := json.MarshalIndent(contacts, "", "    ")
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("encode contacts: %s", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(contacts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No contacts")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tEMAIL\tPHONE")
	for i, c := range contacts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, c.Name, c.Email, c.Phone)
	}
	return w.Flush()
}
