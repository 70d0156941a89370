package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove INDEX",
		Short: "Remove the contact at the given position and save the book",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return exitError(exitUserError, fmt.Sprintf("invalid index %q", args[0]))
	}

	m, err := openManager()
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("open book: %s", err))
	}

	if err := m.RemoveContact(index); err != nil {
		return exitError(exitUserError, err.Error())
	}
	if err := m.SaveContacts(); err != nil {
		return exitError(exitSysError, fmt.Sprintf("save contacts: %s", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed contact %d\n", index)
	return nil
}
