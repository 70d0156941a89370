package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/book"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// lastUpdatedFormat matches the MM-DD-YYYY stamps stored in book metadata.
const lastUpdatedFormat = "01-02-2006"

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME EMAIL PHONE",
		Short: "Add a contact and save the book",
		Long:  "Validate the email and phone, append the contact, persist the full\ncontact list, and stamp last_updated in the book metadata.",
		Args:  cobra.ExactArgs(3),
		RunE:  runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, email, phone := args[0], args[1], args[2]

	m, err := openManager()
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("open book: %s", err))
	}

	if err := m.AddContact(name, email, phone); err != nil {
		if errors.Is(err, types.ErrInvalidEmail) || errors.Is(err, types.ErrInvalidPhone) {
			return exitError(exitUserError, err.Error())
		}
		return exitError(exitSysError, err.Error())
	}
	if err := m.SaveContacts(); err != nil {
		return exitError(exitSysError, fmt.Sprintf("save contacts: %s", err))
	}

	// Stamp the update time on a background goroutine and wait for it.
	stamp := time.Now().Format(lastUpdatedFormat)
	if err := book.StampInBackground(m, "last_updated", stamp); err != nil {
		return exitError(exitSysError, fmt.Sprintf("stamp metadata: %s", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", name)
	return nil
}
