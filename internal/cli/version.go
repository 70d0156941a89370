package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/rolodex"
)

const modulePath = "github.com/mesh-intelligence/rolodex"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rolodex version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "rolodex v%s\nmodule: %s\n", rolodex.Version, modulePath)
			return nil
		},
	}
}
