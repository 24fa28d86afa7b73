package showCommand

import (
	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show commands print information in the selected domain, i.e. show profile.",
		Long: `Print configuration/debug data.

Show the full install profile for a platform family, or diagnostic
information about the current host.

Run emucfg show --help to see all options.
`,
	}

	// Attach subcommands
	showCmd.AddCommand(NewProfileCmd())
	showCmd.AddCommand(NewPlatformCmd())

	return showCmd
}
