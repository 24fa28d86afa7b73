package showCommand

import (
	"errors"
	"fmt"

	"github.com/netemu/emucfg/internal/config"
	platformservice "github.com/netemu/emucfg/internal/services/platformService"
	"github.com/netemu/emucfg/internal/utils/spinner"

	"github.com/spf13/cobra"
)

func NewPlatformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Show host diagnostics and the detection result.",
		Long: `Show what the running host looks like and which platform family it
resolves to. Useful when the resolver reports an unsupported platform.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := spinner.Start("Gathering host info")
			info, err := platformservice.GatherHostInfo(cmd.Context())
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, info.Format())

			identity := config.UnameOverride()
			if identity == "" {
				identity = platformservice.HostIdentity(cmd.Context())
			}

			family, err := platformservice.DetectFamily(identity)
			if err != nil {
				var unsupported *platformservice.UnsupportedPlatformError
				if errors.As(err, &unsupported) {
					fmt.Fprintf(out, "Detected family: none (%s is not recognized)\n", unsupported.Identity)
					return nil
				}
				return err
			}

			fmt.Fprintf(out, "Detected family: %s\n", family)

			return nil
		},
	}

	return cmd
}
