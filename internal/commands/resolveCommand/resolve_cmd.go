package resolvecommand

import (
	"fmt"
	"strings"

	"github.com/netemu/emucfg/internal/config"
	platformservice "github.com/netemu/emucfg/internal/services/platformService"
	resolverservice "github.com/netemu/emucfg/internal/services/resolverService"

	"github.com/spf13/cobra"
)

func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <parameter>",
		Short: "Print one installation parameter for the detected platform.",
		Long: `Detect the host operating system family and print the requested
installation parameter on a single line.

Recognized parameters: ` + strings.Join(resolverservice.QueryNames(), ", ") + `

Unrecognized parameters print nothing and exit 0, so install drivers can
probe candidate names and treat silence as "not applicable".`,
		Args: cobra.ExactArgs(1),
		// Install drivers parse stdout; an unsupported platform gets the
		// diagnostic alone, not a usage dump.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := config.UnameOverride()
			if identity == "" {
				identity = platformservice.HostIdentity(cmd.Context())
			}

			family, err := platformservice.DetectFamily(identity)
			if err != nil {
				// Fatal: surfaced on stderr with a non-zero exit
				return err
			}

			profile := resolverservice.Resolve(family, resolverservice.Options{
				PythonVersion: config.PythonVersion(),
			})

			// Silent on unknown names, newline-terminated value otherwise
			if value, ok := resolverservice.Lookup(profile, args[0]); ok {
				fmt.Fprintln(cmd.OutOrStdout(), value)
			}

			return nil
		},
	}

	return cmd
}
