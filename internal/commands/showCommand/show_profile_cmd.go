package showCommand

import (
	"fmt"

	"github.com/netemu/emucfg/internal/config"
	"github.com/netemu/emucfg/internal/constants"
	platformservice "github.com/netemu/emucfg/internal/services/platformService"
	resolverservice "github.com/netemu/emucfg/internal/services/resolverService"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func NewProfileCmd() *cobra.Command {
	var familyName string
	var format string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the full install profile (all parameters at once).",
		Long: `Show every installation parameter for a platform family.

By default the family is detected from the running host; pass
--family linux|freebsd|openbsd to inspect another family's profile.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var family platformservice.Family
			var err error

			if familyName != "" {
				family, err = platformservice.ParseFamily(familyName)
			} else {
				identity := config.UnameOverride()
				if identity == "" {
					identity = platformservice.HostIdentity(cmd.Context())
				}
				family, err = platformservice.DetectFamily(identity)
			}
			if err != nil {
				return err
			}

			profile := resolverservice.Resolve(family, resolverservice.Options{
				PythonVersion: config.PythonVersion(),
			})

			switch format {
			case "table":
				renderProfileTable(cmd, profile)
			default:
				renderProfilePlain(cmd, profile)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&familyName, "family", "", "Platform family to show (linux, freebsd, openbsd). Default: detect from host.")
	cmd.Flags().StringVar(&format, "format", "plain", "Output format: plain or table")

	return cmd
}

func renderProfilePlain(cmd *cobra.Command, profile constants.InstallProfile) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Family:  %s\n", profile.Family)
	fmt.Fprintf(out, "bindir:  %s\n", profile.BinDir)
	fmt.Fprintf(out, "mandir:  %s\n", profile.ManDir)
	fmt.Fprintf(out, "pkgdir:  %s\n", profile.PkgDir)
	fmt.Fprintf(out, "python:  %s\n", profile.Interpreter)
}

func renderProfileTable(cmd *cobra.Command, profile constants.InstallProfile) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetTitle(fmt.Sprintf("Install profile: %s", profile.Family))
	t.AppendHeader(table.Row{"Parameter", "Value"})
	t.AppendRows([]table.Row{
		{resolverservice.QueryBinDir, profile.BinDir},
		{resolverservice.QueryManDir, profile.ManDir},
		{resolverservice.QueryPkgDir, profile.PkgDir},
		{resolverservice.QueryPython, profile.Interpreter},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
