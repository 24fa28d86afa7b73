// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	// Import your CLI subcommands
	resolveCommand "github.com/netemu/emucfg/internal/commands/resolveCommand"
	"github.com/netemu/emucfg/internal/commands/showCommand"
	versionCommand "github.com/netemu/emucfg/internal/commands/versionCommand"

	// Import your CLI config
	"github.com/netemu/emucfg/internal/config"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "emucfg",
	// A short description of what the command does
	Short: "Resolve per-platform installation parameters for the emulator's install driver.",
	// A longer description for the command
	Long: `Detect the host operating system family (Linux, FreeBSD, OpenBSD) and
resolve the installation parameters the install driver needs: binary
directory, man page directory, python package directory, and the name of
the python interpreter.`,
	// Adds a help menu you can display with --help/-h
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(rootCmd.Execute())
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON, YAML, TOML or dotenv)")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("uname", "", "Override the detected OS identity string (mainly for testing)")
	rootCmd.PersistentFlags().String("python-version", "", "Python runtime version used in package paths, i.e. '3.9'")

	// Add other CLI subcommands
	rootCmd.AddCommand(resolveCommand.NewResolveCommand())
	rootCmd.AddCommand(showCommand.NewShowCmd())
	rootCmd.AddCommand(versionCommand.NewVersionCommand())

	// Call the initConfig function when the root command is initialized
	cobra.OnInitialize(initConfig)
}

// Load configuration for CLI app
func initConfig() {
	config.LoadConfig(rootCmd.PersistentFlags(), cfgFile)
}
