package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sghaida/designpatterns/internal/config"
	"github.com/sghaida/designpatterns/internal/logger"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("39"))

// newRootCmd builds the command tree. Each call gets its own viper instance
// so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Design pattern demonstrations",
		Long: `patterns runs two small design pattern demos:

  document  the Abstract Document pattern (a Car over a property bag)
  factory   the Abstract Factory pattern (Windows or Mac widgets)

Without a subcommand both demos run, document first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			loaded, err := config.Load(v)
			if err != nil {
				return err
			}
			if err := logger.Configure(loaded.LogLevel, loaded.LogFile); err != nil {
				return fmt.Errorf("configure logger: %w", err)
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runDocumentDemo(cmd.OutOrStdout(), cfg); err != nil {
				return err
			}
			return runFactoryDemo(cmd.OutOrStdout(), cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.String(config.KeyPlatform, "", "Host OS name used to pick the widget family [default: this machine]")
	flags.String(config.KeyDocument, "", "JSON or YAML file with the car properties for the document demo")

	for _, key := range []string{config.KeyLogLevel, config.KeyLogFile, config.KeyPlatform, config.KeyDocument} {
		// Lookup cannot miss: the flag was registered just above.
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "document",
			Short: "Run the Abstract Document demo",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runDocumentDemo(cmd.OutOrStdout(), cfg)
			},
		},
		&cobra.Command{
			Use:   "factory",
			Short: "Run the Abstract Factory demo",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runFactoryDemo(cmd.OutOrStdout(), cfg)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "patterns v%s\n", version)
			},
		},
	)

	return rootCmd
}
