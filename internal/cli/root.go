// Package cli wires configuration, logging and the services into the
// coursework command.
package cli

import (
	"coursework/internal/config"
	"coursework/internal/logging"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	cfg *config.Config
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "coursework",
		Short: "Coursework web apps",
		Long:  "Serves the storefront, languages, countries and portfolio apps and their data tools.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if opts.Verbose {
				cfg.Logging.Level = "debug"
			}
			opts.cfg = cfg
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "coursework.yaml", "config file (missing file uses defaults)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewCountriesCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))

	return cmd
}

// serverLogger logs to stdout in the configured format.
func (o *RootOptions) serverLogger() (*zap.Logger, error) {
	logger, err := logging.New(o.cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// toolLogger keeps stdout free for command output.
func (o *RootOptions) toolLogger(w io.Writer) (*zap.Logger, error) {
	logger, err := logging.NewWithWriter(config.LoggingConfig{Level: o.cfg.Logging.Level, Format: "console"}, w)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
