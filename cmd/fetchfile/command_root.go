package main

import (
	"log/slog"

	"github.com/picatz/fetchfile"
	"github.com/spf13/cobra"
)

// app carries what every command needs.
type app struct {
	cfg    config
	logger *slog.Logger
}

func (a *app) options() []fetchfile.Option {
	return []fetchfile.Option{fetchfile.WithLogger(a.logger)}
}

func newRootCommand(cfg config) *cobra.Command {
	a := &app{cfg: cfg, logger: slog.New(slog.DiscardHandler)}

	rootCmd := &cobra.Command{
		Use:   "fetchfile",
		Short: "Inspect and convert files saved in binary, structured text or JSON",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := cfg.logger()
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInspectCommand(a),
		newConvertCommand(a),
		newCheckCommand(a),
		newInitCommand(a),
	)

	return rootCmd
}
