// Command cellgridd runs one cell of the distributed automaton grid.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cellgrid/config"
	"cellgrid/daemon"
	"cellgrid/internal/logging"

	"github.com/spf13/cobra"
)

func main() {
	if err := logging.Configure(logging.LevelInfo); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := rootCmd().Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfgPath string
	var listen string
	var debug bool

	cmd := &cobra.Command{
		Use:   "cellgridd",
		Short: "Cellular automaton grid node",
		Long: "cellgridd owns exactly one cell of a distributed Life grid: it answers\n" +
			"peer status queries, polls its neighbors once per tick, and advances its\n" +
			"own generation on an independent clock.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelInfo
			if debug {
				level = logging.LevelDebug
			}
			return logging.Configure(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			return daemon.Run(ctx, cfg)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&cfgPath, "config", "", "Optional YAML config file")
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides config)")
	return cmd
}
