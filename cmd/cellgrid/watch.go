package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"cellgrid/cmd/cellgrid/ui"
	"cellgrid/sdk"

	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <address>",
		Short: "Poll one cell periodically until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, err := sdk.Dial(args[0])
			if err != nil {
				return err
			}
			defer client.Close()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				printStatus(ctx, client)
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Poll interval")
	return cmd
}

func printStatus(ctx context.Context, client *sdk.Client) {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	st, err := client.Status(qctx)
	if err != nil {
		fmt.Printf("%s  %s\n", time.Now().Format(time.TimeOnly), ui.ErrorStyle.Render("unreachable"))
		return
	}
	fmt.Printf("%s  gen %-6d %s\n", time.Now().Format(time.TimeOnly), st.Generation, ui.Liveness(st.Alive))
}
