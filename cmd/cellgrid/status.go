package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cellgrid/cmd/cellgrid/ui"
	"cellgrid/sdk"

	"github.com/spf13/cobra"
)

const queryTimeout = 5 * time.Second

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <address>",
		Short: "Show one cell's current state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), queryTimeout)
			defer cancel()

			client, err := sdk.Dial(args[0])
			if err != nil {
				return err
			}
			defer client.Close()

			st, err := client.Status(ctx)
			if err != nil {
				return err
			}

			fmt.Print(ui.KeyValues("  ",
				ui.KV("Cell", args[0]),
				ui.KV("State", ui.Liveness(st.Alive)),
				ui.KV("Generation", strconv.FormatUint(st.Generation, 10)),
			))
			return nil
		},
	}
}
