package main

import (
	"fmt"
	"strconv"

	"cellgrid"
	"cellgrid/cmd/cellgrid/ui"
	"cellgrid/config"

	"github.com/spf13/cobra"
)

func neighborsCmd() *cobra.Command {
	var width int
	var namespace string

	cmd := &cobra.Command{
		Use:   "neighbors <id>",
		Short: "List a cell's neighbors and their peer addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id < 0 || id >= width*width {
				return fmt.Errorf("cell id must be in [0, %d)", width*width)
			}

			cfg := config.Config{Namespace: namespace, Port: config.DefaultPort}
			identity := cellgrid.NewIdentity(id, width)

			rows := make([][]string, 0, 8)
			for _, n := range identity.Neighbors() {
				nid := cellgrid.NewIdentity(n, width)
				rows = append(rows, []string{
					strconv.Itoa(n),
					fmt.Sprintf("(%d, %d)", nid.X, nid.Y),
					cfg.PeerAddr(n),
				})
			}

			fmt.Print(ui.KeyValues("  ",
				ui.KV("Cell", strconv.Itoa(id)),
				ui.KV("Position", fmt.Sprintf("(%d, %d)", identity.X, identity.Y)),
				ui.KV("Grid", fmt.Sprintf("%dx%d", width, width)),
			))
			fmt.Println(ui.Table([]string{"ID", "Position", "Address"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "Grid edge length")
	cmd.Flags().StringVar(&namespace, "namespace", config.DefaultNamespace, "Cluster namespace for peer addresses")
	return cmd
}
