package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/grafold/topo"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every vertex with its adjacency list and the graph totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := topo.LoadFile(topoPath)
			if err != nil {
				return err
			}
			log.Debugf("loaded topology from %s", topoPath)

			if err = g.Display(os.Stdout); err != nil {
				return err
			}
			weight, err := g.CountEdge()
			if err != nil {
				return err
			}
			fmt.Printf("vertices: %d\nedge weight: %d\n", g.VertexCount(), weight)

			return nil
		},
	}
}
