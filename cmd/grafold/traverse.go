package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/grafold/bfs"
	"github.com/katalvlaran/grafold/dfs"
	"github.com/katalvlaran/grafold/topo"
)

var (
	traverseAlgo string
	traverseFrom string
)

func newTraverseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Walk the graph and print the traversal order, one vertex per line",
		Long: `Walk the graph from a start vertex and print the resulting order,
one vertex per line. bfs prints vertices in visit (level) order,
dfs prints them in finishing order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := topo.LoadFile(topoPath)
			if err != nil {
				return err
			}
			log.Debugf("traversing %s from %q with %s", topoPath, traverseFrom, traverseAlgo)

			var order []string
			switch traverseAlgo {
			case "bfs":
				res, err := bfs.BFS(g, traverseFrom, bfs.WithContext[string](cmd.Context()))
				if err != nil {
					return err
				}
				order = res.Order
			case "dfs":
				res, err := dfs.DFS(g, traverseFrom, dfs.WithContext[string](cmd.Context()))
				if err != nil {
					return err
				}
				order = res.Order
			default:
				return fmt.Errorf("unknown algorithm %q: want bfs or dfs", traverseAlgo)
			}

			for _, v := range order {
				fmt.Println(v)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&traverseAlgo, "algo", "bfs", "traversal algorithm: bfs or dfs")
	cmd.Flags().StringVar(&traverseFrom, "from", "", "start vertex")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
