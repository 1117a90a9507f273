package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	topoPath string
)

// Execute builds the grafold command tree and runs it with ctx.
func Execute(ctx context.Context, version string) {
	rootCmd := &cobra.Command{
		Use:          "grafold",
		Short:        "Inspect, traverse, and cut adjacency-list graph topologies",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&topoPath, "file", "f", "topology.yaml", "path to the topology document")
	rootCmd.AddCommand(newShowCommand(), newTraverseCommand(), newMinCutCommand())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
