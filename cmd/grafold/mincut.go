package main

import (
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/grafold/mincut"
	"github.com/katalvlaran/grafold/topo"
)

var (
	mcTrials   int
	mcSeed     int64
	mcParallel int
)

func newMinCutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mincut",
		Short: "Estimate the minimum cut weight by randomized contraction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := topo.LoadFile(topoPath)
			if err != nil {
				return err
			}

			opts := []mincut.Option{
				mincut.WithContext(cmd.Context()),
				mincut.WithSeed(mcSeed),
				mincut.WithParallelism(mcParallel),
				mincut.WithOnTrial(func(trial int, cut int64) {
					log.Debugf("trial %d: cut %d", trial, cut)
				}),
			}
			if mcTrials > 0 {
				opts = append(opts, mincut.WithTrials(mcTrials))
			}

			res, err := mincut.MinCut(g, opts...)
			if err != nil {
				return err
			}
			fmt.Printf("min cut: %d\ntrials: %d\n", res.Weight, res.Trials)

			return nil
		},
	}
	cmd.Flags().IntVar(&mcTrials, "trials", 0, "number of contraction trials (0 picks n(n-1)/2*ln(n))")
	cmd.Flags().Int64Var(&mcSeed, "seed", 0, "random seed (0 uses the built-in default)")
	cmd.Flags().IntVar(&mcParallel, "parallel", runtime.NumCPU(), "number of concurrent trial workers")

	return cmd
}
