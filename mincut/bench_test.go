// Package mincut_test provides benchmarks for contraction trials.
package mincut_test

import (
	"testing"

	"github.com/katalvlaran/grafold/mincut"
)

// BenchmarkMinCut_Dumbbell measures 16 sequential trials on the
// seven-edge dumbbell.
func BenchmarkMinCut_Dumbbell(b *testing.B) {
	g := buildDumbbell()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mincut.MinCut(g, mincut.WithTrials(16)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMinCut_Parallel measures the same workload fanned out over
// four workers.
func BenchmarkMinCut_Parallel(b *testing.B) {
	g := buildDumbbell()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mincut.MinCut(g, mincut.WithTrials(16), mincut.WithParallelism(4)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMinCut_Cycle32 measures the default schedule cost growth on
// a larger ring with an explicit trial cap.
func BenchmarkMinCut_Cycle32(b *testing.B) {
	g := buildCycle(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mincut.MinCut(g, mincut.WithTrials(8)); err != nil {
			b.Fatal(err)
		}
	}
}
