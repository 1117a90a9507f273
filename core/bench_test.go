// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/grafold/core"
)

// BenchmarkConnect_Star measures edge insertion fanning out of a
// single hub, the worst case for the hub's sorted edge list.
func BenchmarkConnect_Star(b *testing.B) {
	g := core.NewGraph[string]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Connect("Root", fmt.Sprintf("N%d", i), 1)
	}
}

// BenchmarkConnect_Accumulate measures the merge path: every call hits
// the same edge and only adds weight.
func BenchmarkConnect_Accumulate(b *testing.B) {
	g := core.NewGraph[string]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Connect("A", "B", 1)
	}
}

// BenchmarkEdgeWeight measures sorted-list lookup on a vertex with
// 1000 outgoing edges.
func BenchmarkEdgeWeight(b *testing.B) {
	g := core.NewGraph[string]()
	for i := 0; i < 1000; i++ {
		g.Connect("Center", fmt.Sprintf("Node%d", i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.EdgeWeight("Center", "Node500")
	}
}

// BenchmarkClone measures deep-copying a star of 1000 edges.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph[string]()
	for i := 0; i < 1000; i++ {
		g.Connect("A", fmt.Sprintf("V%d", i), int64(i+1))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

// BenchmarkCollapse measures one contraction on a fresh clone of a
// 100-vertex cycle; the clone dominates allocations.
func BenchmarkCollapse(b *testing.B) {
	g := core.NewGraph[string]()
	const n = 100
	for i := 0; i < n; i++ {
		g.Connect(fmt.Sprintf("C%d", i), fmt.Sprintf("C%d", (i+1)%n), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gg := g.Clone()
		if err := gg.Collapse("C1", "C0"); err != nil {
			b.Fatal(err)
		}
	}
}
