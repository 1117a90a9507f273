package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/grafold/core"
)

// buildPath creates an undirected path v0-v1-…-v{n-1} with unit weights.
func buildPath(n int) *core.Graph[string] {
	g := core.NewGraph[string]()
	for i := 0; i < n-1; i++ {
		u := "v" + strconv.Itoa(i)
		v := "v" + strconv.Itoa(i+1)
		_, _ = g.Connect(u, v, 1)
	}

	return g
}

// buildTriangle creates the undirected triangle A-B-C with the given
// edge weights.
func buildTriangle(ab, bc, ca int64) *core.Graph[string] {
	g := core.NewGraph[string]()
	_, _ = g.Connect("A", "B", ab)
	_, _ = g.Connect("B", "C", bc)
	_, _ = g.Connect("C", "A", ca)

	return g
}

func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph[string]()
	assert.False(t, g.Directed(), "graphs default to undirected")
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, g.Vertices())

	total, err := g.CountEdge()
	assert.NoError(t, err)
	assert.Zero(t, total)
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph[string]()
	assert.True(t, g.AddVertex("A"))
	assert.False(t, g.AddVertex("A"), "re-adding a vertex is a no-op")
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestConnect_CreatesEndpointsLazily(t *testing.T) {
	g := core.NewGraph[string]()
	created, err := g.Connect("A", "B", 3)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, []string{"A", "B"}, g.Vertices(), "first-seen order")
}

func TestConnect_AccumulatesWeight(t *testing.T) {
	g := core.NewGraph[string]()
	created, err := g.Connect("A", "B", 2)
	assert.NoError(t, err)
	assert.True(t, created)

	created, err = g.Connect("A", "B", 5)
	assert.NoError(t, err)
	assert.False(t, created, "second connect merges into the existing edge")

	w, ok := g.EdgeWeight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, int64(7), w)
	assert.Equal(t, 1, g.OutDegree("A"), "no duplicate adjacency entries")
}

func TestConnect_SelfLoopRejected(t *testing.T) {
	g := core.NewGraph[string]()
	created, err := g.Connect("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.False(t, created)
	assert.Equal(t, 0, g.VertexCount(), "rejected connect must not create vertices")
}

func TestConnect_BadWeightRejected(t *testing.T) {
	g := core.NewGraph[string]()
	for _, w := range []int64{0, -3} {
		created, err := g.Connect("A", "B", w)
		assert.ErrorIs(t, err, core.ErrBadWeight)
		assert.False(t, created)
	}
	assert.Equal(t, 0, g.VertexCount())
}

func TestConnect_MirrorsUndirected(t *testing.T) {
	g := core.NewGraph[string]()
	_, err := g.Connect("A", "B", 4)
	assert.NoError(t, err)

	wFwd, okFwd := g.EdgeWeight("A", "B")
	wRev, okRev := g.EdgeWeight("B", "A")
	assert.True(t, okFwd)
	assert.True(t, okRev)
	assert.Equal(t, wFwd, wRev, "mirror arcs carry equal weights")
	assert.Equal(t, 1, g.OutDegree("A"))
	assert.Equal(t, 1, g.OutDegree("B"))
}

func TestConnect_DirectedOneWay(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	_, err := g.Connect("A", "B", 4)
	assert.NoError(t, err)

	_, ok := g.EdgeWeight("B", "A")
	assert.False(t, ok, "directed graphs store no mirror")

	connected, err := g.IsConnected("B", "A")
	assert.NoError(t, err)
	assert.False(t, connected)
}

func TestConnect_WithDistance(t *testing.T) {
	g := core.NewGraph[string]()
	_, err := g.Connect("A", "B", 1, core.WithDistance(2.5))
	assert.NoError(t, err)

	edges := g.OutEdges("A")
	assert.Len(t, edges, 1)
	assert.Equal(t, 2.5, edges[0].Distance)

	// Reinforcing the edge keeps the original distance.
	_, err = g.Connect("A", "B", 1, core.WithDistance(9))
	assert.NoError(t, err)
	edges = g.OutEdges("A")
	assert.Equal(t, 2.5, edges[0].Distance)
	assert.Equal(t, int64(2), edges[0].Weight)
}

func TestOutEdges_AscendingHeadOrder(t *testing.T) {
	g := core.NewGraph[string]()
	_, _ = g.Connect("M", "c", 1)
	_, _ = g.Connect("M", "a", 1)
	_, _ = g.Connect("M", "b", 1)

	edges := g.OutEdges("M")
	heads := make([]string, len(edges))
	for i, e := range edges {
		heads[i] = e.Head
	}
	assert.Equal(t, []string{"a", "b", "c"}, heads)

	assert.Nil(t, g.OutEdges("ghost"), "unknown vertex has no edge list")
}

func TestDisconnect_ReturnsWeight(t *testing.T) {
	g := core.NewGraph[string]()
	_, _ = g.Connect("A", "B", 6)

	w, err := g.Disconnect("A", "B")
	assert.NoError(t, err)
	assert.Equal(t, int64(6), w)

	// Both mirrors are gone; a second disconnect finds nothing.
	_, ok := g.EdgeWeight("B", "A")
	assert.False(t, ok)
	w, err = g.Disconnect("A", "B")
	assert.NoError(t, err)
	assert.Zero(t, w)

	// Endpoints survive as isolated vertices.
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
}

func TestDisconnect_Directed(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.Connect("A", "B", 2)
	_, _ = g.Connect("B", "A", 9)

	w, err := g.Disconnect("A", "B")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), w)

	// The opposite arc is an independent edge and survives.
	wRev, ok := g.EdgeWeight("B", "A")
	assert.True(t, ok)
	assert.Equal(t, int64(9), wRev)
}

func TestIsConnected_SelfAlwaysTrue(t *testing.T) {
	g := core.NewGraph[string]()
	_, _ = g.Connect("A", "B", 1)

	for _, v := range []string{"A", "ghost"} {
		connected, err := g.IsConnected(v, v)
		assert.NoError(t, err)
		assert.True(t, connected, "%s must be connected to itself", v)
	}
}

func TestIsConnected_UnknownVertices(t *testing.T) {
	g := core.NewGraph[string]()
	connected, err := g.IsConnected("A", "B")
	assert.NoError(t, err)
	assert.False(t, connected)
}

func TestCountEdge_UndirectedHalvesRawTotal(t *testing.T) {
	g := buildTriangle(2, 3, 5)
	total, err := g.CountEdge()
	assert.NoError(t, err)
	assert.Equal(t, int64(10), total)
}

func TestCountEdge_DirectedRawTotal(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.Connect("A", "B", 2)
	_, _ = g.Connect("B", "A", 3)

	total, err := g.CountEdge()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestConnectedVertices_SkipsIsolated(t *testing.T) {
	g := buildPath(3)
	g.AddVertex("loner")

	assert.Equal(t, []string{"v0", "v1", "v2"}, g.ConnectedVertices())

	_, err := g.Disconnect("v0", "v1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, g.ConnectedVertices())
	assert.Equal(t, 4, g.VertexCount(), "isolated vertices stay known")
}

func TestVisited_Lifecycle(t *testing.T) {
	g := buildPath(3)

	assert.False(t, g.Visited("v0"))
	assert.True(t, g.MarkVisited("v0"))
	assert.True(t, g.Visited("v0"))

	assert.False(t, g.MarkVisited("ghost"), "unknown vertices cannot be marked")
	assert.False(t, g.Visited("ghost"))

	g.MarkVisited("v1")
	g.ResetVisited()
	assert.False(t, g.Visited("v0"))
	assert.False(t, g.Visited("v1"))
}

func TestClone_Independent(t *testing.T) {
	g := buildTriangle(1, 1, 1)
	g.MarkVisited("B")

	clone := g.Clone()
	assert.Equal(t, g.Vertices(), clone.Vertices())
	assert.True(t, clone.Visited("B"), "visited flags travel with the clone")

	// Mutating the clone leaves the original untouched.
	_, err := clone.Disconnect("A", "B")
	assert.NoError(t, err)
	_, err = clone.Connect("C", "D", 7)
	assert.NoError(t, err)
	clone.ResetVisited()

	w, ok := g.EdgeWeight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, int64(1), w)
	assert.False(t, g.HasVertex("D"))
	assert.True(t, g.Visited("B"))
}

func TestGraph_IntVertices(t *testing.T) {
	g := core.NewGraph[int]()
	_, _ = g.Connect(30, 10, 1)
	_, _ = g.Connect(30, 20, 1)

	edges := g.OutEdges(30)
	assert.Len(t, edges, 2)
	assert.Equal(t, 10, edges[0].Head)
	assert.Equal(t, 20, edges[1].Head)
}

// The engine is single-threaded by contract; sharing one graph across
// goroutines works when callers serialize access with their own lock.
func TestExternalLock_SerializesMutation(t *testing.T) {
	g := core.NewGraph[string]()
	var mu sync.Mutex
	var wg sync.WaitGroup

	const workers = 8
	const edges = 50
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < edges; i++ {
				mu.Lock()
				_, _ = g.Connect("hub", "w"+strconv.Itoa(w)+"-"+strconv.Itoa(i), 1)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	total, err := g.CountEdge()
	assert.NoError(t, err)
	assert.Equal(t, int64(workers*edges), total)
	assert.Equal(t, workers*edges, g.OutDegree("hub"))
}
