package euler_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/eulertour/core"
	"github.com/katalvlaran/eulertour/euler"
)

// TestFleury_Errors verifies that invalid inputs are rejected.
func TestFleury_Errors(t *testing.T) {
	// nil graph
	if _, err := euler.Fleury(nil); !errors.Is(err, euler.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// empty graph
	if _, err := euler.Fleury(core.NewGraph()); !errors.Is(err, euler.ErrNotFound) {
		t.Errorf("empty graph: want ErrNotFound, got %v", err)
	}
	// edgeless vertex
	g := core.NewGraph()
	g.AddVertex("A")
	if _, err := euler.Fleury(g); !errors.Is(err, euler.ErrNotFound) {
		t.Errorf("edgeless vertex: want ErrNotFound, got %v", err)
	}
}

// TestFleury_OpenPath covers the two-odd-vertex case; the walk must start
// at the smaller odd vertex and consume all four edges.
func TestFleury_OpenPath(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "1"}, {"0", "2"}, {"1", "2"}, {"2", "3"}} {
		g.AddEdge(e[0], e[1])
	}
	res, err := euler.Fleury(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"2", "0", "1", "2", "3"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Circuit {
		t.Error("open path must not be flagged as circuit")
	}
	if got := euler.FormatFleury(res.Path); got != "2-0-1-2-3" {
		t.Errorf("FormatFleury = %q; want %q", got, "2-0-1-2-3")
	}
}

// TestFleury_Circuit covers the all-even case on a 4-cycle.
func TestFleury_Circuit(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}} {
		g.AddEdge(e[0], e[1])
	}
	res, err := euler.Fleury(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"0", "1", "2", "3", "0"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if !res.Circuit {
		t.Error("closed walk must be flagged as circuit")
	}
}

// TestFleury_IsolatedVertex pins the strict admission policy: a declared
// vertex with no edges fails the whole call even though the remaining
// subgraph has an Eulerian path.
func TestFleury_IsolatedVertex(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"0", "1", "2", "3"} {
		g.AddVertex(id)
	}
	g.AddEdge("0", "1")
	g.AddEdge("1", "2")
	if _, err := euler.Fleury(g); !errors.Is(err, euler.ErrNotFound) {
		t.Errorf("isolated vertex: want ErrNotFound, got %v", err)
	}
}

// TestFleury_FourOddVertices: K4 has four odd vertices, no Eulerian walk.
func TestFleury_FourOddVertices(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"0", "1"}, {"0", "2"}, {"0", "3"},
		{"1", "2"}, {"1", "3"}, {"2", "3"},
	} {
		g.AddEdge(e[0], e[1])
	}
	if _, err := euler.Fleury(g); !errors.Is(err, euler.ErrNotFound) {
		t.Errorf("K4: want ErrNotFound, got %v", err)
	}
}

// TestFleury_Disconnected: two even-degree components are still rejected.
func TestFleury_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"X", "Y"}, {"Y", "Z"}, {"Z", "X"},
	} {
		g.AddEdge(e[0], e[1])
	}
	if _, err := euler.Fleury(g); !errors.Is(err, euler.ErrNotFound) {
		t.Errorf("disconnected: want ErrNotFound, got %v", err)
	}
}

// TestFleury_BridgeAvoidance: two triangles sharing vertex C. From C the
// edge back to A closes the first triangle prematurely; the bridge probe
// must steer the walk into the second triangle first.
func TestFleury_BridgeAvoidance(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"C", "D"}, {"D", "E"}, {"E", "C"},
	} {
		g.AddEdge(e[0], e[1])
	}
	res, err := euler.Fleury(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C", "D", "E", "C", "A"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if !res.Circuit {
		t.Error("want circuit")
	}
}

// TestFleury_ParallelEdges: a doubled edge forms a two-edge circuit.
func TestFleury_ParallelEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "B")
	res, err := euler.Fleury(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "A"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
}

// TestFleury_SelfLoop: a loop counts as an ordinary edge and is consumed
// exactly once.
func TestFleury_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "A")
	g.AddEdge("A", "B")
	res, err := euler.Fleury(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "A", "B"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
}

// TestFleury_DirectedCircuit: balanced 3-cycle.
func TestFleury_DirectedCircuit(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "0"}} {
		g.AddEdge(e[0], e[1])
	}
	res, err := euler.Fleury(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"0", "1", "2", "0"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if !res.Circuit {
		t.Error("want circuit")
	}
}

// TestFleury_DirectedOpenPath: the +1-balance vertex must start the walk
// even when it is not the smallest label.
func TestFleury_DirectedOpenPath(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("1", "0")
	g.AddEdge("0", "2")
	res, err := euler.Fleury(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"1", "0", "2"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
}

// TestFleury_DirectedUnbalanced: doubled arc gives balance +2.
func TestFleury_DirectedUnbalanced(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("0", "1")
	g.AddEdge("0", "1")
	g.AddEdge("1", "2")
	if _, err := euler.Fleury(g); !errors.Is(err, euler.ErrNotFound) {
		t.Errorf("+2 balance: want ErrNotFound, got %v", err)
	}
}

// TestFleury_DirectedTwoLoops: both out-arcs of A are cut-arcs, so the
// forced move takes the smaller target; the walk still consumes all arcs.
func TestFleury_DirectedTwoLoops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"A", "B"}, {"B", "A"}, {"A", "C"}, {"C", "A"}} {
		g.AddEdge(e[0], e[1])
	}
	res, err := euler.Fleury(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "A", "C", "A"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
}

// TestFleury_OnVisitHook: the hook must see the exact path sequence.
func TestFleury_OnVisitHook(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}} {
		g.AddEdge(e[0], e[1])
	}
	var seen []string
	res, err := euler.Fleury(g, euler.WithOnVisit(func(id string) { seen = append(seen, id) }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(seen, res.Path) {
		t.Errorf("hook sequence %v; want %v", seen, res.Path)
	}
}

// TestFleury_InputUntouched: the traversal must never mutate the input graph.
func TestFleury_InputUntouched(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "0"}} {
		g.AddEdge(e[0], e[1])
	}
	if _, err := euler.Fleury(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount after run = %d; want 3", got)
	}
	// A second run must reproduce the same result from scratch.
	res1, _ := euler.Fleury(g)
	res2, _ := euler.Fleury(g)
	if !reflect.DeepEqual(res1.Path, res2.Path) {
		t.Errorf("runs differ: %v vs %v", res1.Path, res2.Path)
	}
}
