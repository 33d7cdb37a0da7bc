package flow

import (
	"errors"
	"slices"
	"testing"

	"github.com/ritzau/sea-ir/pkg/fragments"
	"github.com/ritzau/sea-ir/pkg/ir"
	"gonum.org/v1/gonum/graph/topo"
)

func build(t *testing.T, name string) *ir.Graph {
	t.Helper()
	f, err := fragments.Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", name, err)
	}
	g, err := f.Build()
	if err != nil {
		t.Fatalf("Build(%q) error = %v", name, err)
	}
	return g
}

func TestControlFlowStraightLine(t *testing.T) {
	g := build(t, "straight-line")
	view := BuildControlFlow(g)

	start, _ := g.Start()
	pass, _ := g.Vertex(1)
	ret, _ := g.Vertex(2)

	if got := view.Successors(start); !slices.Equal(got, []ir.VertexRef{pass.Ref()}) {
		t.Errorf("Expected start -> pass, got %v", got)
	}
	if got := view.Predecessors(ret.Ref()); !slices.Equal(got, []ir.VertexRef{pass.Ref()}) {
		t.Errorf("Expected pass -> return, got %v", got)
	}
	if view.Category() != ir.EdgeControl {
		t.Errorf("Expected control view, got %s", view.Category())
	}

	reach := view.Reachable(start)
	if len(reach) != 3 {
		t.Errorf("Expected start, pass and return reachable, got %v", reach)
	}
	if len(view.Unreachable()) != 0 {
		t.Errorf("Expected no unreachable vertices, got %v", view.Unreachable())
	}
}

func TestUnreachable(t *testing.T) {
	a := ir.NewArena()
	g := ir.NewGraph(a)
	ret := a.NewReturn(ir.NoVertex)
	orphan := a.NewPass(ret)
	lit := a.NewLiteral(ir.Number(1))
	g.SetStartVertex(a.NewStart(ret))
	g.AddVertex(ret)
	g.AddVertex(orphan)
	g.AddVertex(lit)

	got := BuildControlFlow(g).Unreachable()
	if !slices.Equal(got, []ir.VertexRef{orphan}) {
		t.Errorf("Expected only the orphan pass unreachable, got %v", got)
	}
}

func TestUnreachableInSubgraph(t *testing.T) {
	g := build(t, "nested-scope")

	if got := BuildControlFlow(g).Unreachable(); len(got) != 0 {
		t.Errorf("Sub-graph starts should count as roots, got %v", got)
	}
}

func TestDataFlowEvaluationOrder(t *testing.T) {
	g := build(t, "if-else")
	view := BuildDataFlow(g)

	order, err := view.EvaluationOrder()
	if err != nil {
		t.Fatalf("EvaluationOrder() error = %v", err)
	}

	pos := make(map[ir.VertexRef]int)
	for i, ref := range order {
		pos[ref] = i
	}

	a := g.Arena()
	for _, ref := range g.Vertices() {
		for _, e := range a.Outgoing(ref) {
			edge := a.Edge(e)
			if edge.Category != ir.EdgeData || !edge.HasTarget() {
				continue
			}
			if pos[edge.Target] >= pos[ref] {
				t.Errorf("Operand %d should come before its user %d", edge.Target, ref)
			}
		}
	}
}

func TestDataFlowCycleIsUnorderable(t *testing.T) {
	g := build(t, "counting-loop")

	_, err := BuildDataFlow(g).EvaluationOrder()
	var unorderable topo.Unorderable
	if !errors.As(err, &unorderable) {
		t.Errorf("Expected topo.Unorderable, got %v", err)
	}
}

func TestCrossGraphTargetsBecomeNodes(t *testing.T) {
	a := ir.NewArena()
	outside := a.NewLiteral(ir.Number(4))
	ret := a.NewReturn(outside)
	g := ir.NewGraph(a)
	g.SetStartVertex(a.NewStart(ret))
	g.AddVertex(ret)

	view := BuildDataFlow(g)
	if view.Graph().Node(int64(outside)) == nil {
		t.Error("Expected target outside the graph to be added as a node")
	}
	if got := view.Successors(ret); !slices.Equal(got, []ir.VertexRef{outside}) {
		t.Errorf("Expected return -> literal, got %v", got)
	}
}

func TestSelfLoopDoesNotPanic(t *testing.T) {
	a := ir.NewArena()
	g := ir.NewGraph(a)
	pass := a.NewPass(ir.NoVertex)
	a.Link(pass, pass)
	g.AddVertex(pass)

	view := BuildControlFlow(g)
	if !slices.Equal(view.SelfLoops(), []ir.VertexRef{pass}) {
		t.Errorf("Expected self loop on %d, got %v", pass, view.SelfLoops())
	}
	if !slices.Equal(view.Successors(pass), []ir.VertexRef{pass}) {
		t.Errorf("Expected pass to succeed itself, got %v", view.Successors(pass))
	}
}
