package flow

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/ritzau/sea-ir/pkg/ir"
	"github.com/ritzau/sea-ir/pkg/logging"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// View is a gonum directed graph over the edges of one category in an IR
// graph and its sub-graphs. Node IDs are arena handles.
type View struct {
	arena     *ir.Arena
	category  ir.EdgeCategory
	graph     *simple.DirectedGraph
	members   []ir.VertexRef // vertices inserted into the IR graphs, in insertion order
	roots     []ir.VertexRef // start vertices of the IR graphs
	selfLoops []ir.VertexRef
}

// BuildControlFlow builds the view of Control edges
func BuildControlFlow(g *ir.Graph) *View {
	return Build(g, ir.EdgeControl)
}

// BuildDataFlow builds the view of Data edges
func BuildDataFlow(g *ir.Graph) *View {
	return Build(g, ir.EdgeData)
}

// Build creates a view of the edges of the given category with a target set.
// Targets that live outside the IR graph are added as nodes as well.
func Build(g *ir.Graph, category ir.EdgeCategory) *View {
	v := &View{
		arena:    g.Arena(),
		category: category,
		graph:    simple.NewDirectedGraph(),
	}

	seen := make(map[ir.VertexRef]bool)
	var collect func(g *ir.Graph)
	collect = func(g *ir.Graph) {
		if start, ok := g.Start(); ok {
			v.roots = append(v.roots, start)
		}
		for _, ref := range g.Vertices() {
			if !seen[ref] {
				seen[ref] = true
				v.members = append(v.members, ref)
			}
		}
		for _, sub := range g.Subgraphs() {
			collect(sub)
		}
	}
	collect(g)

	for _, ref := range v.members {
		v.addNode(ref)
	}
	for _, ref := range v.members {
		for _, e := range v.arena.Outgoing(ref) {
			edge := v.arena.Edge(e)
			if edge.Category != category || !edge.HasTarget() {
				continue
			}
			v.addEdge(edge.Source, edge.Target)
		}
	}

	logging.Trace("built flow view",
		"category", string(category),
		"nodes", v.graph.Nodes().Len(),
		"edges", v.graph.Edges().Len())

	return v
}

func (v *View) addNode(ref ir.VertexRef) {
	if v.graph.Node(int64(ref)) == nil {
		v.graph.AddNode(simple.Node(int64(ref)))
	}
}

func (v *View) addEdge(from, to ir.VertexRef) {
	// simple.DirectedGraph panics on self edges
	if from == to {
		if !slices.Contains(v.selfLoops, from) {
			v.selfLoops = append(v.selfLoops, from)
		}
		return
	}
	v.addNode(to)
	if !v.graph.HasEdgeFromTo(int64(from), int64(to)) {
		v.graph.SetEdge(v.graph.NewEdge(v.graph.Node(int64(from)), v.graph.Node(int64(to))))
	}
}

// Graph returns the underlying directed graph
func (v *View) Graph() *simple.DirectedGraph {
	return v.graph
}

// Arena returns the arena the node IDs refer to
func (v *View) Arena() *ir.Arena {
	return v.arena
}

// Category returns the edge category of the view
func (v *View) Category() ir.EdgeCategory {
	return v.category
}

// SelfLoops returns vertices with an edge to themselves
func (v *View) SelfLoops() []ir.VertexRef {
	return slices.Clone(v.selfLoops)
}

// Successors returns the vertices ref points to, ordered by handle
func (v *View) Successors(ref ir.VertexRef) []ir.VertexRef {
	if v.graph.Node(int64(ref)) == nil {
		return nil
	}
	out := refs(v.graph.From(int64(ref)))
	if slices.Contains(v.selfLoops, ref) {
		out = append(out, ref)
		slices.Sort(out)
	}
	return out
}

// Predecessors returns the vertices pointing at ref, ordered by handle
func (v *View) Predecessors(ref ir.VertexRef) []ir.VertexRef {
	if v.graph.Node(int64(ref)) == nil {
		return nil
	}
	out := refs(v.graph.To(int64(ref)))
	if slices.Contains(v.selfLoops, ref) {
		out = append(out, ref)
		slices.Sort(out)
	}
	return out
}

// Reachable returns every vertex reachable from ref, including ref itself
func (v *View) Reachable(from ir.VertexRef) []ir.VertexRef {
	start := v.graph.Node(int64(from))
	if start == nil {
		return nil
	}

	var out []ir.VertexRef
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) {
			out = append(out, ir.VertexRef(n.ID()))
		},
	}
	bf.Walk(v.graph, start, nil)

	slices.Sort(out)
	return out
}

// Unreachable returns the sequencing vertices of the IR graphs that cannot
// be reached from any start vertex. Only meaningful on a control view.
func (v *View) Unreachable() []ir.VertexRef {
	reached := make(map[ir.VertexRef]bool)
	for _, root := range v.roots {
		for _, ref := range v.Reachable(root) {
			reached[ref] = true
		}
	}

	var out []ir.VertexRef
	for _, ref := range v.members {
		if reached[ref] || !ir.SequencesControl(v.arena.Vertex(ref).Category()) {
			continue
		}
		out = append(out, ref)
	}
	return out
}

// EvaluationOrder returns the vertices so that every vertex comes after the
// vertices it points to; on a data view, operands before their users. A data
// cycle, which only a Phi in a loop can create, makes the order undefined.
func (v *View) EvaluationOrder() ([]ir.VertexRef, error) {
	if len(v.selfLoops) > 0 {
		return nil, fmt.Errorf("vertex %d depends on itself: %w", v.selfLoops[0], topo.Unorderable{})
	}

	sorted, err := topo.SortStabilized(v.graph, byID)
	if err != nil {
		return nil, fmt.Errorf("ordering %s flow: %w", v.category, err)
	}

	out := make([]ir.VertexRef, len(sorted))
	for i, n := range sorted {
		out[len(sorted)-1-i] = ir.VertexRef(n.ID())
	}
	return out, nil
}

func byID(nodes []graph.Node) {
	slices.SortFunc(nodes, func(a, b graph.Node) int {
		return cmp.Compare(a.ID(), b.ID())
	})
}

func refs(it graph.Nodes) []ir.VertexRef {
	var out []ir.VertexRef
	for it.Next() {
		out = append(out, ir.VertexRef(it.Node().ID()))
	}
	slices.Sort(out)
	return out
}
