package ir

import (
	"fmt"
	"slices"

	"github.com/ritzau/sea-ir/pkg/logging"
)

// Graph is an ordered collection of vertices with a designated Start vertex
// and nested sub-graphs. A vertex's identity is its insertion index.
type Graph struct {
	arena     *Arena
	vertices  []VertexRef
	start     VertexRef
	subgraphs []*Graph
}

// NewGraph creates a graph over arena, inserting the given vertices in order
func NewGraph(arena *Arena, vertices ...VertexRef) *Graph {
	g := &Graph{
		arena:     arena,
		vertices:  make([]VertexRef, 0, len(vertices)),
		start:     NoVertex,
		subgraphs: make([]*Graph, 0),
	}
	for _, v := range vertices {
		g.AddVertex(v)
	}
	return g
}

// Arena returns the arena backing the graph
func (g *Graph) Arena() *Arena {
	return g.arena
}

// AddVertex appends v and assigns its identity, which is returned.
// Inserting the same vertex twice is not detected.
func (g *Graph) AddVertex(v VertexRef) int {
	vertex := g.arena.Vertex(v)
	vertex.id = len(g.vertices)
	g.vertices = append(g.vertices, v)
	return vertex.id
}

// AddSubgraph appends a nested graph. Cycles are not detected.
func (g *Graph) AddSubgraph(sub *Graph) {
	g.subgraphs = append(g.subgraphs, sub)
}

// SetStartVertex records v as the start of the graph and adds it
func (g *Graph) SetStartVertex(v VertexRef) error {
	vertex := g.arena.Vertex(v)
	if vertex.Kind() != KindStart {
		return fmt.Errorf("set start to %s: %w", vertex, ErrNotStart)
	}
	g.start = v
	g.AddVertex(v)
	return nil
}

// Start returns the start vertex, if one is set
func (g *Graph) Start() (VertexRef, bool) {
	return g.start, g.start != NoVertex
}

// Vertices returns the vertices in insertion (identity) order
func (g *Graph) Vertices() []VertexRef {
	return slices.Clone(g.vertices)
}

// Len returns the number of vertices inserted into the graph
func (g *Graph) Len() int {
	return len(g.vertices)
}

// Vertex returns the vertex with the given identity
func (g *Graph) Vertex(id int) (*Vertex, bool) {
	if id < 0 || id >= len(g.vertices) {
		return nil, false
	}
	return g.arena.Vertex(g.vertices[id]), true
}

// Subgraphs returns the nested graphs in insertion order
func (g *Graph) Subgraphs() []*Graph {
	return slices.Clone(g.subgraphs)
}

// Verify reports whether the graph has a start vertex and every vertex and
// every sub-graph, recursively, verifies. It stops at the first failure.
func (g *Graph) Verify() bool {
	if g.start == NoVertex {
		logging.Debug("graph has no start vertex", "vertices", len(g.vertices))
		return false
	}

	for _, v := range g.vertices {
		if !g.arena.Verify(v) {
			vertex := g.arena.Vertex(v)
			logging.Debug("vertex failed verification",
				"id", vertex.ID(),
				"kind", string(vertex.Kind()),
				"missing", g.arena.Missing(v))
			return false
		}
	}

	for _, sub := range g.subgraphs {
		if !sub.Verify() {
			return false
		}
	}

	return true
}
