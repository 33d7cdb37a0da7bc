package ir

import (
	"fmt"
	"slices"
	"strconv"
)

// VertexRef is a handle to a vertex owned by an Arena. It is stable for the
// lifetime of the arena and independent of the vertex's graph identity.
type VertexRef int32

// EdgeRef is a handle to an edge owned by an Arena
type EdgeRef int32

const (
	NoVertex VertexRef = -1
	NoEdge   EdgeRef   = -1
)

// edgeRecord is the arena's storage for one edge. The source is fixed at
// creation; only the target (and the label of plain edges) can change.
type edgeRecord struct {
	source   VertexRef
	target   VertexRef
	label    string
	category EdgeCategory
	phi      bool
	branch   VertexRef
}

// Edge is a read-only snapshot of an edge
type Edge struct {
	Ref      EdgeRef
	Source   VertexRef
	Target   VertexRef // NoVertex while unset
	Label    string
	Category EdgeCategory
	Phi      bool      // true for Phi operand edges
	Branch   VertexRef // contributing control vertex of a Phi operand
}

// HasTarget returns true if the edge points at a vertex
func (e Edge) HasTarget() bool {
	return e.Target != NoVertex
}

// Arena owns vertices and edges and maintains the incoming-edge index.
// Graphs reference vertices by handle, so one arena can back a graph and all
// of its sub-graphs, and edges may freely cross between them.
type Arena struct {
	vertices []*Vertex
	edges    []edgeRecord
	incoming map[VertexRef][]EdgeRef // target -> edges pointing at it
}

// NewArena creates a new empty arena
func NewArena() *Arena {
	return &Arena{
		vertices: make([]*Vertex, 0),
		edges:    make([]edgeRecord, 0),
		incoming: make(map[VertexRef][]EdgeRef),
	}
}

// Len returns the number of vertices in the arena
func (a *Arena) Len() int {
	return len(a.vertices)
}

// EdgeCount returns the number of edges in the arena
func (a *Arena) EdgeCount() int {
	return len(a.edges)
}

// Vertex returns the vertex behind a handle. It panics on a handle that was
// not issued by this arena.
func (a *Arena) Vertex(v VertexRef) *Vertex {
	if v < 0 || int(v) >= len(a.vertices) {
		panic(fmt.Sprintf("ir: vertex handle %d out of range [0,%d)", v, len(a.vertices)))
	}
	return a.vertices[v]
}

func (a *Arena) record(e EdgeRef) *edgeRecord {
	if e < 0 || int(e) >= len(a.edges) {
		panic(fmt.Sprintf("ir: edge handle %d out of range [0,%d)", e, len(a.edges)))
	}
	return &a.edges[e]
}

// Edge returns a snapshot of the edge behind a handle
func (a *Arena) Edge(e EdgeRef) Edge {
	rec := a.record(e)
	return Edge{
		Ref:      e,
		Source:   rec.source,
		Target:   rec.target,
		Label:    a.edgeLabel(rec),
		Category: rec.category,
		Phi:      rec.phi,
		Branch:   rec.branch,
	}
}

// Target returns the current target of an edge, NoVertex if unset
func (a *Arena) Target(e EdgeRef) VertexRef {
	return a.record(e).target
}

// HasTarget returns true if the edge currently points at a vertex
func (a *Arena) HasTarget(e EdgeRef) bool {
	return a.record(e).target != NoVertex
}

// SetTarget points an edge at a new target, or clears it with NoVertex.
// The edge is removed from the old target's incoming edges and appended to
// the new target's, so the incoming index always mirrors the edge targets.
func (a *Arena) SetTarget(e EdgeRef, target VertexRef) {
	rec := a.record(e)
	if target != NoVertex {
		a.Vertex(target)
	}

	if rec.target != NoVertex {
		old := rec.target
		remaining := slices.DeleteFunc(a.incoming[old], func(in EdgeRef) bool { return in == e })
		if len(remaining) == 0 {
			delete(a.incoming, old)
		} else {
			a.incoming[old] = remaining
		}
	}

	rec.target = target
	if target != NoVertex {
		a.incoming[target] = append(a.incoming[target], e)
	}
}

// SetLabel relabels a plain edge. Phi operand labels are derived from their
// contributing branch and cannot be set.
func (a *Arena) SetLabel(e EdgeRef, label string) error {
	rec := a.record(e)
	if rec.phi {
		return fmt.Errorf("relabel edge %d: %w", e, ErrPhiLabel)
	}
	rec.label = label
	return nil
}

// Incoming returns the edges currently targeting v, in registration order
func (a *Arena) Incoming(v VertexRef) []EdgeRef {
	a.Vertex(v)
	return slices.Clone(a.incoming[v])
}

func (a *Arena) edgeLabel(rec *edgeRecord) string {
	if !rec.phi {
		return rec.label
	}
	if rec.branch == NoVertex {
		return "?"
	}
	branch := a.Vertex(rec.branch)
	if !branch.HasID() {
		return "?"
	}
	return strconv.Itoa(branch.ID())
}

func (a *Arena) newVertex(shape Shape) VertexRef {
	ref := VertexRef(len(a.vertices))
	a.vertices = append(a.vertices, &Vertex{ref: ref, id: Unassigned, shape: shape})
	return ref
}

func (a *Arena) newEdge(source, target VertexRef, label string, category EdgeCategory) EdgeRef {
	ref := EdgeRef(len(a.edges))
	a.edges = append(a.edges, edgeRecord{
		source:   source,
		target:   NoVertex,
		label:    label,
		category: category,
		branch:   NoVertex,
	})
	a.SetTarget(ref, target)
	return ref
}

func (a *Arena) newPhiEdge(source, target, branch VertexRef) EdgeRef {
	if branch != NoVertex {
		a.Vertex(branch)
	}
	ref := EdgeRef(len(a.edges))
	a.edges = append(a.edges, edgeRecord{
		source:   source,
		target:   NoVertex,
		category: EdgeData,
		phi:      true,
		branch:   branch,
	})
	a.SetTarget(ref, target)
	return ref
}
