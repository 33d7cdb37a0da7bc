package cycles

import (
	"cmp"
	"slices"

	"github.com/ritzau/sea-ir/pkg/flow"
	"github.com/ritzau/sea-ir/pkg/ir"
)

// Loop is a set of vertices that can reach each other along the edges of a
// flow view. On a control view that is a loop; on a data view it is a value
// defined in terms of itself through a Phi.
type Loop struct {
	Vertices []ir.VertexRef // sorted by handle
}

// Contains returns true if ref is part of the loop
func (l Loop) Contains(ref ir.VertexRef) bool {
	_, found := slices.BinarySearch(l.Vertices, ref)
	return found
}

// FindLoops returns every strongly connected component of the view with more
// than one vertex, plus one single-vertex loop for each self edge
func FindLoops(v *flow.View) []Loop {
	tarjan := NewTarjanSCC(v.Graph())

	var loops []Loop
	for _, scc := range tarjan.FindSCCs() {
		refs := make([]ir.VertexRef, 0, len(scc))
		for _, id := range scc {
			refs = append(refs, ir.VertexRef(id))
		}
		loops = append(loops, Loop{Vertices: refs})
	}
	for _, ref := range v.SelfLoops() {
		loops = append(loops, Loop{Vertices: []ir.VertexRef{ref}})
	}

	slices.SortFunc(loops, func(a, b Loop) int { return cmp.Compare(a.Vertices[0], b.Vertices[0]) })
	return loops
}

// Headers returns, per loop, the Merge vertices inside it; in a well formed
// control loop that is the loop header the back edge returns to
func Headers(v *flow.View, loops []Loop) [][]ir.VertexRef {
	out := make([][]ir.VertexRef, 0, len(loops))
	for _, loop := range loops {
		var headers []ir.VertexRef
		for _, ref := range loop.Vertices {
			if v.Arena().Vertex(ref).Kind() == ir.KindMerge {
				headers = append(headers, ref)
			}
		}
		out = append(out, headers)
	}
	return out
}
