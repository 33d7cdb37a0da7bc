package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Issue describes one reason a graph does not verify
type Issue struct {
	Path    []int      // sub-graph indices from the checked graph, empty for the graph itself
	ID      int        // vertex identity, Unassigned for graph-level issues
	Kind    VertexKind // empty for graph-level issues
	Missing []string
}

func (i Issue) String() string {
	var b strings.Builder
	b.WriteString("graph")
	for _, idx := range i.Path {
		b.WriteString("/")
		b.WriteString(strconv.Itoa(idx))
	}
	if i.ID == Unassigned {
		fmt.Fprintf(&b, ": missing %s", strings.Join(i.Missing, ", "))
		return b.String()
	}
	fmt.Fprintf(&b, ": #%d %s missing %s", i.ID, i.Kind, strings.Join(i.Missing, ", "))
	return b.String()
}

// Check walks the graph in the same order as Verify but collects every
// problem instead of stopping at the first. Verify is true exactly when Check
// returns no issues.
func (g *Graph) Check() []Issue {
	return g.check(nil)
}

func (g *Graph) check(path []int) []Issue {
	var issues []Issue

	if g.start == NoVertex {
		issues = append(issues, Issue{
			Path:    path,
			ID:      Unassigned,
			Missing: []string{"start"},
		})
	}

	for _, v := range g.vertices {
		missing := g.arena.Missing(v)
		if len(missing) == 0 {
			continue
		}
		vertex := g.arena.Vertex(v)
		issues = append(issues, Issue{
			Path:    path,
			ID:      vertex.ID(),
			Kind:    vertex.Kind(),
			Missing: missing,
		})
	}

	for i, sub := range g.subgraphs {
		subPath := append(append(make([]int, 0, len(path)+1), path...), i)
		issues = append(issues, sub.check(subPath)...)
	}

	return issues
}
