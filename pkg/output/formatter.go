package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ritzau/sea-ir/pkg/cycles"
	"github.com/ritzau/sea-ir/pkg/ir"
)

// Result is the outcome of verifying one fragment
type Result struct {
	Name        string
	Description string
	Expected    bool
	Verified    bool
	Issues      []ir.Issue
	Loops       []cycles.Loop // control loops
	DataCycles  []cycles.Loop
	Unreachable []ir.VertexRef
	Err         error // the fragment could not be built
}

// AsExpected returns true if the fragment built and verified as predicted
func (r Result) AsExpected() bool {
	return r.Err == nil && r.Verified == r.Expected
}

// PrintReport prints a colored verification report
func PrintReport(w io.Writer, results []Result) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	bold.Fprintln(w, "Sea-of-nodes IR - Verification Report")
	bold.Fprintln(w, "=====================================")

	matched := 0
	for _, r := range results {
		fmt.Fprintf(w, "%s: ", r.Name)
		switch {
		case r.Err != nil:
			red.Fprintf(w, "BUILD FAILED (%v)\n", r.Err)
			continue
		case r.Verified:
			green.Fprint(w, "verified")
		default:
			yellow.Fprint(w, "incomplete")
		}

		if r.AsExpected() {
			matched++
			fmt.Fprintln(w)
		} else {
			red.Fprintf(w, " (expected %s)\n", status(r.Expected))
		}

		cyan.Fprintf(w, "    %s\n", r.Description)
		for _, issue := range r.Issues {
			yellow.Fprintf(w, "    %s\n", issue)
		}
		for _, loop := range r.Loops {
			fmt.Fprintf(w, "    control loop: %s\n", refList(loop.Vertices))
		}
		for _, loop := range r.DataCycles {
			fmt.Fprintf(w, "    data cycle: %s\n", refList(loop.Vertices))
		}
		if len(r.Unreachable) > 0 {
			yellow.Fprintf(w, "    unreachable: %s\n", refList(r.Unreachable))
		}
	}
	fmt.Fprintln(w)

	summary := green
	if matched < len(results) {
		summary = red
	}
	summary.Fprintf(w, "Summary: %d/%d fragments as expected\n", matched, len(results))
}

// PrintGraph prints every vertex of g with its outgoing edges, then the
// sub-graphs indented below it
func PrintGraph(w io.Writer, g *ir.Graph) {
	printGraph(w, g, "")
}

func printGraph(w io.Writer, g *ir.Graph, indent string) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	a := g.Arena()

	for _, ref := range g.Vertices() {
		v := a.Vertex(ref)
		marker := " "
		if start, ok := g.Start(); ok && start == ref {
			marker = ">"
		}
		fmt.Fprintf(w, "%s%s", indent, marker)
		bold.Fprintf(w, "#%-3d %-22s", v.ID(), v.Kind())
		fmt.Fprintf(w, " %-10s", v.Label())

		var edges []string
		for _, e := range v.Outgoing() {
			edges = append(edges, edgeString(a, a.Edge(e)))
		}
		fmt.Fprint(w, strings.Join(edges, "  "))
		faint.Fprintf(w, "  (in %d)\n", len(a.Incoming(ref)))
	}

	for i, sub := range g.Subgraphs() {
		fmt.Fprintf(w, "%s  subgraph %d:\n", indent, i)
		printGraph(w, sub, indent+"    ")
	}
}

func edgeString(a *ir.Arena, e ir.Edge) string {
	target := "_"
	if e.HasTarget() {
		target = vertexName(a.Vertex(e.Target))
	}
	if e.Phi {
		return fmt.Sprintf("[%s]%s", e.Label, target)
	}
	return fmt.Sprintf("%s->%s", e.Label, target)
}

func vertexName(v *ir.Vertex) string {
	if v.HasID() {
		return fmt.Sprintf("#%d", v.ID())
	}
	return fmt.Sprintf("&%d", v.Ref())
}

func refList(refs []ir.VertexRef) string {
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		parts = append(parts, fmt.Sprintf("&%d", ref))
	}
	return strings.Join(parts, " ")
}

func status(verified bool) string {
	if verified {
		return "verified"
	}
	return "incomplete"
}
