package ir

import "fmt"

// Unassigned is the identity of a vertex that no Graph has inserted yet
const Unassigned = -1

// NoPosition marks a Parameter whose ordinal position is not known yet
const NoPosition = -1

// Vertex is a node of the sea-of-nodes graph. Its shape decides the kind,
// the category and which outgoing edges it owns.
type Vertex struct {
	ref   VertexRef
	id    int
	shape Shape
}

// Ref returns the arena handle of the vertex
func (v *Vertex) Ref() VertexRef {
	return v.ref
}

// ID returns the graph identity, Unassigned before insertion into a Graph
func (v *Vertex) ID() int {
	return v.id
}

// HasID returns true if a Graph has assigned an identity
func (v *Vertex) HasID() bool {
	return v.id != Unassigned
}

// Shape returns the kind-specific state. Callers may type-assert it to the
// concrete shape to edit scalar fields such as a literal's value.
func (v *Vertex) Shape() Shape {
	return v.shape
}

// Kind returns the vertex kind
func (v *Vertex) Kind() VertexKind {
	return kindOf(v.shape)
}

// Category returns the category implied by the kind
func (v *Vertex) Category() VertexCategory {
	return CategoryOf(v.Kind())
}

// Label returns a short display label derived from the kind and current state
func (v *Vertex) Label() string {
	return labelOf(v.shape)
}

// Outgoing returns the edges the vertex owns, in slot order
func (v *Vertex) Outgoing() []EdgeRef {
	return outgoingOf(v.shape)
}

func (v *Vertex) String() string {
	if v.HasID() {
		return fmt.Sprintf("#%d %s", v.id, v.Label())
	}
	return fmt.Sprintf("&%d %s", v.ref, v.Label())
}

// CategoryOf returns the vertex category of a kind
func CategoryOf(kind VertexKind) VertexCategory {
	switch kind {
	case KindLiteral, KindSymbol, KindParameter,
		KindPrefixUnaryOperation, KindPostfixUnaryOperation, KindBinaryOperation, KindPhi:
		return VertexData
	case KindAllocation, KindLoad, KindCall:
		return VertexCompound
	default:
		return VertexControl
	}
}

// ProducesValue returns true for Data and Compound vertices
func ProducesValue(c VertexCategory) bool {
	return c == VertexData || c == VertexCompound
}

// SequencesControl returns true for Control and Compound vertices
func SequencesControl(c VertexCategory) bool {
	return c == VertexControl || c == VertexCompound
}
