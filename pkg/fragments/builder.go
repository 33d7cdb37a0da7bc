package fragments

import "github.com/ritzau/sea-ir/pkg/ir"

// builder wires a graph and remembers the first error so that fragment
// definitions read top to bottom.
type builder struct {
	a   *ir.Arena
	g   *ir.Graph
	err error
}

func newBuilder() *builder {
	a := ir.NewArena()
	return &builder{a: a, g: ir.NewGraph(a)}
}

// sub creates a sub-graph sharing the arena
func (b *builder) sub() *builder {
	child := &builder{a: b.a, g: ir.NewGraph(b.a)}
	b.g.AddSubgraph(child.g)
	return child
}

func (b *builder) fail(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

func (b *builder) start(next ir.VertexRef) ir.VertexRef {
	s := b.a.NewStart(next)
	b.fail(b.g.SetStartVertex(s))
	return s
}

func (b *builder) add(refs ...ir.VertexRef) {
	for _, ref := range refs {
		b.g.AddVertex(ref)
	}
}

func (b *builder) link(from, to ir.VertexRef) {
	b.fail(b.a.Link(from, to))
}

func (b *builder) operand(phi, value, branch ir.VertexRef) {
	_, err := b.a.AddPhiOperand(phi, value, branch)
	b.fail(err)
}

func (b *builder) done() (*ir.Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.g, nil
}
