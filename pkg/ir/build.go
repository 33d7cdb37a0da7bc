package ir

import "fmt"

// Constructors create a detached vertex together with its slot edges. Any
// target may be NoVertex and wired later with SetTarget or Link.

// NewLiteral creates a Literal; value may be nil
func (a *Arena) NewLiteral(value Value) VertexRef {
	return a.newVertex(&Literal{Value: value})
}

// NewSymbol creates a Symbol declared in the scope anchored by start
func (a *Arena) NewSymbol(name string, start VertexRef) VertexRef {
	s := &Symbol{}
	ref := a.newVertex(s)
	s.Name = name
	s.scope = a.newEdge(ref, start, "scope", EdgeAssociation)
	return ref
}

// NewParameter creates a Parameter at an ordinal position (NoPosition if unknown)
func (a *Arena) NewParameter(position int) VertexRef {
	return a.newVertex(&Parameter{Position: position})
}

// NewPrefixUnary creates a prefix unary operation
func (a *Arena) NewPrefixUnary(op Operator, operand VertexRef) VertexRef {
	u := &PrefixUnary{}
	ref := a.newVertex(u)
	u.Operator = op
	u.operand = a.newEdge(ref, operand, "operand", EdgeData)
	return ref
}

// NewPostfixUnary creates a postfix unary operation
func (a *Arena) NewPostfixUnary(op Operator, operand VertexRef) VertexRef {
	u := &PostfixUnary{}
	ref := a.newVertex(u)
	u.Operator = op
	u.operand = a.newEdge(ref, operand, "operand", EdgeData)
	return ref
}

// NewBinary creates a binary operation
func (a *Arena) NewBinary(op Operator, left, right VertexRef) VertexRef {
	b := &Binary{Operator: op}
	ref := a.newVertex(b)
	b.left = a.newEdge(ref, left, "left", EdgeData)
	b.right = a.newEdge(ref, right, "right", EdgeData)
	return ref
}

// NewPhi creates a Phi associated with merge and no operands yet
func (a *Arena) NewPhi(merge VertexRef) VertexRef {
	p := &Phi{}
	ref := a.newVertex(p)
	p.merge = a.newEdge(ref, merge, "merge", EdgeAssociation)
	return ref
}

// AddPhiOperand appends an operand edge to value that arrives through branch.
// The branch is fixed for the life of the edge and provides its label.
func (a *Arena) AddPhiOperand(phi, value, branch VertexRef) (EdgeRef, error) {
	p, ok := a.Vertex(phi).shape.(*Phi)
	if !ok {
		return NoEdge, fmt.Errorf("add operand to %s: %w", a.Vertex(phi), ErrNotPhi)
	}
	e := a.newPhiEdge(phi, value, branch)
	p.operands = append(p.operands, e)
	return e, nil
}

// NewStart creates a Start vertex
func (a *Arena) NewStart(next VertexRef) VertexRef {
	s := &Start{}
	ref := a.newVertex(s)
	s.next = a.newEdge(ref, next, "next", EdgeControl)
	return ref
}

// NewPass creates a Pass vertex
func (a *Arena) NewPass(next VertexRef) VertexRef {
	p := &Pass{}
	ref := a.newVertex(p)
	p.next = a.newEdge(ref, next, "next", EdgeControl)
	return ref
}

// NewReturn creates a Return; value is NoVertex for a void return
func (a *Arena) NewReturn(value VertexRef) VertexRef {
	r := &Return{}
	ref := a.newVertex(r)
	r.value = a.newEdge(ref, value, "value", EdgeData)
	return ref
}

// NewBranch creates a Branch
func (a *Arena) NewBranch(condition, trueNext, falseNext VertexRef) VertexRef {
	b := &Branch{}
	ref := a.newVertex(b)
	b.condition = a.newEdge(ref, condition, "condition", EdgeData)
	b.trueNext = a.newEdge(ref, trueNext, "true", EdgeControl)
	b.falseNext = a.newEdge(ref, falseNext, "false", EdgeControl)
	return ref
}

// NewMerge creates a Merge vertex
func (a *Arena) NewMerge(next VertexRef) VertexRef {
	m := &Merge{}
	ref := a.newVertex(m)
	m.next = a.newEdge(ref, next, "next", EdgeControl)
	return ref
}

// NewAllocation creates an Allocation of objectType through a constructor symbol
func (a *Arena) NewAllocation(objectType string, constructor, next VertexRef) VertexRef {
	al := &Allocation{ObjectType: objectType}
	ref := a.newVertex(al)
	al.constructor = a.newEdge(ref, constructor, "constructor", EdgeAssociation)
	al.next = a.newEdge(ref, next, "next", EdgeControl)
	return ref
}

// NewStore creates a Store of value into object.property
func (a *Arena) NewStore(object, property, value, next VertexRef) VertexRef {
	s := &Store{}
	ref := a.newVertex(s)
	s.object = a.newEdge(ref, object, "object", EdgeData)
	s.property = a.newEdge(ref, property, "property", EdgeData)
	s.value = a.newEdge(ref, value, "value", EdgeData)
	s.next = a.newEdge(ref, next, "next", EdgeControl)
	return ref
}

// NewLoad creates a Load of object.property
func (a *Arena) NewLoad(object, property, next VertexRef) VertexRef {
	l := &Load{}
	ref := a.newVertex(l)
	l.object = a.newEdge(ref, object, "object", EdgeData)
	l.property = a.newEdge(ref, property, "property", EdgeData)
	l.next = a.newEdge(ref, next, "next", EdgeControl)
	return ref
}

// NewCall creates a Call. args may be empty; caller is NoVertex for a plain
// function call.
func (a *Arena) NewCall(callee VertexRef, args []VertexRef, caller, next VertexRef) VertexRef {
	c := &Call{}
	ref := a.newVertex(c)
	c.callee = a.newEdge(ref, callee, "callee", EdgeData)
	c.args = make([]EdgeRef, 0, len(args))
	for _, arg := range args {
		c.args = append(c.args, a.newEdge(ref, arg, argLabel(len(c.args)), EdgeData))
	}
	c.caller = a.newEdge(ref, caller, "caller", EdgeData)
	c.next = a.newEdge(ref, next, "next", EdgeControl)
	return ref
}

// AddArgument appends an argument edge to a Call
func (a *Arena) AddArgument(call, arg VertexRef) (EdgeRef, error) {
	c, ok := a.Vertex(call).shape.(*Call)
	if !ok {
		return NoEdge, fmt.Errorf("add argument to %s: %w", a.Vertex(call), ErrNotCall)
	}
	e := a.newEdge(call, arg, argLabel(len(c.args)), EdgeData)
	c.args = append(c.args, e)
	return e, nil
}

func argLabel(i int) string {
	return fmt.Sprintf("arg%d", i)
}

// NextEdge returns the "next" control edge of v, if its kind has one
func (a *Arena) NextEdge(v VertexRef) (EdgeRef, bool) {
	switch s := a.Vertex(v).shape.(type) {
	case *Start:
		return s.next, true
	case *Pass:
		return s.next, true
	case *Merge:
		return s.next, true
	case *Allocation:
		return s.next, true
	case *Store:
		return s.next, true
	case *Load:
		return s.next, true
	case *Call:
		return s.next, true
	}
	return NoEdge, false
}

// Link points the "next" edge of from at to
func (a *Arena) Link(from, to VertexRef) error {
	e, ok := a.NextEdge(from)
	if !ok {
		return fmt.Errorf("link %s: %w", a.Vertex(from), ErrNoNextEdge)
	}
	a.SetTarget(e, to)
	return nil
}
