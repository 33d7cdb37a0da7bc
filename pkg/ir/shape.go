package ir

import (
	"slices"
	"strconv"
)

// Shape is the kind-specific part of a vertex. The set of shapes is closed:
// only the types in this file implement it.
type Shape interface {
	isShape()
}

// Sequence is the field group shared by every vertex with a single "next"
// control successor.
type Sequence struct {
	next EdgeRef
}

// Next returns the "next" control edge
func (s *Sequence) Next() EdgeRef { return s.next }

// Literal is an immediate number, string or boolean
type Literal struct {
	Value Value
}

// Symbol names a binding declared in the scope anchored by a Start vertex
type Symbol struct {
	Name  string
	scope EdgeRef
}

// Scope returns the association edge to the declaring Start vertex
func (s *Symbol) Scope() EdgeRef { return s.scope }

// Parameter is a routine parameter identified by its ordinal position
type Parameter struct {
	Position int
}

type unary struct {
	Operator Operator
	operand  EdgeRef
}

// Operand returns the data edge to the operand
func (u *unary) Operand() EdgeRef { return u.operand }

// PrefixUnary is an operation like -x or !x
type PrefixUnary struct {
	unary
}

// PostfixUnary is an operation like x++
type PostfixUnary struct {
	unary
}

// Binary is an operation with a left and a right operand
type Binary struct {
	Operator Operator
	left     EdgeRef
	right    EdgeRef
}

func (b *Binary) Left() EdgeRef  { return b.left }
func (b *Binary) Right() EdgeRef { return b.right }

// Phi selects among values according to the control path that reached its
// merge. Each operand edge records the branch it arrives from.
type Phi struct {
	merge    EdgeRef
	operands []EdgeRef
}

// Merge returns the association edge to the Merge vertex
func (p *Phi) Merge() EdgeRef { return p.merge }

// Operands returns the operand edges in insertion order
func (p *Phi) Operands() []EdgeRef { return slices.Clone(p.operands) }

// Start anchors a routine and is the scope referenced by its symbols
type Start struct {
	Sequence
}

// Pass is a no-op sequencing step
type Pass struct {
	Sequence
}

// Return ends a routine, optionally with a value
type Return struct {
	value EdgeRef
}

// Value returns the data edge to the returned value; unset means void
func (r *Return) Value() EdgeRef { return r.value }

// Branch transfers control to one of two successors depending on a condition
type Branch struct {
	condition EdgeRef
	trueNext  EdgeRef
	falseNext EdgeRef
}

func (b *Branch) Condition() EdgeRef { return b.condition }
func (b *Branch) TrueNext() EdgeRef  { return b.trueNext }
func (b *Branch) FalseNext() EdgeRef { return b.falseNext }

// Merge joins control paths from earlier branches
type Merge struct {
	Sequence
}

// Allocation creates an object of a named type through a constructor symbol
type Allocation struct {
	Sequence
	ObjectType  string
	constructor EdgeRef
}

// Constructor returns the association edge to the constructor symbol
func (al *Allocation) Constructor() EdgeRef { return al.constructor }

// Store writes value into object.property
type Store struct {
	Sequence
	object   EdgeRef
	property EdgeRef
	value    EdgeRef
}

func (s *Store) Object() EdgeRef   { return s.object }
func (s *Store) Property() EdgeRef { return s.property }
func (s *Store) Value() EdgeRef    { return s.value }

// Load reads object.property
type Load struct {
	Sequence
	object   EdgeRef
	property EdgeRef
}

func (l *Load) Object() EdgeRef   { return l.object }
func (l *Load) Property() EdgeRef { return l.property }

// Call invokes a callee with ordered arguments, optionally on a caller object
type Call struct {
	Sequence
	callee EdgeRef
	args   []EdgeRef
	caller EdgeRef
}

func (c *Call) Callee() EdgeRef       { return c.callee }
func (c *Call) Arguments() []EdgeRef  { return slices.Clone(c.args) }
func (c *Call) CallerObject() EdgeRef { return c.caller }

func (*Literal) isShape()      {}
func (*Symbol) isShape()       {}
func (*Parameter) isShape()    {}
func (*PrefixUnary) isShape()  {}
func (*PostfixUnary) isShape() {}
func (*Binary) isShape()       {}
func (*Phi) isShape()          {}
func (*Start) isShape()        {}
func (*Pass) isShape()         {}
func (*Return) isShape()       {}
func (*Branch) isShape()       {}
func (*Merge) isShape()        {}
func (*Allocation) isShape()   {}
func (*Store) isShape()        {}
func (*Load) isShape()         {}
func (*Call) isShape()         {}

func kindOf(s Shape) VertexKind {
	switch s.(type) {
	case *Literal:
		return KindLiteral
	case *Symbol:
		return KindSymbol
	case *Parameter:
		return KindParameter
	case *PrefixUnary:
		return KindPrefixUnaryOperation
	case *PostfixUnary:
		return KindPostfixUnaryOperation
	case *Binary:
		return KindBinaryOperation
	case *Phi:
		return KindPhi
	case *Start:
		return KindStart
	case *Pass:
		return KindPass
	case *Return:
		return KindReturn
	case *Branch:
		return KindBranch
	case *Merge:
		return KindMerge
	case *Allocation:
		return KindAllocation
	case *Store:
		return KindStore
	case *Load:
		return KindLoad
	case *Call:
		return KindCall
	}
	panic("ir: unknown shape")
}

func labelOf(s Shape) string {
	switch s := s.(type) {
	case *Literal:
		if s.Value != nil {
			return s.Value.String()
		}
	case *Symbol:
		if s.Name != "" {
			return s.Name
		}
	case *Parameter:
		if s.Position != NoPosition {
			return "$" + strconv.Itoa(s.Position)
		}
	case *PrefixUnary:
		if s.Operator != "" {
			return string(s.Operator)
		}
	case *PostfixUnary:
		if s.Operator != "" {
			return string(s.Operator)
		}
	case *Binary:
		if s.Operator != "" {
			return string(s.Operator)
		}
	case *Phi:
		return "φ"
	case *Allocation:
		if s.ObjectType != "" {
			return "new " + s.ObjectType
		}
	}
	return string(kindOf(s))
}

func outgoingOf(s Shape) []EdgeRef {
	switch s := s.(type) {
	case *Literal, *Parameter:
		return nil
	case *Symbol:
		return []EdgeRef{s.scope}
	case *PrefixUnary:
		return []EdgeRef{s.operand}
	case *PostfixUnary:
		return []EdgeRef{s.operand}
	case *Binary:
		return []EdgeRef{s.left, s.right}
	case *Phi:
		return append([]EdgeRef{s.merge}, s.operands...)
	case *Start:
		return []EdgeRef{s.next}
	case *Pass:
		return []EdgeRef{s.next}
	case *Return:
		return []EdgeRef{s.value}
	case *Branch:
		return []EdgeRef{s.condition, s.trueNext, s.falseNext}
	case *Merge:
		return []EdgeRef{s.next}
	case *Allocation:
		return []EdgeRef{s.constructor, s.next}
	case *Store:
		return []EdgeRef{s.object, s.property, s.value, s.next}
	case *Load:
		return []EdgeRef{s.object, s.property, s.next}
	case *Call:
		out := make([]EdgeRef, 0, len(s.args)+3)
		out = append(out, s.callee)
		out = append(out, s.args...)
		return append(out, s.caller, s.next)
	}
	panic("ir: unknown shape")
}

// missingOf lists the slots that keep a shape from being complete. A vertex
// verifies exactly when nothing is missing. Only the local shape is inspected.
func (a *Arena) missingOf(s Shape) []string {
	var missing []string
	need := func(ok bool, slot string) {
		if !ok {
			missing = append(missing, slot)
		}
	}

	switch s := s.(type) {
	case *Literal:
		need(s.Value != nil, "value")
	case *Symbol:
		need(s.Name != "", "name")
		need(a.HasTarget(s.scope), "scope")
	case *Parameter:
		need(s.Position != NoPosition, "position")
	case *PrefixUnary:
		need(s.Operator != "", "operator")
		need(a.HasTarget(s.operand), "operand")
	case *PostfixUnary:
		need(s.Operator != "", "operator")
		need(a.HasTarget(s.operand), "operand")
	case *Binary:
		need(s.Operator != "", "operator")
		need(a.HasTarget(s.left), "left")
		need(a.HasTarget(s.right), "right")
	case *Phi:
		need(a.HasTarget(s.merge), "merge")
		need(len(s.operands) > 1, "operands")
	case *Start:
		need(a.HasTarget(s.next), "next")
	case *Pass:
		need(a.HasTarget(s.next), "next")
	case *Return:
	case *Branch:
		need(a.HasTarget(s.condition), "condition")
		need(a.HasTarget(s.trueNext), "true")
		need(a.HasTarget(s.falseNext), "false")
	case *Merge:
		need(a.HasTarget(s.next), "next")
	case *Allocation:
		need(s.ObjectType != "", "objectType")
		need(a.HasTarget(s.constructor), "constructor")
		need(a.HasTarget(s.next), "next")
	case *Store:
		need(a.HasTarget(s.object), "object")
		need(a.HasTarget(s.property), "property")
		need(a.HasTarget(s.value), "value")
		need(a.HasTarget(s.next), "next")
	case *Load:
		need(a.HasTarget(s.object), "object")
		need(a.HasTarget(s.property), "property")
		need(a.HasTarget(s.next), "next")
	case *Call:
		need(a.HasTarget(s.callee), "callee")
		need(a.HasTarget(s.next), "next")
	default:
		panic("ir: unknown shape")
	}
	return missing
}

// Missing returns the names of the slots v still needs before it verifies
func (a *Arena) Missing(v VertexRef) []string {
	return a.missingOf(a.Vertex(v).shape)
}

// Verify reports whether v's own shape is structurally complete. It does not
// look at the vertices v points to.
func (a *Arena) Verify(v VertexRef) bool {
	return len(a.Missing(v)) == 0
}

// Outgoing returns the edges owned by v, in slot order
func (a *Arena) Outgoing(v VertexRef) []EdgeRef {
	return a.Vertex(v).Outgoing()
}
