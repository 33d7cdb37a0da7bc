package ir

import (
	"errors"
	"reflect"
	"testing"
)

func TestCategoryOfKind(t *testing.T) {
	tests := map[VertexKind]VertexCategory{
		KindLiteral:               VertexData,
		KindSymbol:                VertexData,
		KindParameter:             VertexData,
		KindPrefixUnaryOperation:  VertexData,
		KindPostfixUnaryOperation: VertexData,
		KindBinaryOperation:       VertexData,
		KindPhi:                   VertexData,
		KindStart:                 VertexControl,
		KindPass:                  VertexControl,
		KindReturn:                VertexControl,
		KindBranch:                VertexControl,
		KindMerge:                 VertexControl,
		KindStore:                 VertexControl,
		KindAllocation:            VertexCompound,
		KindLoad:                  VertexCompound,
		KindCall:                  VertexCompound,
	}

	for kind, want := range tests {
		if got := CategoryOf(kind); got != want {
			t.Errorf("CategoryOf(%s) = %s, want %s", kind, got, want)
		}
	}
}

func TestVertexKindAndCategory(t *testing.T) {
	a := NewArena()
	start := a.NewStart(NoVertex)
	call := a.NewCall(NoVertex, nil, NoVertex, NoVertex)

	if a.Vertex(start).Kind() != KindStart || a.Vertex(start).Category() != VertexControl {
		t.Errorf("Unexpected start vertex %s/%s", a.Vertex(start).Kind(), a.Vertex(start).Category())
	}
	if a.Vertex(call).Kind() != KindCall || a.Vertex(call).Category() != VertexCompound {
		t.Errorf("Unexpected call vertex %s/%s", a.Vertex(call).Kind(), a.Vertex(call).Category())
	}
	if !ProducesValue(VertexCompound) || !SequencesControl(VertexCompound) {
		t.Error("Compound vertices both produce values and sequence control")
	}
	if a.Vertex(start).HasID() {
		t.Error("Detached vertex should not have an identity")
	}
}

func TestLiteralVerify(t *testing.T) {
	a := NewArena()
	for _, v := range []Value{Number(0), Text(""), Bool(false)} {
		if !a.Verify(a.NewLiteral(v)) {
			t.Errorf("Literal(%v) should verify", v)
		}
	}

	empty := a.NewLiteral(nil)
	if a.Verify(empty) {
		t.Error("Literal without value should not verify")
	}

	a.Vertex(empty).Shape().(*Literal).Value = Text("late")
	if !a.Verify(empty) {
		t.Error("Literal should verify once its value is set")
	}
}

func TestSymbolVerify(t *testing.T) {
	a := NewArena()
	start := a.NewStart(NoVertex)

	if !a.Verify(a.NewSymbol("x", start)) {
		t.Error("Symbol with name and scope should verify")
	}
	if a.Verify(a.NewSymbol("", start)) {
		t.Error("Symbol without name should not verify")
	}
	if a.Verify(a.NewSymbol("x", NoVertex)) {
		t.Error("Symbol without scope should not verify")
	}

	sym := a.NewSymbol("x", start)
	scope := a.Vertex(sym).Shape().(*Symbol).Scope()
	if a.Edge(scope).Category != EdgeAssociation {
		t.Errorf("Expected association scope edge, got %s", a.Edge(scope).Category)
	}
}

func TestParameterVerify(t *testing.T) {
	a := NewArena()
	if !a.Verify(a.NewParameter(0)) {
		t.Error("Parameter at position 0 should verify")
	}
	if a.Verify(a.NewParameter(NoPosition)) {
		t.Error("Parameter without position should not verify")
	}
}

func TestUnaryVerify(t *testing.T) {
	a := NewArena()
	x := a.NewParameter(0)

	tests := []struct {
		name string
		v    VertexRef
		want bool
	}{
		{"prefix complete", a.NewPrefixUnary("-", x), true},
		{"prefix no operator", a.NewPrefixUnary("", x), false},
		{"prefix no operand", a.NewPrefixUnary("!", NoVertex), false},
		{"postfix complete", a.NewPostfixUnary("++", x), true},
		{"postfix no operand", a.NewPostfixUnary("++", NoVertex), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Verify(tt.v); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBinaryVerify(t *testing.T) {
	a := NewArena()
	l := a.NewLiteral(Number(1))
	r := a.NewLiteral(Number(2))

	tests := []struct {
		name  string
		op    Operator
		left  VertexRef
		right VertexRef
		want  bool
	}{
		{"complete", "+", l, r, true},
		{"no operator", "", l, r, false},
		{"no left", "+", NoVertex, r, false},
		{"no right", "+", l, NoVertex, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Verify(a.NewBinary(tt.op, tt.left, tt.right)); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhiVerify(t *testing.T) {
	a := NewArena()
	merge := a.NewMerge(NoVertex)
	left := a.NewPass(merge)
	right := a.NewPass(merge)
	one := a.NewLiteral(Number(1))
	two := a.NewLiteral(Number(2))

	phi := a.NewPhi(merge)
	if a.Verify(phi) {
		t.Error("Phi without operands should not verify")
	}

	if _, err := a.AddPhiOperand(phi, one, left); err != nil {
		t.Fatalf("AddPhiOperand() error = %v", err)
	}
	if a.Verify(phi) {
		t.Error("Phi with a single operand should not verify")
	}

	if _, err := a.AddPhiOperand(phi, two, right); err != nil {
		t.Fatalf("AddPhiOperand() error = %v", err)
	}
	if !a.Verify(phi) {
		t.Error("Phi with merge and two operands should verify")
	}

	a.SetTarget(a.Vertex(phi).Shape().(*Phi).Merge(), NoVertex)
	if a.Verify(phi) {
		t.Error("Phi without merge should not verify")
	}
}

func TestPhiSingleOperandNeverVerifies(t *testing.T) {
	a := NewArena()
	merge := a.NewMerge(NoVertex)
	phi := a.NewPhi(merge)
	a.AddPhiOperand(phi, a.NewLiteral(Number(1)), a.NewPass(merge))

	if a.Verify(phi) {
		t.Error("Phi with one operand should not verify even with a merge")
	}
	if got := a.Missing(phi); !reflect.DeepEqual(got, []string{"operands"}) {
		t.Errorf("Expected [operands] missing, got %v", got)
	}
}

func TestAddPhiOperandRejectsOtherKinds(t *testing.T) {
	a := NewArena()
	pass := a.NewPass(NoVertex)
	if _, err := a.AddPhiOperand(pass, a.NewLiteral(Number(1)), pass); !errors.Is(err, ErrNotPhi) {
		t.Errorf("Expected ErrNotPhi, got %v", err)
	}
}

func TestSequencedVerify(t *testing.T) {
	a := NewArena()
	ret := a.NewReturn(NoVertex)

	for _, ctor := range []func(VertexRef) VertexRef{a.NewStart, a.NewPass, a.NewMerge} {
		v := ctor(NoVertex)
		if a.Verify(v) {
			t.Errorf("%s without next should not verify", a.Vertex(v).Kind())
		}
		if err := a.Link(v, ret); err != nil {
			t.Fatalf("Link() error = %v", err)
		}
		if !a.Verify(v) {
			t.Errorf("%s with next should verify", a.Vertex(v).Kind())
		}
	}
}

func TestReturnAlwaysVerifies(t *testing.T) {
	a := NewArena()
	if !a.Verify(a.NewReturn(NoVertex)) {
		t.Error("Void return should verify")
	}
	if !a.Verify(a.NewReturn(a.NewLiteral(Number(1)))) {
		t.Error("Return with value should verify")
	}
}

func TestBranchVerify(t *testing.T) {
	a := NewArena()
	cond := a.NewLiteral(Bool(true))
	yes := a.NewReturn(NoVertex)
	no := a.NewReturn(NoVertex)

	tests := []struct {
		name          string
		cond, yes, no VertexRef
		want          bool
	}{
		{"complete", cond, yes, no, true},
		{"no condition", NoVertex, yes, no, false},
		{"no true", cond, NoVertex, no, false},
		{"no false", cond, yes, NoVertex, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Verify(a.NewBranch(tt.cond, tt.yes, tt.no)); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}

	branch := a.NewBranch(cond, yes, no)
	if err := a.Link(branch, yes); !errors.Is(err, ErrNoNextEdge) {
		t.Errorf("Expected ErrNoNextEdge, got %v", err)
	}
}

func TestAllocationVerify(t *testing.T) {
	a := NewArena()
	start := a.NewStart(NoVertex)
	ctor := a.NewSymbol("Point", start)
	next := a.NewReturn(NoVertex)

	if !a.Verify(a.NewAllocation("Point", ctor, next)) {
		t.Error("Complete allocation should verify")
	}
	if got := a.Missing(a.NewAllocation("", ctor, next)); !reflect.DeepEqual(got, []string{"objectType"}) {
		t.Errorf("Expected [objectType], got %v", got)
	}
	if got := a.Missing(a.NewAllocation("Point", NoVertex, NoVertex)); !reflect.DeepEqual(got, []string{"constructor", "next"}) {
		t.Errorf("Expected [constructor next], got %v", got)
	}
}

func TestStoreAndLoadVerify(t *testing.T) {
	a := NewArena()
	obj := a.NewParameter(0)
	prop := a.NewLiteral(Text("x"))
	val := a.NewLiteral(Number(3))
	next := a.NewReturn(NoVertex)

	if !a.Verify(a.NewStore(obj, prop, val, next)) {
		t.Error("Complete store should verify")
	}
	if a.Verify(a.NewStore(obj, prop, NoVertex, next)) {
		t.Error("Store without value should not verify")
	}
	if a.Verify(a.NewStore(obj, prop, val, NoVertex)) {
		t.Error("Store without next should not verify")
	}

	if !a.Verify(a.NewLoad(obj, prop, next)) {
		t.Error("Complete load should verify")
	}
	if a.Verify(a.NewLoad(NoVertex, prop, next)) {
		t.Error("Load without object should not verify")
	}
}

func TestCallVerify(t *testing.T) {
	a := NewArena()
	start := a.NewStart(NoVertex)
	callee := a.NewSymbol("print", start)
	next := a.NewReturn(NoVertex)

	call := a.NewCall(callee, nil, NoVertex, next)
	if !a.Verify(call) {
		t.Error("Call without arguments or caller should verify")
	}

	arg, err := a.AddArgument(call, a.NewLiteral(Text("hi")))
	if err != nil {
		t.Fatalf("AddArgument() error = %v", err)
	}
	if a.Edge(arg).Label != "arg0" {
		t.Errorf("Expected label arg0, got %s", a.Edge(arg).Label)
	}

	if a.Verify(a.NewCall(NoVertex, nil, NoVertex, next)) {
		t.Error("Call without callee should not verify")
	}
	if a.Verify(a.NewCall(callee, nil, NoVertex, NoVertex)) {
		t.Error("Call without next should not verify")
	}
	if _, err := a.AddArgument(next, callee); !errors.Is(err, ErrNotCall) {
		t.Errorf("Expected ErrNotCall, got %v", err)
	}
}

func TestOutgoingShape(t *testing.T) {
	a := NewArena()
	callee := a.NewLiteral(Text("f"))
	x := a.NewLiteral(Number(1))
	y := a.NewLiteral(Number(2))
	call := a.NewCall(callee, []VertexRef{x, y}, NoVertex, NoVertex)

	var labels []string
	for _, e := range a.Outgoing(call) {
		labels = append(labels, a.Edge(e).Label)
	}
	want := []string{"callee", "arg0", "arg1", "caller", "next"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("Expected %v, got %v", want, labels)
	}

	if len(a.Outgoing(x)) != 0 {
		t.Errorf("Literal should own no edges, got %v", a.Outgoing(x))
	}
}

func TestLabels(t *testing.T) {
	a := NewArena()
	start := a.NewStart(NoVertex)

	tests := []struct {
		v    VertexRef
		want string
	}{
		{a.NewLiteral(Number(1.5)), "1.5"},
		{a.NewLiteral(Text("hi")), `"hi"`},
		{a.NewLiteral(Bool(true)), "true"},
		{a.NewLiteral(nil), "Literal"},
		{a.NewSymbol("x", start), "x"},
		{a.NewParameter(2), "$2"},
		{a.NewBinary("*", NoVertex, NoVertex), "*"},
		{a.NewPhi(NoVertex), "φ"},
		{a.NewAllocation("Point", NoVertex, NoVertex), "new Point"},
		{start, "Start"},
	}

	for _, tt := range tests {
		if got := a.Vertex(tt.v).Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}
