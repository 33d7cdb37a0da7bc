package ir

import "strconv"

// VertexKind identifies the shape of a vertex
type VertexKind string

const (
	KindLiteral               VertexKind = "Literal"
	KindSymbol                VertexKind = "Symbol"
	KindParameter             VertexKind = "Parameter"
	KindPrefixUnaryOperation  VertexKind = "PrefixUnaryOperation"
	KindPostfixUnaryOperation VertexKind = "PostfixUnaryOperation"
	KindBinaryOperation       VertexKind = "BinaryOperation"
	KindPhi                   VertexKind = "Phi"
	KindStart                 VertexKind = "Start"
	KindPass                  VertexKind = "Pass"
	KindReturn                VertexKind = "Return"
	KindBranch                VertexKind = "Branch"
	KindMerge                 VertexKind = "Merge"
	KindAllocation            VertexKind = "Allocation"
	KindStore                 VertexKind = "Store"
	KindLoad                  VertexKind = "Load"
	KindCall                  VertexKind = "Call"
)

// VertexCategory says whether a vertex produces a value, sequences control, or both
type VertexCategory string

const (
	VertexData     VertexCategory = "Data"
	VertexControl  VertexCategory = "Control"
	VertexCompound VertexCategory = "Compound" // produces a value and takes part in control sequencing
)

// EdgeCategory represents the type of relationship an edge models
type EdgeCategory string

const (
	EdgeData        EdgeCategory = "Data"        // value flow
	EdgeControl     EdgeCategory = "Control"     // sequencing flow
	EdgeAssociation EdgeCategory = "Association" // structural reference, not a flow
)

// Operator is the textual operator of a unary or binary operation, e.g. "+" or "!"
type Operator string

// Value is the immediate carried by a Literal: a Number, Text or Bool.
type Value interface {
	String() string
	isValue()
}

// Number is a numeric literal value
type Number float64

// Text is a string literal value
type Text string

// Bool is a boolean literal value
type Bool bool

func (Number) isValue() {}
func (Text) isValue()   {}
func (Bool) isValue()   {}

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (s Text) String() string   { return strconv.Quote(string(s)) }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }
