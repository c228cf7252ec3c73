package ast

import (
	"fmt"
	"strings"
)

// UnreachableVariantError reports an enumerant with no table entry. It is
// raised as a panic: it can only happen when a value is forged outside the
// declared constants.
type UnreachableVariantError struct {
	Table string
	Value int

	// Kind names the variant when it is a node type rather than an
	// enumerant.
	Kind string
}

func (e *UnreachableVariantError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("unreachable %s variant: %s", e.Table, e.Kind)
	}
	return fmt.Sprintf("unreachable %s variant: %d", e.Table, e.Value)
}

func lookup[T ~int](table string, symbols []string, v T) string {
	if v < 0 || int(v) >= len(symbols) || symbols[v] == "" {
		panic(&UnreachableVariantError{Table: table, Value: int(v)})
	}
	return symbols[v]
}

func parse[T ~int](symbols []string, s string) (T, bool) {
	for i, sym := range symbols {
		if sym == s {
			return T(i), true
		}
	}
	return 0, false
}

// AssignOp is an assignment operator.
type AssignOp int

const (
	Assign AssignOp = iota
	AssignAnd
	AssignOr
	AssignXor
	AssignPlus
	AssignMinus
	AssignRem
	AssignSlash
	AssignStar
	AssignLShift
	AssignRSignedShift
	AssignRUnsignedShift

	assignOpCount
)

var assignSymbols = [assignOpCount]string{
	Assign:               "=",
	AssignAnd:            "&=",
	AssignOr:             "|=",
	AssignXor:            "^=",
	AssignPlus:           "+=",
	AssignMinus:          "-=",
	AssignRem:            "%=",
	AssignSlash:          "/=",
	AssignStar:           "*=",
	AssignLShift:         "<<=",
	AssignRSignedShift:   ">>=",
	AssignRUnsignedShift: ">>>=",
}

// AssignOps lists every assignment operator.
func AssignOps() []AssignOp {
	ops := make([]AssignOp, assignOpCount)
	for i := range ops {
		ops[i] = AssignOp(i)
	}
	return ops
}

func (op AssignOp) Symbol() string { return lookup("assignment operator", assignSymbols[:], op) }
func (op AssignOp) String() string { return op.Symbol() }

// ParseAssignOp maps an operator token back to its AssignOp.
func ParseAssignOp(s string) (AssignOp, bool) { return parse[AssignOp](assignSymbols[:], s) }

// BinaryOp is a binary operator.
type BinaryOp int

const (
	Or BinaryOp = iota
	And
	BinOr
	BinAnd
	Xor
	Equals
	NotEquals
	Less
	Greater
	LessEquals
	GreaterEquals
	LShift
	RSignedShift
	RUnsignedShift
	Plus
	Minus
	Times
	Divide
	Remainder

	binaryOpCount
)

var binarySymbols = [binaryOpCount]string{
	Or:             "||",
	And:            "&&",
	BinOr:          "|",
	BinAnd:         "&",
	Xor:            "^",
	Equals:         "==",
	NotEquals:      "!=",
	Less:           "<",
	Greater:        ">",
	LessEquals:     "<=",
	GreaterEquals:  ">=",
	LShift:         "<<",
	RSignedShift:   ">>",
	RUnsignedShift: ">>>",
	Plus:           "+",
	Minus:          "-",
	Times:          "*",
	Divide:         "/",
	Remainder:      "%",
}

// BinaryOps lists every binary operator.
func BinaryOps() []BinaryOp {
	ops := make([]BinaryOp, binaryOpCount)
	for i := range ops {
		ops[i] = BinaryOp(i)
	}
	return ops
}

func (op BinaryOp) Symbol() string { return lookup("binary operator", binarySymbols[:], op) }
func (op BinaryOp) String() string { return op.Symbol() }

// ParseBinaryOp maps an operator token back to its BinaryOp.
func ParseBinaryOp(s string) (BinaryOp, bool) { return parse[BinaryOp](binarySymbols[:], s) }

// UnaryOp is a prefix or postfix unary operator.
type UnaryOp int

const (
	Positive UnaryOp = iota
	Negative
	PreIncrement
	PreDecrement
	Not
	Inverse
	PostIncrement
	PostDecrement

	unaryOpCount
)

var unarySymbols = [unaryOpCount]string{
	Positive:      "+",
	Negative:      "-",
	PreIncrement:  "++",
	PreDecrement:  "--",
	Not:           "!",
	Inverse:       "~",
	PostIncrement: "++",
	PostDecrement: "--",
}

// UnaryOps lists every unary operator.
func UnaryOps() []UnaryOp {
	ops := make([]UnaryOp, unaryOpCount)
	for i := range ops {
		ops[i] = UnaryOp(i)
	}
	return ops
}

func (op UnaryOp) Symbol() string { return lookup("unary operator", unarySymbols[:], op) }
func (op UnaryOp) String() string { return op.Symbol() }

// Postfix reports whether the operator follows its operand.
func (op UnaryOp) Postfix() bool {
	return op == PostIncrement || op == PostDecrement
}

// ParseUnaryOp maps an operator token and its placement back to a UnaryOp.
func ParseUnaryOp(s string, postfix bool) (UnaryOp, bool) {
	for i, sym := range unarySymbols {
		op := UnaryOp(i)
		if sym == s && op.Postfix() == postfix {
			return op, true
		}
	}
	return 0, false
}

// Modifier is a single declaration modifier keyword.
type Modifier int

const (
	Public Modifier = iota
	Protected
	Private
	Abstract
	Static
	Final
	Transient
	Volatile
	Synchronized
	Native
	Strictfp
	Default

	modifierCount
)

var modifierKeywords = [modifierCount]string{
	Public:       "public",
	Protected:    "protected",
	Private:      "private",
	Abstract:     "abstract",
	Static:       "static",
	Final:        "final",
	Transient:    "transient",
	Volatile:     "volatile",
	Synchronized: "synchronized",
	Native:       "native",
	Strictfp:     "strictfp",
	Default:      "default",
}

func (m Modifier) Keyword() string { return lookup("modifier", modifierKeywords[:], m) }
func (m Modifier) String() string  { return m.Keyword() }

// ParseModifier maps a keyword back to its Modifier.
func ParseModifier(s string) (Modifier, bool) { return parse[Modifier](modifierKeywords[:], s) }

// Modifiers is a set of modifiers. Iteration and printing follow the
// declaration order of the Modifier constants, not source order.
type Modifiers uint16

// ModifierSet builds a set from individual modifiers.
func ModifierSet(ms ...Modifier) Modifiers {
	var set Modifiers
	for _, m := range ms {
		set = set.With(m)
	}
	return set
}

func (s Modifiers) With(m Modifier) Modifiers {
	lookup("modifier", modifierKeywords[:], m)
	return s | 1<<m
}

func (s Modifiers) Has(m Modifier) bool {
	return s&(1<<m) != 0
}

func (s Modifiers) Empty() bool {
	return s == 0
}

// List returns the modifiers in the set in declaration order.
func (s Modifiers) List() []Modifier {
	var ms []Modifier
	for m := Modifier(0); m < modifierCount; m++ {
		if s.Has(m) {
			ms = append(ms, m)
		}
	}
	return ms
}

func (s Modifiers) String() string {
	var words []string
	for _, m := range s.List() {
		words = append(words, m.Keyword())
	}
	return strings.Join(words, " ")
}

// Primitive is a primitive type keyword.
type Primitive int

const (
	Boolean Primitive = iota
	Byte
	Char
	Double
	Float
	Int
	Long
	Short

	primitiveCount
)

var primitiveKeywords = [primitiveCount]string{
	Boolean: "boolean",
	Byte:    "byte",
	Char:    "char",
	Double:  "double",
	Float:   "float",
	Int:     "int",
	Long:    "long",
	Short:   "short",
}

func (p Primitive) Keyword() string { return lookup("primitive type", primitiveKeywords[:], p) }
func (p Primitive) String() string  { return p.Keyword() }

// ParsePrimitive maps a keyword back to its Primitive.
func ParsePrimitive(s string) (Primitive, bool) { return parse[Primitive](primitiveKeywords[:], s) }
