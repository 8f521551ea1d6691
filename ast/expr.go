// Package ast defines the syntax tree of spec.md §3 as a set of tagged
// sums (discriminated unions), per the design note in spec.md §9: "Model
// this as a tagged sum ... with per-variant fields ... Do not use open
// polymorphism: every kind is known at compile time." This plays the role
// the teacher's orb.Object/orb.Type Class-tagged structs play for the
// Oberon symbol table, adapted to an expression/statement grammar instead
// of a type system.
package ast

import (
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/litr"
)

// ExprKind tags the Expr tagged union.
type ExprKind int

const (
	ExprNumber ExprKind = iota
	ExprNarrowString
	ExprWideString
	ExprIdent // bare literal token, not yet classified as Name/Ordinal
	ExprBinary
	ExprGrouped
	ExprNot
	ExprInvalid
)

// Expr is a node of the expression tree described in spec.md §3:
// Literal, BinaryExpression, GroupedExpression, NotExpression, Invalid.
// Exactly the fields relevant to Kind are populated.
type Expr struct {
	Kind ExprKind
	Span diag.Span

	// ExprNumber
	Number litr.Number

	// ExprNarrowString / ExprWideString: already-decoded bytes or UTF-16
	// code units (see litr.DecodeNarrowString / litr.DecodeWideString).
	StringBytes []byte
	StringUnits []uint16

	// ExprIdent: raw source text, for later NameOrOrdinal classification.
	IdentText []byte

	// ExprBinary
	Left, Right *Expr
	Op          BinaryOp

	// ExprGrouped / ExprNot
	Operand *Expr

	// ExprInvalid
	ContextSpan diag.Span
}

// BinaryOp is the operator of a BinaryExpression (spec.md §4.2: "+ - | &
// are all left-associative with equal precedence").
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpOr
	OpAnd
)

// Eval reduces an expression subtree to a Number, per spec.md §4.4. It is
// a pure function of the tree; narrow/wide string and ident leaves have no
// numeric value and evaluate to zero (callers needing their text go
// through StringBytes/StringUnits/IdentText directly instead of Eval).
func (e *Expr) Eval() litr.Number {
	if e == nil {
		return litr.Number{}
	}
	switch e.Kind {
	case ExprNumber:
		return e.Number
	case ExprBinary:
		l, r := e.Left.Eval(), e.Right.Eval()
		switch e.Op {
		case OpAdd:
			return l.Add(r)
		case OpSub:
			return l.Sub(r)
		case OpOr:
			return l.Or(r)
		case OpAnd:
			return l.And(r)
		}
	case ExprGrouped:
		return e.Operand.Eval()
	case ExprNot:
		return e.Operand.Eval().Not()
	}
	return litr.Number{}
}
