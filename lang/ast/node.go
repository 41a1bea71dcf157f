// Package ast implements Akarin's abstract syntax tree: a single
// tagged-variant Node type with an ordered child list and scalar payloads,
// exactly as spec.md §3 and §9 require. Unlike the teacher's typed,
// interface-dispatched AST (one Go struct per node kind), Akarin's node
// shape is itself a specified invariant — a systems-language tagged union
// translated directly to Go as one struct with an NType tag — so it is
// grounded on original_source/include/node.h rather than on the teacher's
// lang/ast package (see DESIGN.md).
package ast

import "github.com/YuukiARIA/akarin/lang/token"

// NType tags the variant a Node represents.
type NType int

//nolint:revive
const (
	INVALID NType = iota
	GROUP         // labelled passthrough, pretty-printing only
	EMPTY
	SEQ
	EXPR
	UNARY
	BINARY
	ASSIGN
	INTEGER
	IDENT
	VARIABLE
	ARRAY
	FUNC_CALL
	FUNC_CALL_ARG
	IF
	WHILE
	LOOP_STATEMENT
	FOR_STATEMENT
	BREAK
	CONTINUE
	PUTI
	PUTC
	GETI
	GETC
	ARRAY_DECL
	RETURN
	HALT
	FUNC
	FUNC_PARAM
	CONST_STATEMENT
)

var ntypeNames = [...]string{
	INVALID:         "INVALID",
	GROUP:           "GROUP",
	EMPTY:           "EMPTY",
	SEQ:             "SEQ",
	EXPR:            "EXPR",
	UNARY:           "UNARY",
	BINARY:          "BINARY",
	ASSIGN:          "ASSIGN",
	INTEGER:         "INTEGER",
	IDENT:           "IDENT",
	VARIABLE:        "VARIABLE",
	ARRAY:           "ARRAY",
	FUNC_CALL:       "FUNC_CALL",
	FUNC_CALL_ARG:   "FUNC_CALL_ARG",
	IF:              "IF",
	WHILE:           "WHILE",
	LOOP_STATEMENT:  "LOOP_STATEMENT",
	FOR_STATEMENT:   "FOR_STATEMENT",
	BREAK:           "BREAK",
	CONTINUE:        "CONTINUE",
	PUTI:            "PUTI",
	PUTC:            "PUTC",
	GETI:            "GETI",
	GETC:            "GETC",
	ARRAY_DECL:      "ARRAY_DECL",
	RETURN:          "RETURN",
	HALT:            "HALT",
	FUNC:            "FUNC",
	FUNC_PARAM:      "FUNC_PARAM",
	CONST_STATEMENT: "CONST_STATEMENT",
}

func (n NType) String() string {
	if int(n) < 0 || int(n) >= len(ntypeNames) {
		return "INVALID"
	}
	return ntypeNames[n]
}

// UnaryOp tags a UNARY node's operator.
type UnaryOp int

//nolint:revive
const (
	POSITIVE UnaryOp = iota
	NEGATIVE
	NOT
)

// BinaryOp tags a BINARY node's operator.
type BinaryOp int

//nolint:revive
const (
	ADD BinaryOp = iota
	SUB
	MUL
	DIV
	MOD
	EQ
	NEQ
	AND
	OR
	LT
	LE
	GT
	GE
)

// Node is Akarin's homogeneous AST node: a tag plus an ordered child list
// plus the scalar payloads relevant to that tag (spec.md §3).
type Node struct {
	NType    NType
	Children []*Node

	Uop   UnaryOp
	Bop   BinaryOp
	Value int64  // INTEGER literal value (ARRAY_DECL/CONST_STATEMENT keep theirs in an INTEGER child)
	Name  string // IDENT name, or GROUP's pretty-print label (bounded to token.MaxIdentLen)

	Pos token.Position
}

// New returns a bare node of the given variant.
func New(ntype NType) *Node { return &Node{NType: ntype} }

// Add appends child to node's child list and returns node, for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Child returns the i'th child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int { return len(n.Children) }

// IsEmpty reports whether n is the EMPTY placeholder node used for elided
// for-statement clauses.
func (n *Node) IsEmpty() bool { return n == nil || n.NType == EMPTY }

// IsAssignable reports whether n may appear on the left of '=' (spec.md
// §4.1's L-value check: VARIABLE or ARRAY only).
func (n *Node) IsAssignable() bool {
	return n != nil && (n.NType == VARIABLE || n.NType == ARRAY)
}

// Constructors below mirror original_source/include/node.h's node_new_*
// family, adapted to Go's Node shape.

func NewInvalid() *Node { return New(INVALID) }
func NewEmpty() *Node   { return New(EMPTY) }

func NewSeq(stmts ...*Node) *Node {
	return New(SEQ).Add(stmts...)
}

func NewExpr(expr *Node) *Node { return New(EXPR).Add(expr) }

func NewUnary(op UnaryOp, arg *Node) *Node {
	n := New(UNARY)
	n.Uop = op
	return n.Add(arg)
}

func NewBinary(op BinaryOp, lhs, rhs *Node) *Node {
	n := New(BINARY)
	n.Bop = op
	return n.Add(lhs, rhs)
}

func NewAssign(lhs, rhs *Node) *Node { return New(ASSIGN).Add(lhs, rhs) }

func NewInteger(v int64) *Node {
	n := New(INTEGER)
	n.Value = v
	return n
}

func NewIdent(name string) *Node {
	if len(name) > token.MaxIdentLen {
		name = name[:token.MaxIdentLen]
	}
	n := New(IDENT)
	n.Name = name
	return n
}

func NewVariable(ident *Node) *Node { return New(VARIABLE).Add(ident) }

func NewArray(ident, indexer *Node) *Node { return New(ARRAY).Add(ident, indexer) }

func NewFuncCall(ident, args *Node) *Node { return New(FUNC_CALL).Add(ident, args) }

func NewFuncCallArg(args ...*Node) *Node { return New(FUNC_CALL_ARG).Add(args...) }

func NewIf(cond, then, els *Node) *Node {
	n := New(IF)
	if els != nil {
		return n.Add(cond, then, els)
	}
	return n.Add(cond, then)
}

func NewWhile(cond, body *Node) *Node { return New(WHILE).Add(cond, body) }

func NewLoopStatement(body *Node) *Node { return New(LOOP_STATEMENT).Add(body) }

func NewForStatement(init, cond, next, body *Node) *Node {
	return New(FOR_STATEMENT).Add(init, cond, next, body)
}

func NewBreak() *Node    { return New(BREAK) }
func NewContinue() *Node { return New(CONTINUE) }

func NewPuti(expr *Node) *Node { return New(PUTI).Add(expr) }
func NewPutc(expr *Node) *Node { return New(PUTC).Add(expr) }
func NewGeti(v *Node) *Node    { return New(GETI).Add(v) }
func NewGetc(v *Node) *Node    { return New(GETC).Add(v) }

func NewArrayDecl(ident *Node, capacity int64) *Node {
	n := New(ARRAY_DECL)
	return n.Add(ident, NewInteger(capacity))
}

func NewReturn(expr *Node) *Node { return New(RETURN).Add(expr) }
func NewHalt() *Node             { return New(HALT) }

func NewFunc(ident, params, body *Node) *Node { return New(FUNC).Add(ident, params, body) }
func NewFuncParam(idents ...*Node) *Node      { return New(FUNC_PARAM).Add(idents...) }

func NewConstStatement(ident *Node, value int64) *Node {
	return New(CONST_STATEMENT).Add(ident, NewInteger(value))
}

// NewGroup wraps child under a labelled GROUP node, used only by the AST
// pretty-printer (spec.md §3: "GROUP is a labelled passthrough used only for
// pretty-printing").
func NewGroup(label string, children ...*Node) *Node {
	n := New(GROUP)
	n.Name = label
	return n.Add(children...)
}
