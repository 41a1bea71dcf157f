package codegen

import (
	"github.com/YuukiARIA/akarin/lang/ast"
	"github.com/YuukiARIA/akarin/lang/inst"
)

// lowerExpr lowers one expression node per spec.md §4.2's "Expression
// lowering" table. Every case leaves a net +1 on the abstract stack.
func (g *Generator) lowerExpr(n *ast.Node) {
	switch n.NType {
	case ast.INTEGER:
		g.emitInt(inst.PUSH, n.Value)
		g.stackDepth++

	case ast.VARIABLE:
		g.lowerVariable(n)

	case ast.ARRAY:
		g.lowerArrayRead(n)

	case ast.FUNC_CALL:
		g.lowerFuncCall(n)

	case ast.ASSIGN:
		g.lowerAssign(n)

	case ast.UNARY:
		g.lowerUnary(n)

	case ast.BINARY:
		g.lowerBinary(n)

	default:
		g.errs.AddNoPos("internal: unexpected expression node " + n.NType.String())
	}
}

func (g *Generator) lowerVariable(n *ast.Node) {
	name := n.Child(0).Name
	if v, ok := g.consts.Lookup(name); ok {
		g.emitInt(inst.PUSH, v)
		g.stackDepth++
		return
	}
	entry, ok := g.vars.Lookup(name)
	if !ok {
		g.errs.Add(n.Pos, "undefined variable '"+name+"'")
		g.emitInt(inst.PUSH, 0)
		g.stackDepth++
		return
	}
	if entry.IsLocal {
		g.emitInt(inst.COPY, int64(g.stackDepth+entry.Offset))
	} else {
		g.emitInt(inst.PUSH, int64(entry.Offset))
		g.emitOp(inst.LOAD)
	}
	g.stackDepth++
}

func (g *Generator) lowerArrayRead(n *ast.Node) {
	name := n.Child(0).Name
	entry, ok := g.vars.Lookup(name)
	if !ok {
		g.errs.Add(n.Pos, "undefined variable '"+name+"'")
		g.emitInt(inst.PUSH, 0)
		g.stackDepth++
		return
	}
	if entry.IsLocal {
		g.errs.Add(n.Pos, "function parameter is not array")
		g.emitInt(inst.PUSH, 0)
		g.stackDepth++
		return
	}
	g.emitInt(inst.PUSH, int64(entry.Offset))
	g.stackDepth++
	g.lowerExpr(n.Child(1))
	g.emitOp(inst.ADD)
	g.stackDepth--
	g.emitOp(inst.LOAD)
	g.stackDepth++
}

func (g *Generator) lowerFuncCall(n *ast.Node) {
	name := n.Child(0).Name
	args := n.Child(1)
	entry := g.funcs.LookupOrCreate(name, &g.labels)

	for i := len(args.Children) - 1; i >= 0; i-- {
		g.lowerExpr(args.Child(i))
	}
	g.emitLabel(inst.CALL, entry.Label)
	g.stackDepth++
	g.emitInt(inst.SLIDE, int64(len(args.Children)))
	g.stackDepth -= len(args.Children)
}

func (g *Generator) lowerAssign(n *ast.Node) {
	lhs, rhs := n.Child(0), n.Child(1)

	g.lowerExpr(rhs)

	// lhs.NType is checked before touching Child(0): the parser's soft
	// recovery (spec.md §4.1) still builds an ASSIGN node when the l-value
	// isn't a VARIABLE/ARRAY, so lhs can be e.g. an INTEGER leaf with no
	// children at all. Mirrors lowerGet's switch-before-Child(0) shape.
	switch lhs.NType {
	case ast.VARIABLE:
		name := lhs.Child(0).Name
		offset := int64(0)
		if _, ok := g.consts.Lookup(name); ok {
			g.errs.Add(lhs.Pos, "cannot assign to '"+name+"' defined as a constant.")
		} else if entry, ok := g.vars.Lookup(name); !ok {
			g.errs.Add(lhs.Pos, "undefined variable '"+name+"'")
		} else if entry.IsLocal {
			g.errs.Add(lhs.Pos, "function parameter is readonly")
		} else {
			offset = int64(entry.Offset)
		}
		g.emitInt(inst.PUSH, offset)
		g.stackDepth++

	case ast.ARRAY:
		name := lhs.Child(0).Name
		offset := int64(0)
		if _, ok := g.consts.Lookup(name); ok {
			g.errs.Add(lhs.Pos, "cannot assign to '"+name+"' defined as a constant.")
		} else if entry, ok := g.vars.Lookup(name); !ok {
			g.errs.Add(lhs.Pos, "undefined variable '"+name+"'")
		} else if entry.IsLocal {
			g.errs.Add(lhs.Pos, "function parameter is not array")
		} else {
			offset = int64(entry.Offset)
		}
		g.emitInt(inst.PUSH, offset)
		g.stackDepth++
		g.lowerExpr(lhs.Child(1))
		g.emitOp(inst.ADD)
		g.stackDepth--

	default:
		g.errs.Add(lhs.Pos, "left hand side of assignment should be variable or array")
		g.emitInt(inst.PUSH, 0) // keep the address slot STORE expects below
		g.stackDepth++
	}

	g.emitInt(inst.COPY, 1)
	g.stackDepth++
	g.emitOp(inst.STORE)
	g.stackDepth -= 2
}

func (g *Generator) lowerUnary(n *ast.Node) {
	arg := n.Child(0)
	switch n.Uop {
	case ast.NEGATIVE:
		g.emitInt(inst.PUSH, 0)
		g.stackDepth++
		g.lowerExpr(arg)
		g.emitOp(inst.SUB)
		g.stackDepth--

	case ast.NOT:
		g.lowerExpr(arg)
		g.emitBoolByZero(inst.JZ, 0, 1)

	default: // POSITIVE never reaches codegen: parsed as a no-op (spec.md §4.1).
		g.lowerExpr(arg)
	}
}

func (g *Generator) lowerBinary(n *ast.Node) {
	a, b := n.Child(0), n.Child(1)
	g.lowerExpr(a)
	g.lowerExpr(b)

	switch n.Bop {
	case ast.ADD:
		g.emitOp(inst.ADD)
	case ast.SUB:
		g.emitOp(inst.SUB)
	case ast.MUL:
		g.emitOp(inst.MUL)
	case ast.DIV:
		g.emitOp(inst.DIV)
	case ast.MOD:
		g.emitOp(inst.MOD)

	case ast.EQ:
		g.emitOp(inst.SUB)
		g.emitBoolByZero(inst.JZ, 0, 1)
	case ast.NEQ:
		g.emitOp(inst.SUB)
		g.emitBoolByZero(inst.JZ, 1, 0)

	case ast.LT:
		g.emitOp(inst.SUB)
		g.emitBoolByZero(inst.JNEG, 0, 1)
	case ast.GT:
		g.emitOp(inst.SWAP)
		g.emitOp(inst.SUB)
		g.emitBoolByZero(inst.JNEG, 0, 1)
	case ast.LE:
		g.emitOp(inst.SWAP)
		g.emitOp(inst.SUB)
		g.emitBoolByZero(inst.JNEG, 1, 0)
	case ast.GE:
		g.emitOp(inst.SUB)
		g.emitBoolByZero(inst.JNEG, 1, 0)

	case ast.OR:
		g.lowerOr()
	case ast.AND:
		g.lowerAnd()
	}

	g.stackDepth--
}

// emitBoolByZero materializes a boolean from the branch instruction op
// (JZ or JNEG), consuming the single value already on top of the stack:
// falseVal is pushed on fallthrough, trueVal on the branch taken
// (spec.md §4.2's shared skeleton behind NOT/EQ/NEQ/LT/GT/LE/GE).
func (g *Generator) emitBoolByZero(branch inst.Opcode, falseVal, trueVal int64) {
	l1 := g.labels.Alloc()
	l2 := g.labels.Alloc()
	g.emitLabel(branch, l1)
	g.emitInt(inst.PUSH, falseVal)
	g.emitLabel(inst.JMP, l2)
	g.emitLabel(inst.LABEL, l1)
	g.emitInt(inst.PUSH, trueVal)
	g.emitLabel(inst.LABEL, l2)
}

// lowerOr emits the short-circuit-ish two-operand OR sequence of spec.md
// §4.2, consuming both operand values already on the stack.
func (g *Generator) lowerOr() {
	l1 := g.labels.Alloc()
	l2 := g.labels.Alloc()
	l3 := g.labels.Alloc()

	g.emitLabel(inst.JZ, l1)
	g.emitOp(inst.POP)
	g.emitInt(inst.PUSH, 1)
	g.emitLabel(inst.JMP, l3)
	g.emitLabel(inst.LABEL, l1)
	g.emitLabel(inst.JZ, l2)
	g.emitInt(inst.PUSH, 1)
	g.emitLabel(inst.JMP, l3)
	g.emitLabel(inst.LABEL, l2)
	g.emitInt(inst.PUSH, 0)
	g.emitLabel(inst.LABEL, l3)
}

// lowerAnd emits the short-circuit-ish two-operand AND sequence of spec.md
// §4.2, consuming both operand values already on the stack.
func (g *Generator) lowerAnd() {
	l1 := g.labels.Alloc()
	l2 := g.labels.Alloc()
	l3 := g.labels.Alloc()
	l4 := g.labels.Alloc()

	g.emitLabel(inst.JZ, l1)
	g.emitLabel(inst.JZ, l2)
	g.emitLabel(inst.JMP, l3)
	g.emitLabel(inst.LABEL, l1)
	g.emitOp(inst.POP)
	g.emitLabel(inst.LABEL, l2)
	g.emitInt(inst.PUSH, 0)
	g.emitLabel(inst.JMP, l4)
	g.emitLabel(inst.LABEL, l3)
	g.emitInt(inst.PUSH, 1)
	g.emitLabel(inst.LABEL, l4)
}
