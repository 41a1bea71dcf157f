package codegen

import (
	"github.com/YuukiARIA/akarin/lang/ast"
	"github.com/YuukiARIA/akarin/lang/inst"
	"github.com/YuukiARIA/akarin/lang/label"
	"github.com/YuukiARIA/akarin/lang/symtable"
)

// lowerStmt lowers one statement node per spec.md §4.2's "Statement
// lowering" table. stack_depth resets to 0 at every statement boundary.
func (g *Generator) lowerStmt(n *ast.Node) {
	g.stackDepth = 0
	switch n.NType {
	case ast.SEQ:
		for _, c := range n.Children {
			g.lowerStmt(c)
		}

	case ast.EXPR:
		g.lowerExpr(n.Child(0))
		g.emitOp(inst.POP)

	case ast.IF:
		g.lowerIf(n)

	case ast.WHILE:
		g.lowerWhile(n)

	case ast.LOOP_STATEMENT:
		g.lowerLoop(n)

	case ast.FOR_STATEMENT:
		g.lowerFor(n)

	case ast.BREAK:
		if g.labelBreak == nil {
			g.errs.AddNoPos("illegal break statement")
			return
		}
		g.emitLabel(inst.JMP, g.labelBreak)

	case ast.CONTINUE:
		if g.labelContinue == nil {
			g.errs.AddNoPos("illegal continue statement")
			return
		}
		g.emitLabel(inst.JMP, g.labelContinue)

	case ast.PUTI:
		g.lowerExpr(n.Child(0))
		g.emitOp(inst.PUTI)

	case ast.PUTC:
		g.lowerExpr(n.Child(0))
		g.emitOp(inst.PUTC)

	case ast.GETI:
		g.lowerGet(n.Child(0), inst.GETI)

	case ast.GETC:
		g.lowerGet(n.Child(0), inst.GETC)

	case ast.ARRAY_DECL:
		name := n.Child(0).Name
		g.vars.AddArray(name, n.Child(1).Value)

	case ast.FUNC:
		g.lowerFunc(n)

	case ast.RETURN:
		g.lowerExpr(n.Child(0))
		g.emitOp(inst.RET)

	case ast.HALT:
		g.emitOp(inst.HALT)

	case ast.CONST_STATEMENT:
		// registered in the prepass; no code here.

	default:
		g.errs.AddNoPos("internal: unexpected statement node " + n.NType.String())
	}
}

// lowerGet lowers GETI/GETC. The target resolves to a global cell; a
// function parameter is readonly (spec.md §4.2). Unlike an assignment's
// l-value, the target is never an array index here — the parser's
// parseLValue only ever produces a VARIABLE (see its doc comment) — so the
// VARIABLE case is the only reachable one; default stays as a safe
// diagnostic rather than touching Child(0) on an unexpected node shape.
func (g *Generator) lowerGet(target *ast.Node, op inst.Opcode) {
	switch target.NType {
	case ast.VARIABLE:
		name := target.Child(0).Name
		entry, ok := g.vars.Lookup(name)
		if !ok {
			g.errs.Add(target.Pos, "undefined variable '"+name+"'")
			return
		}
		if entry.IsLocal {
			g.errs.Add(target.Pos, "function parameter is readonly")
			return
		}
		g.emitInt(inst.PUSH, int64(entry.Offset))
		g.emitOp(op)

	default:
		g.errs.Add(target.Pos, "left hand side of assignment should be variable or array")
	}
}

func (g *Generator) lowerIf(n *ast.Node) {
	cond, then := n.Child(0), n.Child(1)
	els := n.Child(2)

	l1 := g.labels.Alloc()
	g.lowerExpr(cond)
	g.emitLabel(inst.JZ, l1)
	g.lowerStmt(then)

	if els != nil {
		l2 := g.labels.Alloc()
		g.emitLabel(inst.JMP, l2)
		g.emitLabel(inst.LABEL, l1)
		g.lowerStmt(els)
		g.emitLabel(inst.LABEL, l2)
		return
	}
	g.emitLabel(inst.LABEL, l1)
}

func (g *Generator) lowerWhile(n *ast.Node) {
	cond, body := n.Child(0), n.Child(1)

	lc := g.labels.Alloc()
	lb := g.labels.Alloc()

	g.emitLabel(inst.LABEL, lc)
	g.lowerExpr(cond)
	g.emitLabel(inst.JZ, lb)

	g.withLoopLabels(lc, lb, func() { g.lowerStmt(body) })

	g.emitLabel(inst.JMP, lc)
	g.emitLabel(inst.LABEL, lb)
}

func (g *Generator) lowerLoop(n *ast.Node) {
	body := n.Child(0)

	lc := g.labels.Alloc()
	lb := g.labels.Alloc()

	g.emitLabel(inst.LABEL, lc)
	g.withLoopLabels(lc, lb, func() { g.lowerStmt(body) })
	g.emitLabel(inst.JMP, lc)
	g.emitLabel(inst.LABEL, lb)
}

func (g *Generator) lowerFor(n *ast.Node) {
	initN, condN, nextN, body := n.Child(0), n.Child(1), n.Child(2), n.Child(3)

	lh := g.labels.Alloc()
	lc := g.labels.Alloc()
	lb := g.labels.Alloc()

	if !initN.IsEmpty() {
		g.lowerExpr(initN)
		g.emitOp(inst.POP)
	}

	g.emitLabel(inst.LABEL, lh)
	if !condN.IsEmpty() {
		g.lowerExpr(condN)
		g.emitLabel(inst.JZ, lb)
	}

	g.withLoopLabels(lc, lb, func() { g.lowerStmt(body) })

	g.emitLabel(inst.LABEL, lc)
	if !nextN.IsEmpty() {
		g.lowerExpr(nextN)
		g.emitOp(inst.POP)
	}
	g.emitLabel(inst.JMP, lh)
	g.emitLabel(inst.LABEL, lb)
}

// withLoopLabels runs body with label_continue/label_break set to lc/lb,
// restoring the enclosing loop's labels (if any) afterward — loops nest.
func (g *Generator) withLoopLabels(lc, lb *label.Label, body func()) {
	savedC, savedB := g.labelContinue, g.labelBreak
	g.labelContinue, g.labelBreak = lc, lb
	body()
	g.labelContinue, g.labelBreak = savedC, savedB
}

func (g *Generator) lowerFunc(n *ast.Node) {
	name := n.Child(0).Name
	params := n.Child(1)
	body := n.Child(2)

	entry := g.funcs.LookupOrCreate(name, &g.labels)
	if entry.Resolved {
		g.errs.AddNoPos("function '" + name + "' is redefined.")
		return
	}
	entry.MarkResolved()

	parent := g.vars
	fnScope := symtable.NewVarTable(parent)
	for _, p := range params.Children {
		fnScope.AddScalar(p.Name)
	}
	g.vars = fnScope

	g.emitLabel(inst.LABEL, entry.Label)
	g.lowerStmt(body)

	g.vars = parent
}
