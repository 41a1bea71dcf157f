// Package codegen implements Akarin's tree-walking code generator
// (spec.md §4.2): it lowers an AST to a flat instruction list, managing
// scope/symbol tables, control-flow labels, and an abstract stack-depth
// counter used to compute COPY offsets. Grounded on the teacher's
// lang/compiler/compiler.go fcomp/pcomp pattern (a small stateful struct
// with an emit helper, walked recursively per statement/expression) but
// simplified to a flat instruction stream with label-fusion instead of the
// teacher's CFG/basic-block linearization, since spec.md's instruction
// model has no basic blocks (see DESIGN.md).
package codegen

import (
	"fmt"

	"github.com/YuukiARIA/akarin/lang/ast"
	"github.com/YuukiARIA/akarin/lang/diag"
	"github.com/YuukiARIA/akarin/lang/inst"
	"github.com/YuukiARIA/akarin/lang/label"
	"github.com/YuukiARIA/akarin/lang/symtable"
)

// Generator walks an AST and appends to an instruction list, threading the
// three pieces of state spec.md §4.2 names: the active variable scope, the
// enclosing loop's continue/break targets, and the abstract stack depth.
type Generator struct {
	instructions []inst.Instruction
	labels       label.Table
	consts       *symtable.ConstTable
	funcs        *symtable.FuncTable
	globals      *symtable.VarTable
	vars         *symtable.VarTable // currently active scope

	labelContinue *label.Label
	labelBreak    *label.Label
	stackDepth    int

	errs diag.List
}

// New returns a ready-to-use Generator.
func New() *Generator {
	g := &Generator{consts: symtable.NewConstTable(), funcs: symtable.NewFuncTable()}
	g.globals = symtable.NewVarTable(nil)
	g.vars = g.globals
	return g
}

// ErrorCount returns the number of semantic diagnostics recorded so far.
func (g *Generator) ErrorCount() int { return g.errs.Len() }

// Errors returns the recorded diagnostics, sorted by position.
func (g *Generator) Errors() []*diag.Error {
	g.errs.Sort()
	return g.errs.Errors()
}

func (g *Generator) emit(i inst.Instruction) { g.instructions = append(g.instructions, i) }

func (g *Generator) emitOp(op inst.Opcode)                    { g.emit(inst.New(op)) }
func (g *Generator) emitInt(op inst.Opcode, n int64)          { g.emit(inst.NewInt(op, n)) }
func (g *Generator) emitLabel(op inst.Opcode, l *label.Label) { g.emit(inst.NewLabelRef(op, l)) }

// Generate runs the full pipeline described in spec.md §4.2: it registers
// main, collects constants, emits the program prologue, walks the tree,
// verifies main resolved, and runs the label-fusion pass. prog is the SEQ
// of toplevel statements produced by the parser.
func Generate(prog *ast.Node) ([]inst.Instruction, *Generator) {
	g := New()

	mainEntry := g.funcs.LookupOrCreate("main", &g.labels)
	g.collectConsts(prog)

	g.emit(inst.NewLabelRef(inst.CALL, mainEntry.Label))
	g.emit(inst.New(inst.HALT))

	for _, child := range prog.Children {
		g.lowerStmt(child)
	}

	if e, ok := g.funcs.Lookup("main"); !ok || !e.Resolved {
		g.errs.AddNoPos("function 'main' is not defined.")
	}

	g.instructions = fuseLabels(g.instructions, &g.labels)
	return g.instructions, g
}

// collectConsts walks the tree once, before code generation proper, to
// register every CONST_STATEMENT (spec.md §4.2's program prologue step 2).
// Redefinitions are reported here.
func (g *Generator) collectConsts(n *ast.Node) {
	if n == nil {
		return
	}
	if n.NType == ast.CONST_STATEMENT {
		name := n.Child(0).Name
		value := n.Child(1).Value
		if !g.consts.Define(name, value) {
			g.errs.AddNoPos(fmt.Sprintf("constant '%s' is redefined.", name))
		}
		return // CONST_STATEMENT has no nested children worth recursing into
	}
	for _, c := range n.Children {
		g.collectConsts(c)
	}
}

// fuseLabels implements spec.md §4.3's post-walk fusion pass: any run of
// consecutive LABEL instructions collapses to its first instruction, with
// every label in the run unified to that first one's label. This both
// satisfies spec.md §8's invariant ("after label fusion, no two adjacent
// instructions are both LABEL") and keeps the union-find semantics spec.md
// §4.2 describes.
func fuseLabels(instrs []inst.Instruction, labels *label.Table) []inst.Instruction {
	result := make([]inst.Instruction, 0, len(instrs))
	for _, ins := range instrs {
		if ins.Op == inst.LABEL && len(result) > 0 && result[len(result)-1].Op == inst.LABEL {
			labels.Unify(result[len(result)-1].LabelOp, ins.LabelOp)
			continue
		}
		result = append(result, ins)
	}
	return result
}
