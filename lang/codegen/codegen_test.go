package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuukiARIA/akarin/lang/codegen"
	"github.com/YuukiARIA/akarin/lang/inst"
	"github.com/YuukiARIA/akarin/lang/label"
	"github.com/YuukiARIA/akarin/lang/parser"
)

func compile(t *testing.T, src string) ([]inst.Instruction, *codegen.Generator) {
	t.Helper()
	prog, p := parser.ParseProgram([]byte(src))
	require.Equal(t, 0, p.ErrorCount(), "unexpected parse errors: %v", p.Errors())
	instrs, g := codegen.Generate(prog)
	return instrs, g
}

func opcodes(instrs []inst.Instruction) []inst.Opcode {
	ops := make([]inst.Opcode, len(instrs))
	for i, in := range instrs {
		ops[i] = in.Op
	}
	return ops
}

// spec.md §8 scenario 1: "Hello number".
func TestHelloNumber(t *testing.T) {
	instrs, g := compile(t, `func main() { puti 1 + 2; return 0; }`)
	require.Equal(t, 0, g.ErrorCount())

	got := opcodes(instrs)
	want := []inst.Opcode{
		inst.CALL, inst.HALT,
		inst.LABEL, inst.PUSH, inst.PUSH, inst.ADD, inst.PUTI, inst.PUSH, inst.RET,
	}
	assert.Equal(t, want, got)
	assert.Equal(t, int64(1), instrs[3].IntOperand)
	assert.Equal(t, int64(2), instrs[4].IntOperand)
	assert.Equal(t, int64(0), instrs[7].IntOperand)
}

// spec.md §8 scenario 3: short-circuit OR.
func TestShortCircuitOr(t *testing.T) {
	instrs, g := compile(t, `func main() { puti (0 | 5); return 0; }`)
	require.Equal(t, 0, g.ErrorCount())

	got := opcodes(instrs)
	// CALL HALT LABEL PUSH0 PUSH5 JZ POP PUSH1 JMP LABEL JZ PUSH1 JMP LABEL PUSH0 LABEL PUTI PUSH0 RET
	want := []inst.Opcode{
		inst.CALL, inst.HALT, inst.LABEL,
		inst.PUSH, inst.PUSH,
		inst.JZ, inst.POP, inst.PUSH, inst.JMP,
		inst.LABEL, inst.JZ, inst.PUSH, inst.JMP,
		inst.LABEL, inst.PUSH,
		inst.LABEL,
		inst.PUTI, inst.PUSH, inst.RET,
	}
	assert.Equal(t, want, got)
}

// spec.md §8 scenario 4: function call with args, reverse-order pushes.
func TestFuncCallArgsReversed(t *testing.T) {
	instrs, g := compile(t, `func add(a,b){ return a+b; } func main(){ puti add(2,7); return 0; }`)
	require.Equal(t, 0, g.ErrorCount())

	// locate the PUSH 7 / PUSH 2 / CALL / SLIDE 2 sequence inside main.
	found := false
	for i := 0; i+3 < len(instrs); i++ {
		if instrs[i].Op == inst.PUSH && instrs[i].IntOperand == 7 &&
			instrs[i+1].Op == inst.PUSH && instrs[i+1].IntOperand == 2 &&
			instrs[i+2].Op == inst.CALL &&
			instrs[i+3].Op == inst.SLIDE && instrs[i+3].IntOperand == 2 {
			found = true
			break
		}
	}
	assert.True(t, found, "expected PUSH 7; PUSH 2; CALL; SLIDE 2 sequence, got %v", opcodes(instrs))
}

// spec.md §8 scenario 5: const rejection.
func TestConstRejection(t *testing.T) {
	_, g := compile(t, `const K = 3; func main(){ K = 4; return 0; }`)
	require.Equal(t, 1, g.ErrorCount())
	assert.Contains(t, g.Errors()[0].Msg, "cannot assign to 'K' defined as a constant.")
}

// spec.md §8 scenario 6: label fusion collapses the if/else's adjacent exit
// labels into one.
func TestLabelFusionCollapsesAdjacentLabels(t *testing.T) {
	instrs, g := compile(t, `func main(){ if(1){} else {} return 0; }`)
	require.Equal(t, 0, g.ErrorCount())

	for i := 0; i+1 < len(instrs); i++ {
		if instrs[i].Op == inst.LABEL {
			assert.NotEqual(t, inst.LABEL, instrs[i+1].Op, "two adjacent LABELs survived fusion")
		}
	}
}

// spec.md §8 boundary behavior: empty for clauses.
func TestForStatementEmptyClausesLowering(t *testing.T) {
	instrs, g := compile(t, `func main() { for(;;) { break; } return 0; }`)
	require.Equal(t, 0, g.ErrorCount())

	got := opcodes(instrs)
	want := []inst.Opcode{
		inst.CALL, inst.HALT,
		inst.LABEL, // func entry, fused with the adjacent Lh
		inst.JMP,   // break -> Lb
		inst.LABEL, // Lc
		inst.JMP,   // Lh
		inst.LABEL, // Lb
		inst.PUSH, inst.RET,
	}
	assert.Equal(t, want, got)
}

// spec.md §8 boundary behavior: break/continue outside any loop is an error.
func TestIllegalBreakContinue(t *testing.T) {
	_, g := compile(t, `func main(){ break; return 0; }`)
	require.Equal(t, 1, g.ErrorCount())
	assert.Contains(t, g.Errors()[0].Msg, "illegal break statement")

	_, g2 := compile(t, `func main(){ continue; return 0; }`)
	require.Equal(t, 1, g2.ErrorCount())
	assert.Contains(t, g2.Errors()[0].Msg, "illegal continue statement")
}

// spec.md §8 boundary behavior: main missing is an error.
func TestMainMissing(t *testing.T) {
	_, g := compile(t, `func other() { return 0; }`)
	require.Equal(t, 1, g.ErrorCount())
	assert.Contains(t, g.Errors()[0].Msg, "function 'main' is not defined.")
}

// spec.md §6: function redefinition is reported with the documented
// diagnostic text.
func TestFuncRedefined(t *testing.T) {
	_, g := compile(t, `func main(){ return 0; } func main(){ return 1; }`)
	require.Equal(t, 1, g.ErrorCount())
	assert.Contains(t, g.Errors()[0].Msg, "function 'main' is redefined.")
}

// Stack accounting invariant (spec.md §8): a = e leaves exactly one value on
// the stack equal to e's value; net effect of the ASSIGN instruction
// sequence consumes rhs+addr pairs and leaves one cell.
func TestAssignLeavesOneValue(t *testing.T) {
	instrs, g := compile(t, `array x[1]; func main(){ x[0] = 5; return 0; }`)
	require.Equal(t, 0, g.ErrorCount())

	got := opcodes(instrs)
	// ... PUSH 5 (rhs) PUSH 0 (offset) PUSH 0 (index) ADD COPY 1 STORE ...
	idx := -1
	for i, op := range got {
		if op == inst.COPY {
			idx = i
			break
		}
	}
	require.NotEqual(t, -1, idx)
	assert.Equal(t, inst.STORE, got[idx+1])
}

// Union-find invariant: every emitted label reference resolves within the
// table that produced the instructions.
func TestAllLabelReferencesResolve(t *testing.T) {
	instrs, g := compile(t, `
		array x[1];
		func main() {
			x[0] = 3;
			while (x[0]) { puti x[0]; x[0] = x[0] - 1; }
			return 0;
		}`)
	require.Equal(t, 0, g.ErrorCount())
	for _, in := range instrs {
		if in.Op.HasLabelOperand() {
			require.NotNil(t, in.LabelOp)
			assert.GreaterOrEqual(t, label.ResolvedID(in.LabelOp), 0)
		}
	}
}
