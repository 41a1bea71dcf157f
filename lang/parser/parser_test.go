package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuukiARIA/akarin/lang/ast"
	"github.com/YuukiARIA/akarin/lang/parser"
)

func TestParseHelloNumber(t *testing.T) {
	prog, p := parser.ParseProgram([]byte(`func main() { puti 1 + 2; return 0; }`))
	require.Equal(t, 0, p.ErrorCount())
	require.Equal(t, 1, prog.NumChildren())

	fn := prog.Child(0)
	assert.Equal(t, ast.FUNC, fn.NType)
	body := fn.Child(2)
	require.Equal(t, 2, body.NumChildren())
	assert.Equal(t, ast.PUTI, body.Child(0).NType)
	assert.Equal(t, ast.RETURN, body.Child(1).NType)
}

func TestAssignmentLValueCheck(t *testing.T) {
	_, p := parser.ParseProgram([]byte(`func main() { 1 = 2; return 0; }`))
	assert.Equal(t, 1, p.ErrorCount())
	assert.Contains(t, p.Errors()[0].Msg, "left hand side of assignment")
}

func TestMissingReturnReported(t *testing.T) {
	_, p := parser.ParseProgram([]byte(`func main() { puti 1; }`))
	require.Equal(t, 1, p.ErrorCount())
	assert.Contains(t, p.Errors()[0].Msg, "code path(s) not returning a value")
}

func TestIfElseBothReturningPasses(t *testing.T) {
	_, p := parser.ParseProgram([]byte(`func main() { if (1) return 1; else return 0; }`))
	assert.Equal(t, 0, p.ErrorCount())
}

func TestIfWithoutElseFailsReturnCheck(t *testing.T) {
	_, p := parser.ParseProgram([]byte(`func main() { if (1) return 1; }`))
	assert.Equal(t, 1, p.ErrorCount())
}

func TestTopLevelDiscipline(t *testing.T) {
	_, p := parser.ParseProgram([]byte(`return 1;`))
	// one report per skipped token: 'return', '1' and ';'.
	require.Equal(t, 3, p.ErrorCount())
	assert.Contains(t, p.Errors()[0].Msg, "Only 'array', 'func' or 'const' are allowed as toplevel statement")
}

func TestForStatementEmptyClauses(t *testing.T) {
	prog, p := parser.ParseProgram([]byte(`func main() { for(;;) { break; } return 0; }`))
	require.Equal(t, 0, p.ErrorCount())
	body := prog.Child(0).Child(2)
	forNode := body.Child(0)
	require.Equal(t, ast.FOR_STATEMENT, forNode.NType)
	assert.True(t, forNode.Child(0).IsEmpty())
	assert.True(t, forNode.Child(1).IsEmpty())
	assert.True(t, forNode.Child(2).IsEmpty())
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3)
	prog, p := parser.ParseProgram([]byte(`func main() { return 1 + 2 * 3; }`))
	require.Equal(t, 0, p.ErrorCount())
	ret := prog.Child(0).Child(2).Child(0)
	add := ret.Child(0)
	require.Equal(t, ast.BINARY, add.NType)
	require.Equal(t, ast.ADD, add.Bop)
	mul := add.Child(1)
	assert.Equal(t, ast.MUL, mul.Bop)
}

func TestAssignRightAssociative(t *testing.T) {
	prog, p := parser.ParseProgram([]byte(`
		array x[1];
		func main() {
			x[0] = x[0] = 5;
			return 0;
		}`))
	require.Equal(t, 0, p.ErrorCount())
	body := prog.Child(1).Child(2)
	assignStmt := body.Child(0).Child(0) // EXPR(ASSIGN(...))
	require.Equal(t, ast.ASSIGN, assignStmt.NType)
	rhs := assignStmt.Child(1)
	assert.Equal(t, ast.ASSIGN, rhs.NType)
}

func TestFuncCallArgsOrderPreserved(t *testing.T) {
	prog, p := parser.ParseProgram([]byte(`
		func add(a,b){ return a+b; }
		func main(){ puti add(2,7); return 0; }`))
	require.Equal(t, 0, p.ErrorCount())
	mainFn := prog.Child(1)
	call := mainFn.Child(2).Child(0).Child(0)
	require.Equal(t, ast.FUNC_CALL, call.NType)
	argList := call.Child(1)
	require.Equal(t, 2, argList.NumChildren())
	assert.Equal(t, int64(2), argList.Child(0).Value)
	assert.Equal(t, int64(7), argList.Child(1).Value)
}
