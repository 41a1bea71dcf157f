// Package parser implements Akarin's recursive-descent, operator-precedence
// parser (spec.md §4.1), grounded on the teacher's lang/parser package for
// its file layout (parser.go/expr.go/stmt.go), diagnostic-collection field,
// and advance/expect naming. The recovery discipline itself diverges from
// the teacher's panic/recover expect: spec.md specifies that expect()
// reports and returns false without consuming, biasing recovery to the
// caller's loop boundaries (EOF or '}') instead of unwinding the call stack.
package parser

import (
	"fmt"

	"github.com/YuukiARIA/akarin/lang/ast"
	"github.com/YuukiARIA/akarin/lang/diag"
	"github.com/YuukiARIA/akarin/lang/scanner"
	"github.com/YuukiARIA/akarin/lang/token"
)

// Parser consumes a token stream and builds an AST, counting errors as it
// goes (spec.md §2).
type Parser struct {
	scanner scanner.Scanner
	errs    diag.List

	tok token.Kind
	val token.Value
}

// New returns a parser over src.
func New(src []byte) *Parser {
	p := &Parser{}
	p.scanner.Init(src, p.errs.Add)
	p.advance()
	return p
}

// ErrorCount returns the number of diagnostics recorded while parsing.
func (p *Parser) ErrorCount() int { return p.errs.Len() }

// Errors returns the recorded diagnostics, sorted by position.
func (p *Parser) Errors() []*diag.Error {
	p.errs.Sort()
	return p.errs.Errors()
}

func (p *Parser) advance() {
	p.tok = p.scanner.Scan(&p.val)
}

// literal returns the text to show in a diagnostic for the current token.
func (p *Parser) literal() string {
	switch p.tok {
	case token.SYMBOL, token.INTEGER:
		return p.val.Text
	case token.CHAR:
		return fmt.Sprintf("'%c'", rune(p.val.Int))
	default:
		return p.tok.String()
	}
}

// expect reports and consumes the current token if its kind is want. If not,
// it records an error (without consuming) and returns false, per spec.md
// §4.1's error-recovery discipline.
func (p *Parser) expect(want token.Kind) bool {
	if p.tok == want {
		p.advance()
		return true
	}
	p.errorExpected(want)
	return false
}

func (p *Parser) errorExpected(want token.Kind) {
	msg := fmt.Sprintf("unexpected '%s' (%s), but expected %s.", p.literal(), p.tok, want)
	p.errs.Add(p.val.Pos, msg)
}

func (p *Parser) error(pos token.Position, msg string) {
	p.errs.Add(pos, msg)
}

// ParseProgram parses a whole source file into a SEQ node of toplevel
// statements (spec.md §4.1's `program` production).
func ParseProgram(src []byte) (*ast.Node, *Parser) {
	p := New(src)
	prog := p.parseProgram()
	return prog, p
}
