package parser

import (
	"github.com/YuukiARIA/akarin/lang/ast"
	"github.com/YuukiARIA/akarin/lang/token"
)

// parseProgram implements:
//
//	program := { toplevel }
func (p *Parser) parseProgram() *ast.Node {
	prog := ast.New(ast.SEQ)
	for p.tok != token.EOF {
		switch p.tok {
		case token.KW_ARRAY:
			prog.Add(p.parseArrayDecl())
		case token.KW_FUNC:
			prog.Add(p.parseFuncDef())
		case token.KW_CONST:
			prog.Add(p.parseConstDef())
		default:
			p.error(p.val.Pos, "Only 'array', 'func' or 'const' are allowed as toplevel statement")
			p.advance()
		}
	}
	return prog
}

// array_decl := 'array' IDENT '[' INTEGER ']' ';'
func (p *Parser) parseArrayDecl() *ast.Node {
	p.expect(token.KW_ARRAY)
	name := p.identOrPlaceholder()
	p.expect(token.LBRACK)
	cap := p.integerOrZero()
	p.expect(token.RBRACK)
	p.expect(token.SEMI)
	return ast.NewArrayDecl(name, cap)
}

// const_def := 'const' IDENT '=' INTEGER ';'
func (p *Parser) parseConstDef() *ast.Node {
	p.expect(token.KW_CONST)
	name := p.identOrPlaceholder()
	p.expect(token.ASSIGN)
	v := p.integerOrZero()
	p.expect(token.SEMI)
	return ast.NewConstStatement(name, v)
}

// func_def := 'func' IDENT '(' [IDENT {',' IDENT}] ')' block
func (p *Parser) parseFuncDef() *ast.Node {
	p.expect(token.KW_FUNC)
	name := p.identOrPlaceholder()
	p.expect(token.LPAREN)
	params := ast.New(ast.FUNC_PARAM)
	if p.tok == token.SYMBOL {
		params.Add(p.identOrPlaceholder())
		for p.tok == token.COMMA {
			p.advance()
			params.Add(p.identOrPlaceholder())
		}
	}
	p.expect(token.RPAREN)
	body := p.parseBlock()

	if !allPathsReturn(body) {
		p.error(p.val.Pos, "code path(s) not returning a value")
	}

	return ast.NewFunc(name, params, body)
}

func (p *Parser) identOrPlaceholder() *ast.Node {
	if p.tok != token.SYMBOL {
		p.errorExpected(token.SYMBOL)
		return ast.NewIdent("")
	}
	name := p.val.Text
	p.advance()
	return ast.NewIdent(name)
}

func (p *Parser) integerOrZero() int64 {
	if p.tok != token.INTEGER {
		p.errorExpected(token.INTEGER)
		return 0
	}
	v := p.val.Int
	p.advance()
	return v
}

// block := '{' { stmt } '}'
func (p *Parser) parseBlock() *ast.Node {
	p.expect(token.LBRACE)
	seq := ast.New(ast.SEQ)
	for p.tok != token.RBRACE && p.tok != token.EOF {
		seq.Add(p.parseStmt())
	}
	p.expect(token.RBRACE)
	return seq
}

// stmt := block | if | while | loop | for | break | continue
//
//	| puti | putc | geti | getc | return | halt | expr ';'
func (p *Parser) parseStmt() *ast.Node {
	switch p.tok {
	case token.LBRACE:
		return p.parseBlock()
	case token.KW_IF:
		return p.parseIf()
	case token.KW_WHILE:
		return p.parseWhile()
	case token.KW_LOOP:
		return p.parseLoop()
	case token.KW_FOR:
		return p.parseFor()
	case token.KW_BREAK:
		p.advance()
		p.expect(token.SEMI)
		return ast.NewBreak()
	case token.KW_CONTINUE:
		p.advance()
		p.expect(token.SEMI)
		return ast.NewContinue()
	case token.KW_PUTI:
		p.advance()
		e := p.parseExpr()
		p.expect(token.SEMI)
		return ast.NewPuti(e)
	case token.KW_PUTC:
		p.advance()
		e := p.parseExpr()
		p.expect(token.SEMI)
		return ast.NewPutc(e)
	case token.KW_GETI:
		p.advance()
		v := p.parseLValue()
		p.expect(token.SEMI)
		return ast.NewGeti(v)
	case token.KW_GETC:
		p.advance()
		v := p.parseLValue()
		p.expect(token.SEMI)
		return ast.NewGetc(v)
	case token.KW_RETURN:
		p.advance()
		e := p.parseExpr()
		p.expect(token.SEMI)
		return ast.NewReturn(e)
	case token.KW_HALT:
		p.advance()
		p.expect(token.SEMI)
		return ast.NewHalt()
	default:
		e := p.parseExpr()
		p.expect(token.SEMI)
		return ast.NewExpr(e)
	}
}

// parseLValue parses the variable target of geti/getc. Unlike an
// assignment's l-value, this is a bare identifier only, no array indexing:
// _examples/original_source/src/parser.c's parse_geti/parse_getc call
// parse_ident exclusively, never an indexed form (see DESIGN.md).
func (p *Parser) parseLValue() *ast.Node {
	pos := p.val.Pos
	name := p.identOrPlaceholder()
	v := ast.NewVariable(name)
	v.Pos = pos
	return v
}

// if := 'if' '(' expr ')' stmt ['else' stmt]
func (p *Parser) parseIf() *ast.Node {
	p.expect(token.KW_IF)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	then := p.parseStmt()
	var els *ast.Node
	if p.tok == token.KW_ELSE {
		p.advance()
		els = p.parseStmt()
	}
	return ast.NewIf(cond, then, els)
}

// while := 'while' '(' expr ')' stmt
func (p *Parser) parseWhile() *ast.Node {
	p.expect(token.KW_WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseStmt()
	return ast.NewWhile(cond, body)
}

// loop := 'loop' stmt
func (p *Parser) parseLoop() *ast.Node {
	p.expect(token.KW_LOOP)
	body := p.parseStmt()
	return ast.NewLoopStatement(body)
}

// for := 'for' '(' [expr] ';' [expr] ';' [expr] ')' stmt
func (p *Parser) parseFor() *ast.Node {
	p.expect(token.KW_FOR)
	p.expect(token.LPAREN)

	init := p.optionalExpr(token.SEMI)
	p.expect(token.SEMI)
	cond := p.optionalExpr(token.SEMI)
	p.expect(token.SEMI)
	next := p.optionalExpr(token.RPAREN)
	p.expect(token.RPAREN)

	body := p.parseStmt()
	return ast.NewForStatement(init, cond, next, body)
}

// optionalExpr parses an expression unless the current token is stop, in
// which case it returns an EMPTY node (spec.md §3: "any of init/cond/next
// may be EMPTY").
func (p *Parser) optionalExpr(stop token.Kind) *ast.Node {
	if p.tok == stop {
		return ast.NewEmpty()
	}
	return p.parseExpr()
}

// allPathsReturn implements spec.md §4.1's reachability check: RETURN is
// terminal; SEQ is terminal iff any child is (spec.md §9 Open Questions:
// preserved as observed in the original source, not tightened to "last
// child"); IF is terminal iff both branches exist and are terminal; all
// other forms are non-terminal.
func allPathsReturn(n *ast.Node) bool {
	if n == nil {
		return false
	}
	switch n.NType {
	case ast.RETURN:
		return true
	case ast.SEQ:
		for _, c := range n.Children {
			if allPathsReturn(c) {
				return true
			}
		}
		return false
	case ast.IF:
		if n.NumChildren() < 3 {
			return false
		}
		return allPathsReturn(n.Child(1)) && allPathsReturn(n.Child(2))
	default:
		return false
	}
}
