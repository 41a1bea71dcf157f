package parser

import (
	"github.com/YuukiARIA/akarin/lang/ast"
	"github.com/YuukiARIA/akarin/lang/token"
)

// expr := assign
func (p *Parser) parseExpr() *ast.Node {
	return p.parseAssign()
}

// assign := or ['=' assign]   -- right-associative
func (p *Parser) parseAssign() *ast.Node {
	left := p.parseOr()
	if p.tok == token.ASSIGN {
		pos := p.val.Pos
		p.advance()
		if !left.IsAssignable() {
			p.error(pos, "left hand side of assignment should be variable or array")
		}
		right := p.parseAssign()
		return ast.NewAssign(left, right)
	}
	return left
}

// or := and { '|' and }
func (p *Parser) parseOr() *ast.Node {
	left := p.parseAnd()
	for p.tok == token.OR {
		p.advance()
		right := p.parseAnd()
		left = ast.NewBinary(ast.OR, left, right)
	}
	return left
}

// and := cmp { '&' cmp }
func (p *Parser) parseAnd() *ast.Node {
	left := p.parseCmp()
	for p.tok == token.AND {
		p.advance()
		right := p.parseCmp()
		left = ast.NewBinary(ast.AND, left, right)
	}
	return left
}

var cmpOps = map[token.Kind]ast.BinaryOp{
	token.EQ: ast.EQ, token.NEQ: ast.NEQ,
	token.LT: ast.LT, token.LE: ast.LE,
	token.GT: ast.GT, token.GE: ast.GE,
}

// cmp := addsub { (== != < <= > >=) addsub }
func (p *Parser) parseCmp() *ast.Node {
	left := p.parseAddSub()
	for {
		op, ok := cmpOps[p.tok]
		if !ok {
			return left
		}
		p.advance()
		right := p.parseAddSub()
		left = ast.NewBinary(op, left, right)
	}
}

// addsub := muldiv { (+ -) muldiv }
func (p *Parser) parseAddSub() *ast.Node {
	left := p.parseMulDiv()
	for p.tok == token.PLUS || p.tok == token.MINUS {
		op := ast.ADD
		if p.tok == token.MINUS {
			op = ast.SUB
		}
		p.advance()
		right := p.parseMulDiv()
		left = ast.NewBinary(op, left, right)
	}
	return left
}

// muldiv := atom { (* / %) atom }
func (p *Parser) parseMulDiv() *ast.Node {
	left := p.parseAtom()
	for p.tok == token.STAR || p.tok == token.SLASH || p.tok == token.PCT {
		var op ast.BinaryOp
		switch p.tok {
		case token.STAR:
			op = ast.MUL
		case token.SLASH:
			op = ast.DIV
		default:
			op = ast.MOD
		}
		p.advance()
		right := p.parseAtom()
		left = ast.NewBinary(op, left, right)
	}
	return left
}

// atom := INTEGER | CHAR
//
//	| '+' atom | '-' atom | '!' atom
//	| IDENT [ '[' expr ']' | '(' args ')' ]
//	| '(' expr ')'
func (p *Parser) parseAtom() *ast.Node {
	pos := p.val.Pos
	switch p.tok {
	case token.INTEGER:
		v := p.val.Int
		p.advance()
		n := ast.NewInteger(v)
		n.Pos = pos
		return n
	case token.CHAR:
		v := p.val.Int
		p.advance()
		n := ast.NewInteger(v)
		n.Pos = pos
		return n
	case token.PLUS:
		p.advance()
		return p.parseAtom() // unary '+' is a no-op (spec.md §4.1)
	case token.MINUS:
		p.advance()
		arg := p.parseAtom()
		n := ast.NewUnary(ast.NEGATIVE, arg)
		n.Pos = pos
		return n
	case token.NOT:
		p.advance()
		arg := p.parseAtom()
		n := ast.NewUnary(ast.NOT, arg)
		n.Pos = pos
		return n
	case token.SYMBOL:
		name := p.identOrPlaceholder()
		switch p.tok {
		case token.LBRACK:
			p.advance()
			idx := p.parseExpr()
			p.expect(token.RBRACK)
			n := ast.NewArray(name, idx)
			n.Pos = pos
			return n
		case token.LPAREN:
			p.advance()
			args := p.parseArgs()
			p.expect(token.RPAREN)
			n := ast.NewFuncCall(name, args)
			n.Pos = pos
			return n
		default:
			n := ast.NewVariable(name)
			n.Pos = pos
			return n
		}
	case token.LPAREN:
		p.advance()
		e := p.parseExpr()
		p.expect(token.RPAREN)
		return e
	default:
		p.errorExpected(token.INTEGER)
		p.advance()
		n := ast.NewInteger(0)
		n.Pos = pos
		return n
	}
}

// args := [expr {',' expr}]
func (p *Parser) parseArgs() *ast.Node {
	arg := ast.New(ast.FUNC_CALL_ARG)
	if p.tok == token.RPAREN {
		return arg
	}
	arg.Add(p.parseExpr())
	for p.tok == token.COMMA {
		p.advance()
		arg.Add(p.parseExpr())
	}
	return arg
}
