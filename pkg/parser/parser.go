// Package parser turns R-style surface syntax into expression trees built
// through the validating constructors of pkg/ast. The grammar covers the
// shapes the renderer can emit: atomic literals, names (plain or
// backquoted), calls with positional and keyword arguments, the operator
// set of ast's shared table, braced blocks, conditionals, and function
// literals with formal-parameter lists.
package parser

import (
	"math"
	"strconv"

	"rlang/expr-go/pkg/ast"
)

// Parse consumes the entire source text as a single expression. Surrounding
// blank lines are ignored; anything after the expression is an error.
func Parse(src string) (ast.Expr, error) {
	tokens, err := newLexer(src).scan()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	p.skipSeparators()
	expr, err := p.parseExpr(ast.PrecAssign)
	if err != nil {
		return nil, err
	}
	p.skipSeparators()
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, errorAt(tok.line, tok.column, "unexpected %s after expression", tok.describe())
	}
	return expr, nil
}

type parser struct {
	tokens []token
	pos    int

	// groupDepth counts enclosing parentheses; newlines are insignificant
	// inside a group and terminate expressions outside one.
	groupDepth int

	// bareLiteral marks that the expression just produced was a numeric
	// literal straight from a token, so a preceding "-" folds into a
	// negative constant instead of a unary call.
	bareLiteral bool
}

func (p *parser) peek() token {
	pos := p.pos
	for p.groupDepth > 0 && p.tokens[pos].kind == tokNewline {
		pos++
	}
	return p.tokens[pos]
}

func (p *parser) next() token {
	tok := p.peek()
	for p.tokens[p.pos].kind == tokNewline && p.groupDepth > 0 {
		p.pos++
	}
	if p.tokens[p.pos].kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	tok := p.peek()
	if tok.kind != kind {
		return token{}, errorAt(tok.line, tok.column, "expected %s, found %s", what, tok.describe())
	}
	return p.next(), nil
}

func (p *parser) skipSeparators() {
	for {
		switch p.tokens[p.pos].kind {
		case tokNewline, tokSemicolon:
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp {
			return left, nil
		}
		info, ok := ast.BinaryOp(tok.text)
		if !ok || info.Prec < minPrec {
			return left, nil
		}
		p.next()
		var right ast.Expr
		if tok.text == "$" {
			right, err = p.parseMemberName()
		} else {
			nextMin := info.Prec + 1
			if info.RightAssoc {
				nextMin = info.Prec
			}
			right, err = p.parseExpr(nextMin)
		}
		if err != nil {
			return nil, err
		}
		left, err = p.newCall(tok, ast.ID(tok.text), []ast.Arg{ast.Pos(left), ast.Pos(right)})
		if err != nil {
			return nil, err
		}
		p.bareLiteral = false
	}
}

// parseMemberName handles the right-hand side of "$", which is always a
// name, never an arbitrary expression.
func (p *parser) parseMemberName() (ast.Expr, error) {
	tok := p.peek()
	switch {
	case tok.kind == tokIdent:
		p.next()
		return p.newName(tok)
	case tok.kind >= tokIf && tok.kind <= tokInf:
		// Keywords are legal member names: x$if, x$function.
		p.next()
		return p.newName(tok)
	default:
		return nil, errorAt(tok.line, tok.column, "expected member name after '$', found %s", tok.describe())
	}
}

func (p *parser) parseUnary() (ast.Expr, error) {
	tok := p.peek()
	if tok.kind == tokOp {
		if prec, ok := ast.UnaryOp(tok.text); ok {
			p.next()
			operand, err := p.parseExpr(prec)
			if err != nil {
				return nil, err
			}
			if tok.text == "-" && p.bareLiteral {
				if folded, ok := negateConstant(operand); ok {
					p.bareLiteral = false
					return folded, nil
				}
			}
			p.bareLiteral = false
			return p.newCall(tok, ast.ID(tok.text), []ast.Arg{ast.Pos(operand)})
		}
	}
	return p.parsePostfix()
}

func negateConstant(e ast.Expr) (ast.Expr, bool) {
	c, ok := e.(*ast.Constant)
	if !ok {
		return nil, false
	}
	switch c.Value.Kind() {
	case ast.ValueInt:
		return ast.Int(-c.Value.Int()), true
	case ast.ValueFloat:
		return ast.Flt(-c.Value.Float()), true
	default:
		return nil, false
	}
}

func (p *parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokLParen {
		open := p.peek()
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		expr, err = p.newCall(open, expr, args)
		if err != nil {
			return nil, err
		}
		p.bareLiteral = false
	}
	return expr, nil
}

func (p *parser) parseArguments() ([]ast.Arg, error) {
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	p.groupDepth++
	defer func() { p.groupDepth-- }()
	var args []ast.Arg
	if p.peek().kind == tokRParen {
		p.next()
		return args, nil
	}
	for {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tok := p.peek()
		switch tok.kind {
		case tokComma:
			p.next()
		case tokRParen:
			p.next()
			return args, nil
		default:
			return nil, errorAt(tok.line, tok.column, "expected ',' or ')' in argument list, found %s", tok.describe())
		}
	}
}

func (p *parser) parseArgument() (ast.Arg, error) {
	tok := p.peek()
	if tok.kind == tokIdent && p.tokens[p.posAfterPeek()].kind == tokEquals {
		p.next()
		p.next()
		value, err := p.parseExpr(ast.PrecAssign)
		if err != nil {
			return ast.Arg{}, err
		}
		return ast.Named(tok.text, value), nil
	}
	value, err := p.parseExpr(ast.PrecAssign)
	if err != nil {
		return ast.Arg{}, err
	}
	return ast.Pos(value), nil
}

// posAfterPeek returns the index of the token following the one peek() would
// return, skipping insignificant newlines.
func (p *parser) posAfterPeek() int {
	pos := p.pos
	for p.groupDepth > 0 && p.tokens[pos].kind == tokNewline {
		pos++
	}
	pos++
	for p.groupDepth > 0 && p.tokens[pos].kind == tokNewline {
		pos++
	}
	return pos
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()
	p.bareLiteral = false
	switch tok.kind {
	case tokNumber:
		p.next()
		return p.parseNumber(tok)
	case tokString:
		p.next()
		unquoted, err := strconv.Unquote(tok.text)
		if err != nil {
			return nil, errorAt(tok.line, tok.column, "invalid string literal %s", tok.text)
		}
		return ast.Str(unquoted), nil
	case tokTrue:
		p.next()
		return ast.Bool(true), nil
	case tokFalse:
		p.next()
		return ast.Bool(false), nil
	case tokNaN:
		p.next()
		p.bareLiteral = true
		return ast.Flt(math.NaN()), nil
	case tokInf:
		p.next()
		p.bareLiteral = true
		return ast.Flt(math.Inf(1)), nil
	case tokIdent:
		p.next()
		return p.newName(tok)
	case tokLParen:
		p.next()
		p.groupDepth++
		expr, err := p.parseExpr(ast.PrecAssign)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		p.groupDepth--
		// A parenthesized literal is no longer bare: -(5) stays a call.
		p.bareLiteral = false
		return expr, nil
	case tokLBrace:
		return p.parseBlock()
	case tokIf:
		return p.parseIf()
	case tokFunction:
		return p.parseFunction()
	default:
		return nil, errorAt(tok.line, tok.column, "unexpected %s", tok.describe())
	}
}

func (p *parser) parseNumber(tok token) (ast.Expr, error) {
	if tok.isInt {
		value, err := strconv.ParseInt(tok.text, 10, 64)
		if err == nil {
			p.bareLiteral = true
			return ast.Int(value), nil
		}
		// Falls through for literals wider than int64.
	}
	value, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return nil, errorAt(tok.line, tok.column, "invalid number literal %q", tok.text)
	}
	p.bareLiteral = true
	return ast.Flt(value), nil
}

func (p *parser) parseBlock() (ast.Expr, error) {
	open, err := p.expect(tokLBrace, "'{'")
	if err != nil {
		return nil, err
	}
	var stmts []ast.Arg
	for {
		p.skipSeparators()
		if p.peek().kind == tokRBrace {
			p.next()
			return p.newCall(open, ast.ID("{"), stmts)
		}
		if p.peek().kind == tokEOF {
			return nil, errorAt(open.line, open.column, "unterminated block")
		}
		stmt, err := p.parseExpr(ast.PrecAssign)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, ast.Pos(stmt))
		switch tok := p.tokens[p.pos]; tok.kind {
		case tokNewline, tokSemicolon, tokRBrace, tokEOF:
		default:
			return nil, errorAt(tok.line, tok.column, "expected ';', newline, or '}' after block statement, found %s", tok.describe())
		}
	}
}

func (p *parser) parseIf() (ast.Expr, error) {
	kw, err := p.expect(tokIf, "'if'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen, "'(' after 'if'"); err != nil {
		return nil, err
	}
	p.groupDepth++
	cond, err := p.parseExpr(ast.PrecAssign)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	p.groupDepth--
	then, err := p.parseExpr(ast.PrecAssign)
	if err != nil {
		return nil, err
	}
	args := []ast.Arg{ast.Pos(cond), ast.Pos(then)}
	if p.peek().kind == tokElse {
		p.next()
		alt, err := p.parseExpr(ast.PrecAssign)
		if err != nil {
			return nil, err
		}
		args = append(args, ast.Pos(alt))
	}
	return p.newCall(kw, ast.ID("if"), args)
}

func (p *parser) parseFunction() (ast.Expr, error) {
	kw, err := p.expect(tokFunction, "'function'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen, "'(' after 'function'"); err != nil {
		return nil, err
	}
	p.groupDepth++
	var params []ast.Param
	if p.peek().kind == tokRParen {
		p.next()
		p.groupDepth--
	} else {
		for {
			tok := p.peek()
			if tok.kind != tokIdent {
				return nil, errorAt(tok.line, tok.column, "expected parameter name, found %s", tok.describe())
			}
			p.next()
			param := ast.Param{Name: tok.text}
			if p.peek().kind == tokEquals {
				p.next()
				def, err := p.parseExpr(ast.PrecAssign)
				if err != nil {
					return nil, err
				}
				param.Default = def
			}
			params = append(params, param)
			sep := p.peek()
			if sep.kind == tokComma {
				p.next()
				continue
			}
			if sep.kind == tokRParen {
				p.next()
				p.groupDepth--
				break
			}
			return nil, errorAt(sep.line, sep.column, "expected ',' or ')' in parameter list, found %s", sep.describe())
		}
	}
	formals, err := ast.NewParamList(params)
	if err != nil {
		return nil, p.wrapConstructError(kw, err)
	}
	body, err := p.parseExpr(ast.PrecAssign)
	if err != nil {
		return nil, err
	}
	return p.newCall(kw, ast.ID("function"), []ast.Arg{ast.Pos(formals), ast.Pos(body)})
}

func (p *parser) newName(tok token) (ast.Expr, error) {
	name, err := ast.NewName(tok.text)
	if err != nil {
		return nil, p.wrapConstructError(tok, err)
	}
	return name, nil
}

func (p *parser) newCall(tok token, callee ast.Expr, args []ast.Arg) (ast.Expr, error) {
	call, err := ast.NewCall(callee, args)
	if err != nil {
		return nil, p.wrapConstructError(tok, err)
	}
	return call, nil
}

func (p *parser) wrapConstructError(tok token, err error) error {
	return errorAt(tok.line, tok.column, "%s", err.Error())
}
