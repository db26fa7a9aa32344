package parser

import (
	"github.com/reusee/myndra/ast"
	"github.com/reusee/myndra/lexer"
)

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseAssignment()
}

// assignment is right-associative and only legal on identifiers
func (p *Parser) parseAssignment() (ast.Expr, error) {
	expr, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}

	if p.match(lexer.TokenAssign) {
		equals := p.previous()
		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if _, ok := expr.(*ast.Identifier); ok {
			return &ast.BinaryExpr{
				Pos:   expr.Position(),
				Left:  expr,
				Op:    ast.OpAssign,
				Right: value,
			}, nil
		}
		// recorded only; parsing continues with the right-hand side
		p.errorAt(equals, "Invalid assignment target")
		return value, nil
	}

	return expr, nil
}

// binary precedence levels, lowest first
var binaryLevels = [][]struct {
	kind lexer.TokenKind
	op   ast.BinaryOp
}{
	{
		{lexer.TokenOr, ast.OpOr},
	},
	{
		{lexer.TokenAnd, ast.OpAnd},
	},
	{
		{lexer.TokenEqual, ast.OpEq},
		{lexer.TokenNotEqual, ast.OpNe},
	},
	{
		{lexer.TokenLess, ast.OpLt},
		{lexer.TokenLessEqual, ast.OpLe},
		{lexer.TokenGreater, ast.OpGt},
		{lexer.TokenGreaterEqual, ast.OpGe},
	},
	{
		{lexer.TokenPlus, ast.OpAdd},
		{lexer.TokenMinus, ast.OpSub},
	},
	{
		{lexer.TokenStar, ast.OpMul},
		{lexer.TokenSlash, ast.OpDiv},
		{lexer.TokenPercent, ast.OpMod},
	},
}

// parseBinary parses a left-associative chain at the given level.
func (p *Parser) parseBinary(level int) (ast.Expr, error) {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}

	expr, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}

loop:
	for {
		kind := p.currentToken().Kind
		for _, candidate := range binaryLevels[level] {
			if candidate.kind != kind {
				continue
			}
			p.advance()
			right, err := p.parseBinary(level + 1)
			if err != nil {
				return nil, err
			}
			expr = &ast.BinaryExpr{
				Pos:   expr.Position(),
				Left:  expr,
				Op:    candidate.op,
				Right: right,
			}
			continue loop
		}
		break
	}

	return expr, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	var op ast.UnaryOp
	switch p.currentToken().Kind {
	case lexer.TokenNot:
		op = ast.OpNot
	case lexer.TokenMinus:
		op = ast.OpNeg
	case lexer.TokenPlus:
		op = ast.OpPlus
	default:
		return p.parseCall()
	}
	opToken := p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{
		Pos:     opToken.Pos,
		Op:      op,
		Operand: operand,
	}, nil
}

func (p *Parser) parseCall() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {

		case p.match(lexer.TokenLeftParen):
			expr, err = p.finishCall(expr)

		case p.match(lexer.TokenLeftBracket):
			expr, err = p.finishIndex(expr)

		// '..' is the range operator, not a member access
		case p.check(lexer.TokenDot) && p.peekToken(1).Kind != lexer.TokenDot:
			p.advance()
			expr, err = p.finishMember(expr)

		default:
			if p.isContextConditional() {
				return p.parseContextConditional(expr)
			}
			return expr, nil
		}

		if err != nil {
			return nil, err
		}
	}
}

// isContextConditional looks for `if <identifier> == <string>` after a postfix chain.
// `context` is a keyword, so it is accepted alongside plain identifiers.
func (p *Parser) isContextConditional() bool {
	if !p.check(lexer.TokenIf) {
		return false
	}
	switch p.peekToken(1).Kind {
	case lexer.TokenIdentifier, lexer.TokenContext:
	default:
		return false
	}
	return p.peekToken(2).Kind == lexer.TokenEqual
}

func (p *Parser) parseContextConditional(expr ast.Expr) (ast.Expr, error) {
	p.advance() // if
	p.advance() // context name
	p.advance() // ==
	token, err := p.consume(lexer.TokenString, `Expected context string ("dev", "prod", or "test")`)
	if err != nil {
		return nil, err
	}
	return &ast.ContextConditional{
		Pos:     expr.Position(),
		Expr:    expr,
		Context: token.Literal.(string),
	}, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.TokenRightParen) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.TokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.TokenRightParen, "Expect ')' after arguments"); err != nil {
		return nil, err
	}
	return &ast.CallExpr{
		Pos:    callee.Position(),
		Callee: callee,
		Args:   args,
	}, nil
}

func (p *Parser) finishIndex(base ast.Expr) (ast.Expr, error) {
	index, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenRightBracket, "Expect ']' after array index"); err != nil {
		return nil, err
	}
	return &ast.IndexExpr{
		Pos:   base.Position(),
		Base:  base,
		Index: index,
	}, nil
}

func (p *Parser) finishMember(base ast.Expr) (ast.Expr, error) {
	name, err := p.consume(lexer.TokenIdentifier, "Expect property name after '.'")
	if err != nil {
		return nil, err
	}
	return &ast.MemberExpr{
		Pos:    base.Position(),
		Base:   base,
		Member: name.Lexeme,
	}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	token := p.currentToken()
	switch token.Kind {

	case lexer.TokenBoolean:
		p.advance()
		return &ast.BooleanLiteral{Pos: token.Pos, Value: token.Literal.(bool)}, nil

	case lexer.TokenInteger:
		p.advance()
		return &ast.IntegerLiteral{Pos: token.Pos, Value: token.Literal.(int64)}, nil

	case lexer.TokenFloat:
		p.advance()
		return &ast.FloatLiteral{Pos: token.Pos, Value: token.Literal.(float64)}, nil

	case lexer.TokenString:
		p.advance()
		return &ast.StringLiteral{Pos: token.Pos, Value: token.Literal.(string)}, nil

	case lexer.TokenIdentifier:
		p.advance()
		return &ast.Identifier{Pos: token.Pos, Name: token.Lexeme}, nil

	case lexer.TokenLeftParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.TokenRightParen, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, p.errorAt(token, "Expect expression")
}
