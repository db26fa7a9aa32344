package parser

import (
	"github.com/reusee/myndra/ast"
	"github.com/reusee/myndra/lexer"
)

func (p *Parser) parseDeclaration() (ast.Stmt, error) {
	switch {
	case p.match(lexer.TokenFn):
		return p.parseFunction()
	case p.match(lexer.TokenLet):
		return p.parseVarDecl()
	}
	return p.parseStatement()
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch {
	case p.match(lexer.TokenIf):
		return p.parseIf()
	case p.match(lexer.TokenWhile):
		return p.parseWhile()
	case p.match(lexer.TokenFor):
		return p.parseFor()
	case p.match(lexer.TokenReturn):
		return p.parseReturn()
	case p.match(lexer.TokenLeftBrace):
		return p.parseBlock()
	}
	return p.parseExprStmt()
}

func (p *Parser) parseType() (string, error) {
	token, err := p.consume(lexer.TokenIdentifier, "Expect type name")
	if err != nil {
		return "", err
	}
	return token.Lexeme, nil
}

func (p *Parser) parseVarDecl() (ast.Stmt, error) {
	decl := &ast.VarDecl{
		Pos: p.previous().Pos,
	}
	decl.Mutable = p.match(lexer.TokenMut)

	name, err := p.consume(lexer.TokenIdentifier, "Expect variable name")
	if err != nil {
		return nil, err
	}
	decl.Name = name.Lexeme

	if p.match(lexer.TokenColon) {
		decl.Type, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	if p.match(lexer.TokenAssign) {
		decl.Init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.TokenSemicolon, "Expect ';' after variable declaration"); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseFunction() (ast.Stmt, error) {
	fn := &ast.FunctionDef{
		Pos: p.previous().Pos,
	}

	name, err := p.consume(lexer.TokenIdentifier, "Expect function name")
	if err != nil {
		return nil, err
	}
	fn.Name = name.Lexeme

	if _, err := p.consume(lexer.TokenLeftParen, "Expect '(' after function name"); err != nil {
		return nil, err
	}
	if !p.check(lexer.TokenRightParen) {
		for {
			param, err := p.consume(lexer.TokenIdentifier, "Expect parameter name")
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.TokenColon, "Expect ':' after parameter name"); err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			fn.Params = append(fn.Params, ast.Param{
				Name: param.Lexeme,
				Type: typ,
			})
			if !p.match(lexer.TokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.TokenRightParen, "Expect ')' after parameters"); err != nil {
		return nil, err
	}

	if p.match(lexer.TokenArrow) {
		fn.ReturnType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.TokenLeftBrace, "Expect '{' before function body"); err != nil {
		return nil, err
	}
	fn.Body, err = p.parseBlock()
	if err != nil {
		return nil, err
	}

	return fn, nil
}

// parseBlock parses statements up to the closing brace; the opening brace is already consumed.
// A malformed statement inside the block is dropped and parsing resumes at the next boundary.
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	block := &ast.BlockStmt{
		Pos: p.previous().Pos,
	}
	p.depth++
	defer func() {
		p.depth--
	}()

	for {
		p.skipNewlines()
		if p.check(lexer.TokenRightBrace) || p.atEnd() {
			break
		}
		stmt, err := p.parseDeclaration()
		if err != nil {
			p.synchronize()
			continue
		}
		block.Stmts = append(block.Stmts, stmt)
	}

	if _, err := p.consume(lexer.TokenRightBrace, "Expect '}' after block"); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	stmt := &ast.IfStmt{
		Pos: p.previous().Pos,
	}
	var err error
	stmt.Cond, err = p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt.Then, err = p.parseStatement()
	if err != nil {
		return nil, err
	}

	// else may start on the next line
	offset := 0
	for p.peekToken(offset).Kind == lexer.TokenNewline {
		offset++
	}
	if p.peekToken(offset).Kind == lexer.TokenElse {
		p.skipNewlines()
		p.advance()
		stmt.Else, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	stmt := &ast.WhileStmt{
		Pos: p.previous().Pos,
	}
	var err error
	stmt.Cond, err = p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt.Body, err = p.parseStatement()
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	stmt := &ast.ForStmt{
		Pos: p.previous().Pos,
	}

	name, err := p.consume(lexer.TokenIdentifier, "Expect variable name after 'for'")
	if err != nil {
		return nil, err
	}
	stmt.Var = name.Lexeme

	if _, err := p.consume(lexer.TokenIn, "Expect 'in' after for loop variable"); err != nil {
		return nil, err
	}

	stmt.Start, err = p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenDot, "Expect '..' in range expression"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenDot, "Expect '..' in range expression"); err != nil {
		return nil, err
	}
	stmt.End, err = p.parseExpression()
	if err != nil {
		return nil, err
	}

	stmt.Body, err = p.parseStatement()
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	stmt := &ast.ReturnStmt{
		Pos: p.previous().Pos,
	}
	if !p.check(lexer.TokenSemicolon) {
		var err error
		stmt.Value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.TokenSemicolon, "Expect ';' after return value"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenSemicolon, "Expect ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{
		Pos:  expr.Position(),
		Expr: expr,
	}, nil
}
