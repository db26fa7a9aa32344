package parser

import (
	"errors"
	"fmt"

	"github.com/reusee/myndra/ast"
	"github.com/reusee/myndra/lexer"
)

// errSyntax unwinds to the nearest statement boundary; the diagnostic is already recorded.
var errSyntax = errors.New("syntax error")

type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []string
	// number of enclosing blocks, used to stop recovery before a closing brace
	depth int
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse builds a Program from tokens. The returned program holds every statement that parsed
// successfully, even when diagnostics were recorded.
func Parse(tokens []lexer.Token) (*ast.Program, []string) {
	p := New(tokens)
	program := p.ParseProgram()
	return program, p.Errors()
}

func (p *Parser) HasErrors() bool {
	return len(p.errors) > 0
}

func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) ParseProgram() *ast.Program {
	program := new(ast.Program)
	for {
		p.skipNewlines()
		if p.atEnd() {
			break
		}
		stmt, err := p.parseDeclaration()
		if err != nil {
			p.synchronize()
			continue
		}
		program.Stmts = append(program.Stmts, stmt)
	}
	return program
}

func (p *Parser) peekToken(offset int) lexer.Token {
	idx := p.current + offset
	if idx >= len(p.tokens) {
		var pos lexer.Pos
		if len(p.tokens) > 0 {
			pos = p.tokens[len(p.tokens)-1].Pos
		}
		return lexer.Token{Kind: lexer.TokenEOF, Pos: pos}
	}
	return p.tokens[idx]
}

func (p *Parser) currentToken() lexer.Token {
	return p.peekToken(0)
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return p.currentToken()
	}
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.currentToken().Kind == lexer.TokenEOF
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	if p.atEnd() {
		return false
	}
	return p.currentToken().Kind == kind
}

func (p *Parser) match(kinds ...lexer.TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind lexer.TokenKind, message string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return p.currentToken(), p.errorAt(p.currentToken(), message)
}

func (p *Parser) skipNewlines() {
	for p.match(lexer.TokenNewline) {
	}
}

func (p *Parser) errorAt(token lexer.Token, message string) error {
	p.errors = append(p.errors, fmt.Sprintf("%s: %s (got '%s')", token.Pos, message, token.Lexeme))
	return errSyntax
}

// synchronize discards tokens until a statement boundary: just after a semicolon, or before a
// token that starts a declaration or statement. Inside a block it also stops before '}'.
func (p *Parser) synchronize() {
	if p.depth > 0 && p.check(lexer.TokenRightBrace) {
		return
	}
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == lexer.TokenSemicolon {
			return
		}
		switch p.currentToken().Kind {
		case lexer.TokenFn,
			lexer.TokenLet,
			lexer.TokenIf,
			lexer.TokenWhile,
			lexer.TokenFor,
			lexer.TokenReturn:
			return
		case lexer.TokenRightBrace:
			if p.depth > 0 {
				return
			}
		}
		p.advance()
	}
}
