package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

type Lexer struct {
	source  []rune
	offset  int
	currPos Pos
	errors  []string
}

func New(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		currPos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// Tokenize lexes a whole source and returns the tokens with the accumulated diagnostics.
func Tokenize(source string) ([]Token, []string) {
	l := New(source)
	tokens := l.Tokenize()
	return tokens, l.Errors()
}

// Tokenize scans until EOF or the first ERROR token. The result always ends with exactly one EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		token := l.next()
		if token.Kind == TokenComment {
			continue
		}
		tokens = append(tokens, token)
		if token.Kind == TokenEOF || token.Kind == TokenError {
			break
		}
	}
	if tokens[len(tokens)-1].Kind != TokenEOF {
		tokens = append(tokens, Token{
			Kind: TokenEOF,
			Pos:  l.currPos,
		})
	}
	return tokens
}

func (l *Lexer) HasErrors() bool {
	return len(l.errors) > 0
}

func (l *Lexer) Errors() []string {
	return l.errors
}

func (l *Lexer) errorf(pos Pos, format string, args ...any) {
	l.errors = append(l.errors, pos.String()+": "+fmt.Sprintf(format, args...))
}

func (l *Lexer) atEnd() bool {
	return l.offset >= len(l.source)
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.source[l.offset]
}

func (l *Lexer) peekNext() rune {
	if l.offset+1 >= len(l.source) {
		return 0
	}
	return l.source[l.offset+1]
}

func (l *Lexer) readRune() rune {
	r := l.source[l.offset]
	l.offset++
	if r == '\n' {
		l.currPos.Line++
		l.currPos.Column = 1
	} else {
		l.currPos.Column++
	}
	return r
}

func (l *Lexer) match(expected rune) bool {
	if l.atEnd() || l.source[l.offset] != expected {
		return false
	}
	l.readRune()
	return true
}

func (l *Lexer) text(start int) string {
	return string(l.source[start:l.offset])
}

func (l *Lexer) next() Token {
	l.skipWhitespace()
	startPos := l.currPos
	start := l.offset

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: startPos}
	}

	switch r := l.peek(); {
	case isDigit(r):
		return l.parseNumber(start, startPos)
	case isAlpha(r):
		return l.parseIdentifier(start, startPos)
	}

	simple := func(kind TokenKind) Token {
		return Token{
			Kind:   kind,
			Lexeme: l.text(start),
			Pos:    startPos,
		}
	}

	r := l.readRune()
	switch r {
	case '(':
		return simple(TokenLeftParen)
	case ')':
		return simple(TokenRightParen)
	case '{':
		return simple(TokenLeftBrace)
	case '}':
		return simple(TokenRightBrace)
	case '[':
		return simple(TokenLeftBracket)
	case ']':
		return simple(TokenRightBracket)
	case ',':
		return simple(TokenComma)
	case '.':
		return simple(TokenDot)
	case ';':
		return simple(TokenSemicolon)
	case '?':
		return simple(TokenQuestion)
	case '*':
		return simple(TokenStar)
	case '%':
		return simple(TokenPercent)
	case '\n':
		return simple(TokenNewline)

	case '+':
		if l.match('=') {
			return simple(TokenPlusAssign)
		}
		return simple(TokenPlus)
	case '-':
		if l.match('=') {
			return simple(TokenMinusAssign)
		}
		if l.match('>') {
			return simple(TokenArrow)
		}
		return simple(TokenMinus)
	case '!':
		if l.match('=') {
			return simple(TokenNotEqual)
		}
		return simple(TokenNot)
	case '=':
		if l.match('=') {
			return simple(TokenEqual)
		}
		if l.match('>') {
			return simple(TokenFatArrow)
		}
		return simple(TokenAssign)
	case '<':
		if l.match('=') {
			return simple(TokenLessEqual)
		}
		return simple(TokenLess)
	case '>':
		if l.match('=') {
			return simple(TokenGreaterEqual)
		}
		return simple(TokenGreater)
	case ':':
		if l.match(':') {
			return simple(TokenDoubleColon)
		}
		return simple(TokenColon)

	case '/':
		if l.match('/') {
			l.skipLineComment()
			return simple(TokenComment)
		}
		if l.match('*') {
			l.skipBlockComment()
			return simple(TokenComment)
		}
		return simple(TokenSlash)

	case '#':
		if isAlpha(l.peek()) {
			for isAlnum(l.peek()) || l.peek() == ':' {
				l.readRune()
			}
			return simple(TokenTag)
		}
		return simple(TokenHash)

	case '@':
		for isAlnum(l.peek()) {
			l.readRune()
		}
		text := l.text(start)
		if kind, ok := LookupAnnotation(text); ok {
			return simple(kind)
		}
		l.errorf(startPos, "Unknown annotation: %s", text)
		return simple(TokenError)

	case '"':
		return l.parseString(start, startPos)
	}

	l.errorf(startPos, "Unexpected character: %c", r)
	return simple(TokenError)
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.readRune()
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.readRune()
	}
}

// block comments do not nest; an unclosed one runs to the end of input
func (l *Lexer) skipBlockComment() {
	for !l.atEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.readRune()
			l.readRune()
			return
		}
		l.readRune()
	}
}

func (l *Lexer) parseString(start int, startPos Pos) Token {
	var sb strings.Builder
	for {
		if l.atEnd() {
			l.errorf(startPos, "Unterminated string")
			return Token{
				Kind:   TokenError,
				Lexeme: l.text(start),
				Pos:    startPos,
			}
		}
		r := l.readRune()
		if r == '"' {
			break
		}
		if r != '\\' {
			sb.WriteRune(r)
			continue
		}
		if l.atEnd() {
			continue
		}
		escPos := l.currPos
		escaped := l.readRune()
		switch escaped {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		default:
			l.errorf(escPos, "Unknown escape sequence: \\%c", escaped)
			sb.WriteRune(escaped)
		}
	}
	return Token{
		Kind:    TokenString,
		Lexeme:  l.text(start),
		Literal: sb.String(),
		Pos:     startPos,
	}
}

// a '.' not followed by a digit is left for the range operator
func (l *Lexer) parseNumber(start int, startPos Pos) Token {
	for isDigit(l.peek()) {
		l.readRune()
	}
	isFloat := false
	if l.peek() == '.' && isDigit(l.peekNext()) {
		isFloat = true
		l.readRune()
		for isDigit(l.peek()) {
			l.readRune()
		}
	}
	text := l.text(start)

	if isFloat {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.errorf(startPos, "Invalid float literal: %s", text)
			return Token{Kind: TokenError, Lexeme: text, Pos: startPos}
		}
		return Token{
			Kind:    TokenFloat,
			Lexeme:  text,
			Literal: value,
			Pos:     startPos,
		}
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.errorf(startPos, "Integer literal out of range: %s", text)
		return Token{Kind: TokenError, Lexeme: text, Pos: startPos}
	}
	return Token{
		Kind:    TokenInteger,
		Lexeme:  text,
		Literal: value,
		Pos:     startPos,
	}
}

func (l *Lexer) parseIdentifier(start int, startPos Pos) Token {
	for isAlnum(l.peek()) {
		l.readRune()
	}
	text := l.text(start)

	kind, ok := LookupKeyword(text)
	if !ok {
		return Token{
			Kind:   TokenIdentifier,
			Lexeme: text,
			Pos:    startPos,
		}
	}
	token := Token{
		Kind:   kind,
		Lexeme: text,
		Pos:    startPos,
	}
	if kind == TokenBoolean {
		token.Literal = text == "true"
	}
	return token
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func isAlnum(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
