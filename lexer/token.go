package lexer

import "fmt"

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("Line %d, Column %d", p.Line, p.Column)
}

// Token is immutable once produced. Literal is set only for TokenInteger (int64),
// TokenFloat (float64), TokenString (string) and TokenBoolean (bool).
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal any
	Pos     Pos
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}

type TokenKind uint8

const (
	TokenError TokenKind = iota

	// literals
	TokenInteger
	TokenFloat
	TokenString
	TokenBoolean
	TokenNil

	TokenIdentifier

	// keywords
	TokenLet
	TokenMut
	TokenFn
	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenIn
	TokenReturn
	TokenImport
	TokenExport
	TokenWith
	TokenCapabilities
	TokenCapsule
	TokenDSL
	TokenFallback
	TokenRetry
	TokenContext
	TokenOver
	TokenTagKeyword
	TokenDID
	TokenEvolving
	TokenAnd
	TokenOr
	TokenNot

	// reactive, temporal and identity keywords, lexed but never evaluated
	TokenObservable
	TokenSubscribe
	TokenEmit
	TokenTransition
	TokenTimeline
	TokenVerify
	TokenProof
	TokenHasProof

	// execution model annotations
	TokenAtSync
	TokenAtAsync
	TokenAtParallel
	TokenAtReactive
	TokenAtTemporal

	// operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenAssign
	TokenPlusAssign
	TokenMinusAssign
	TokenArrow
	TokenFatArrow
	TokenEqual
	TokenNotEqual
	TokenLess
	TokenLessEqual
	TokenGreater
	TokenGreaterEqual

	// punctuation
	TokenSemicolon
	TokenComma
	TokenDot
	TokenColon
	TokenDoubleColon
	TokenQuestion

	// brackets
	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenLeftBracket
	TokenRightBracket

	// structural
	TokenHash
	TokenTag
	TokenNewline
	TokenComment
	TokenEOF

	numTokenKinds
)

var kindNames = [numTokenKinds]string{
	TokenError:        "ERROR",
	TokenInteger:      "INTEGER",
	TokenFloat:        "FLOAT",
	TokenString:       "STRING",
	TokenBoolean:      "BOOLEAN",
	TokenNil:          "NIL",
	TokenIdentifier:   "IDENTIFIER",
	TokenLet:          "LET",
	TokenMut:          "MUT",
	TokenFn:           "FN",
	TokenIf:           "IF",
	TokenElse:         "ELSE",
	TokenWhile:        "WHILE",
	TokenFor:          "FOR",
	TokenIn:           "IN",
	TokenReturn:       "RETURN",
	TokenImport:       "IMPORT",
	TokenExport:       "EXPORT",
	TokenWith:         "WITH",
	TokenCapabilities: "CAPABILITIES",
	TokenCapsule:      "CAPSULE",
	TokenDSL:          "DSL",
	TokenFallback:     "FALLBACK",
	TokenRetry:        "RETRY",
	TokenContext:      "CONTEXT",
	TokenOver:         "OVER",
	TokenTagKeyword:   "TAG_KEYWORD",
	TokenDID:          "DID",
	TokenEvolving:     "EVOLVING",
	TokenAnd:          "AND",
	TokenOr:           "OR",
	TokenNot:          "NOT",
	TokenObservable:   "OBSERVABLE",
	TokenSubscribe:    "SUBSCRIBE",
	TokenEmit:         "EMIT",
	TokenTransition:   "TRANSITION",
	TokenTimeline:     "TIMELINE",
	TokenVerify:       "VERIFY",
	TokenProof:        "PROOF",
	TokenHasProof:     "HAS_PROOF",
	TokenAtSync:       "@SYNC",
	TokenAtAsync:      "@ASYNC",
	TokenAtParallel:   "@PARALLEL",
	TokenAtReactive:   "@REACTIVE",
	TokenAtTemporal:   "@TEMPORAL",
	TokenPlus:         "PLUS",
	TokenMinus:        "MINUS",
	TokenStar:         "MULTIPLY",
	TokenSlash:        "DIVIDE",
	TokenPercent:      "MODULO",
	TokenAssign:       "ASSIGN",
	TokenPlusAssign:   "PLUS_ASSIGN",
	TokenMinusAssign:  "MINUS_ASSIGN",
	TokenArrow:        "ARROW",
	TokenFatArrow:     "FAT_ARROW",
	TokenEqual:        "EQUAL",
	TokenNotEqual:     "NOT_EQUAL",
	TokenLess:         "LESS",
	TokenLessEqual:    "LESS_EQUAL",
	TokenGreater:      "GREATER",
	TokenGreaterEqual: "GREATER_EQUAL",
	TokenSemicolon:    "SEMICOLON",
	TokenComma:        "COMMA",
	TokenDot:          "DOT",
	TokenColon:        "COLON",
	TokenDoubleColon:  "DOUBLE_COLON",
	TokenQuestion:     "QUESTION",
	TokenLeftParen:    "LEFT_PAREN",
	TokenRightParen:   "RIGHT_PAREN",
	TokenLeftBrace:    "LEFT_BRACE",
	TokenRightBrace:   "RIGHT_BRACE",
	TokenLeftBracket:  "LEFT_BRACKET",
	TokenRightBracket: "RIGHT_BRACKET",
	TokenHash:         "HASH",
	TokenTag:          "TAG",
	TokenNewline:      "NEWLINE",
	TokenComment:      "COMMENT",
	TokenEOF:          "EOF",
}

func (k TokenKind) String() string {
	if k < numTokenKinds && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// MarshalText makes kinds render by name in dumps.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
