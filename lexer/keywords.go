package lexer

// read-only after package initialization
var keywords = map[string]TokenKind{
	"let":          TokenLet,
	"mut":          TokenMut,
	"fn":           TokenFn,
	"if":           TokenIf,
	"else":         TokenElse,
	"while":        TokenWhile,
	"for":          TokenFor,
	"in":           TokenIn,
	"return":       TokenReturn,
	"import":       TokenImport,
	"export":       TokenExport,
	"with":         TokenWith,
	"capabilities": TokenCapabilities,
	"capsule":      TokenCapsule,
	"dsl":          TokenDSL,
	"fallback":     TokenFallback,
	"retry":        TokenRetry,
	"context":      TokenContext,
	"over":         TokenOver,
	"tag":          TokenTagKeyword,
	"did":          TokenDID,
	"evolving":     TokenEvolving,
	"true":         TokenBoolean,
	"false":        TokenBoolean,
	"nil":          TokenNil,
	"and":          TokenAnd,
	"or":           TokenOr,
	"not":          TokenNot,
	"observable":   TokenObservable,
	"subscribe":    TokenSubscribe,
	"emit":         TokenEmit,
	"transition":   TokenTransition,
	"timeline":     TokenTimeline,
	"verify":       TokenVerify,
	"proof":        TokenProof,
	"has_proof":    TokenHasProof,
}

var annotations = map[string]TokenKind{
	"@sync":     TokenAtSync,
	"@async":    TokenAtAsync,
	"@parallel": TokenAtParallel,
	"@reactive": TokenAtReactive,
	"@temporal": TokenAtTemporal,
}

// LookupKeyword reports the keyword kind for an exact spelling.
func LookupKeyword(text string) (TokenKind, bool) {
	kind, ok := keywords[text]
	return kind, ok
}

func LookupAnnotation(text string) (TokenKind, bool) {
	kind, ok := annotations[text]
	return kind, ok
}
