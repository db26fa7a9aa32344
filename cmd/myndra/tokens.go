package main

import (
	"io"

	"github.com/reusee/myndra/lexer"
	"gopkg.in/yaml.v3"
)

type tokenRecord struct {
	Kind    string `yaml:"kind"`
	Lexeme  string `yaml:"lexeme,omitempty"`
	Literal any    `yaml:"literal,omitempty"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
}

func writeTokens(w io.Writer, tokens []lexer.Token) error {
	records := make([]tokenRecord, 0, len(tokens))
	for _, token := range tokens {
		records = append(records, tokenRecord{
			Kind:    token.Kind.String(),
			Lexeme:  token.Lexeme,
			Literal: token.Literal,
			Line:    token.Pos.Line,
			Column:  token.Pos.Column,
		})
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return err
	}
	return encoder.Close()
}
