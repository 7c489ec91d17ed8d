package main

import (
	"os"

	"github.com/cxfuzzy/cxfuzzy/internal/ast"
	"github.com/cxfuzzy/cxfuzzy/internal/lexer"
	"github.com/cxfuzzy/cxfuzzy/internal/parser"
	"github.com/cxfuzzy/cxfuzzy/internal/token"
)

// lexAndParse reads path, tokenizes it, and fuzzily parses the result.
// It never fails to produce a tree; the returned error is only for
// the file read.
func lexAndParse(path string) (*ast.TranslationUnit, []token.Token, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	tokens := lexer.Lex(string(src))
	return parser.Parse(tokens), tokens, nil
}
