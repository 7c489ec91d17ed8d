package parser

import (
	"github.com/cxfuzzy/cxfuzzy/internal/ast"
	"github.com/cxfuzzy/cxfuzzy/internal/token"
)

// Parse fuzzily parses a complete token stream into a TranslationUnit.
// It never fails: every token not claimed by some recognized
// construct ends up inside an UnparsableBlock, and parsing always
// terminates because every call to ParseAny consumes at least one
// token (spec.md §4.8).
func Parse(tokens []token.Token) *ast.TranslationUnit {
	c := NewCursor(tokens)
	tu := &ast.TranslationUnit{}
	for c.Peek() != nil {
		tu.AddStmt(ParseAny(c, false))
	}
	return tu
}
