package parser

import (
	"github.com/cxfuzzy/cxfuzzy/internal/ast"
	"github.com/cxfuzzy/cxfuzzy/internal/token"
)

// ParseAny recognizes exactly one top-level or nested statement,
// trying recognizers in the fixed order spec.md §4.6 mandates and
// falling back to skipUnparsable when none match. nameOptional is
// threaded down to the function-declaration recognizer and is true
// only inside a class body (spec.md §4.7), where a constructor or
// destructor declarator may omit its name. ParseAny always returns a
// non-nil Stmt and always makes forward progress, satisfying spec.md
// invariant 4: it is only ever called while the cursor has at least
// one token left.
func ParseAny(c *Cursor, nameOptional bool) ast.Stmt {
	if rs, ok := tryParseReturnStmt(c); ok {
		return rs
	}
	if ds, ok := tryParseDeclStmt(c); ok {
		return ds
	}
	if ls, ok := tryParseLabelStmt(c); ok {
		return ls
	}
	if fd, ok := tryParseFunctionDecl(c, nameOptional); ok {
		return fd
	}
	if cd, ok := tryParseClassDecl(c); ok {
		return cd
	}
	if es, ok := tryParseExprLineStmt(c); ok {
		return es
	}
	return skipUnparsable(c)
}

// tryParseReturnStmt recognizes `return <expr>? ;`.
func tryParseReturnStmt(c *Cursor) (*ast.ReturnStmt, bool) {
	if !c.Check(token.KwReturn) {
		return nil, false
	}
	g := GuardCursor(c)
	ret := c.Next()

	var value ast.Expr
	if !c.Check(token.Semicolon) {
		value = ParseExpression(c)
	}
	if !c.Check(token.Semicolon) {
		g.Abort()
		return nil, false
	}
	semi := c.Next()
	g.Dismiss()
	return ast.NewReturnStmt(ret, value, semi), true
}

// parseCompoundStmt recognizes a brace-delimited scope. It accepts an
// unterminated block (no closing '}' before EOF) per spec.md §8, in
// which case CompoundStmt.RBrace stays nil.
func parseCompoundStmt(c *Cursor) (*ast.CompoundStmt, bool) {
	if !c.Check(token.LBrace) {
		return nil, false
	}
	cs := ast.NewCompoundStmt(c.Next())
	for !c.Check(token.RBrace) {
		if c.Peek() == nil {
			return cs, true
		}
		cs.AddStmt(ParseAny(c, false))
	}
	cs.SetRightBrace(c.Next())
	return cs, true
}

// tryParseLabelStmt recognizes `identifier-or-access-specifier ':'`.
func tryParseLabelStmt(c *Cursor) (*ast.LabelStmt, bool) {
	tok := c.Peek()
	if tok == nil || (tok.Kind != token.Identifier && !isAccessSpecifierKeyword(tok.Kind)) {
		return nil, false
	}
	g := GuardCursor(c)
	name := c.Next()
	if !c.Check(token.Colon) {
		g.Abort()
		return nil, false
	}
	colon := c.Next()
	g.Dismiss()
	return ast.NewLabelStmt(name, colon), true
}

// tryParseExprLineStmt recognizes `<expr> ;`.
func tryParseExprLineStmt(c *Cursor) (*ast.ExprLineStmt, bool) {
	g := GuardCursor(c)
	value := ParseExpression(c)
	if value == nil {
		g.Abort()
		return nil, false
	}
	if !c.Check(token.Semicolon) {
		g.Abort()
		return nil, false
	}
	semi := c.Next()
	g.Dismiss()
	return ast.NewExprLineStmt(value, semi), true
}

// skipUnparsable salvages a run of tokens none of the recognizers
// could make sense of, stopping after the first ';', '{', or '}' it
// sees, or at EOF. It is only ever called with at least one token
// left on the cursor, so the block it returns is always non-empty
// (spec.md invariant 6).
func skipUnparsable(c *Cursor) *ast.UnparsableBlock {
	ub := &ast.UnparsableBlock{}
	for {
		tok := c.Peek()
		if tok == nil {
			return ub
		}
		ub.Push(c.Next())
		switch tok.Kind {
		case token.Semicolon, token.LBrace, token.RBrace:
			return ub
		}
	}
}
