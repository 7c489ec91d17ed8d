package ast

import "github.com/cxfuzzy/cxfuzzy/internal/token"

// CompoundStmt is a '{' ... '}' block owning an ordered sequence of
// child statements. RBrace is nil when the block was never closed
// (spec.md §8 boundary case: "Unterminated compound statement").
type CompoundStmt struct {
	LBrace *token.Token
	RBrace *token.Token
	Body   []Stmt
}

func (s *CompoundStmt) Kind() NodeKind   { return KindCompoundStmt }
func (s *CompoundStmt) ASTClass() string { return astClass(s.Kind()) }
func (s *CompoundStmt) stmtNode()        {}

// NewCompoundStmt claims lbrace and returns the owning node.
func NewCompoundStmt(lbrace *token.Token) *CompoundStmt {
	c := &CompoundStmt{LBrace: lbrace}
	lbrace.Ref = c
	return c
}

// AddStmt appends one child statement.
func (s *CompoundStmt) AddStmt(stmt Stmt) { s.Body = append(s.Body, stmt) }

// SetRightBrace claims the closing brace.
func (s *CompoundStmt) SetRightBrace(tok *token.Token) {
	s.RBrace = tok
	tok.Ref = s
}

// DeclStmt is one or more variable declarations sharing a leading
// type, comma-separated, terminated by a semicolon.
type DeclStmt struct {
	Decls  []*VarDecl
	Commas []*token.Token
	Semi   *token.Token
}

func (s *DeclStmt) Kind() NodeKind   { return KindDeclStmt }
func (s *DeclStmt) ASTClass() string { return astClass(s.Kind()) }
func (s *DeclStmt) stmtNode()        {}

// AddDecl appends one already-parsed declarator.
func (s *DeclStmt) AddDecl(d *VarDecl) { s.Decls = append(s.Decls, d) }

// AppendComma claims a comma separating declarators.
func (s *DeclStmt) AppendComma(tok *token.Token) {
	s.Commas = append(s.Commas, tok)
	tok.Ref = s
}

// SetSemi claims the terminating semicolon.
func (s *DeclStmt) SetSemi(tok *token.Token) {
	s.Semi = tok
	tok.Ref = s
}

// ReturnStmt is `return <expr>? ;`.
type ReturnStmt struct {
	Return *token.Token
	Value  Expr
	Semi   *token.Token
}

func (s *ReturnStmt) Kind() NodeKind   { return KindReturnStmt }
func (s *ReturnStmt) ASTClass() string { return astClass(s.Kind()) }
func (s *ReturnStmt) stmtNode()        {}

// NewReturnStmt claims the 'return' keyword and the semicolon.
func NewReturnStmt(ret *token.Token, value Expr, semi *token.Token) *ReturnStmt {
	r := &ReturnStmt{Return: ret, Value: value, Semi: semi}
	ret.Ref = r
	semi.Ref = r
	return r
}

// LabelStmt is an identifier or access specifier followed by a colon.
type LabelStmt struct {
	Name  *token.Token
	Colon *token.Token
}

func (s *LabelStmt) Kind() NodeKind   { return KindLabelStmt }
func (s *LabelStmt) ASTClass() string { return astClass(s.Kind()) }
func (s *LabelStmt) stmtNode()        {}

// NewLabelStmt claims both tokens.
func NewLabelStmt(name, colon *token.Token) *LabelStmt {
	l := &LabelStmt{Name: name, Colon: colon}
	name.Ref = l
	colon.Ref = l
	return l
}

// ExprLineStmt is an expression followed by a semicolon.
type ExprLineStmt struct {
	Value Expr
	Semi  *token.Token
}

func (s *ExprLineStmt) Kind() NodeKind   { return KindExprLineStmt }
func (s *ExprLineStmt) ASTClass() string { return astClass(s.Kind()) }
func (s *ExprLineStmt) stmtNode()        {}

// NewExprLineStmt claims the semicolon.
func NewExprLineStmt(value Expr, semi *token.Token) *ExprLineStmt {
	e := &ExprLineStmt{Value: value, Semi: semi}
	semi.Ref = e
	return e
}

// UnparsableBlock is a bounded run of tokens salvaged when no
// recognizer matched. Per spec.md invariant 5, tokens inside an
// UnparsableBlock intentionally carry no semantic role even though
// their back-reference does point here (for coverage purposes).
type UnparsableBlock struct {
	Tokens []*token.Token
}

func (s *UnparsableBlock) Kind() NodeKind   { return KindUnparsableBlock }
func (s *UnparsableBlock) ASTClass() string { return astClass(s.Kind()) }
func (s *UnparsableBlock) stmtNode()        {}

// Push claims and appends one token to the salvage run.
func (s *UnparsableBlock) Push(tok *token.Token) {
	tok.Ref = s
	s.Tokens = append(s.Tokens, tok)
}

// TranslationUnit is the root of the parsed tree: an ordered sequence
// of top-level statements.
type TranslationUnit struct {
	Stmts []Stmt
}

// AddStmt appends one top-level statement.
func (tu *TranslationUnit) AddStmt(s Stmt) { tu.Stmts = append(tu.Stmts, s) }
