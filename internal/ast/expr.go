package ast

import "github.com/cxfuzzy/cxfuzzy/internal/token"

// LiteralConstant is a single literal or boolean/null-keyword token.
type LiteralConstant struct {
	Tok *token.Token
}

func (e *LiteralConstant) Kind() NodeKind   { return KindLiteralConstant }
func (e *LiteralConstant) ASTClass() string { return astClass(e.Kind()) }
func (e *LiteralConstant) exprNode()        {}

// NewLiteralConstant claims tok and returns the owning node.
func NewLiteralConstant(tok *token.Token) *LiteralConstant {
	lc := &LiteralConstant{Tok: tok}
	tok.Ref = lc
	return lc
}

// DeclRefExpr is a qualified name: a sequence of name-qualifier tokens
// (identifiers and '::') plus an optional template-argument list.
type DeclRefExpr struct {
	NameQualifiers []*token.Token
	TemplateTokens []*token.Token
	TemplateArgs   []TemplateArg
}

func (e *DeclRefExpr) Kind() NodeKind   { return KindDeclRefExpr }
func (e *DeclRefExpr) ASTClass() string { return astClass(e.Kind()) }
func (e *DeclRefExpr) exprNode()        {}

// AddNameQualifier appends and claims tok. Satisfies qualSink.
func (e *DeclRefExpr) AddNameQualifier(tok *token.Token) {
	e.NameQualifiers = append(e.NameQualifiers, tok)
	tok.Ref = e
}

// MakeTemplateArgs marks this reference as carrying a template
// argument list. Satisfies qualSink.
func (e *DeclRefExpr) MakeTemplateArgs() {
	if e.TemplateTokens == nil {
		e.TemplateTokens = []*token.Token{}
	}
}

// AddTemplateSeparator appends and claims a '<', ',', or '>' token.
// Satisfies qualSink.
func (e *DeclRefExpr) AddTemplateSeparator(tok *token.Token) {
	e.TemplateTokens = append(e.TemplateTokens, tok)
	tok.Ref = e
}

// AddTemplateArgument appends one parsed template argument. Satisfies
// qualSink.
func (e *DeclRefExpr) AddTemplateArgument(arg TemplateArg) {
	e.TemplateArgs = append(e.TemplateArgs, arg)
}

// CallExpr is a call Callee(Args...), where Callee is always a
// DeclRefExpr (spec.md §3).
type CallExpr struct {
	Callee *DeclRefExpr
	LParen *token.Token
	RParen *token.Token
	Args   []Expr
	Commas []*token.Token
}

func (e *CallExpr) Kind() NodeKind   { return KindCallExpr }
func (e *CallExpr) ASTClass() string { return astClass(e.Kind()) }
func (e *CallExpr) exprNode()        {}

// NewCallExpr claims the left parenthesis and returns the owning node.
// The callee was already claimed by itself as a standalone DeclRefExpr;
// CallExpr re-claims it so the call, not the bare reference, is the
// token's final owner.
func NewCallExpr(callee *DeclRefExpr, lparen *token.Token) *CallExpr {
	c := &CallExpr{Callee: callee, LParen: lparen}
	lparen.Ref = c
	for _, q := range callee.NameQualifiers {
		q.Ref = c
	}
	for _, tt := range callee.TemplateTokens {
		tt.Ref = c
	}
	return c
}

// AppendArg appends one argument expression.
func (e *CallExpr) AppendArg(arg Expr) { e.Args = append(e.Args, arg) }

// AppendComma appends and claims a comma token separating arguments.
func (e *CallExpr) AppendComma(tok *token.Token) {
	e.Commas = append(e.Commas, tok)
	tok.Ref = e
}

// SetRightParen claims the closing parenthesis.
func (e *CallExpr) SetRightParen(tok *token.Token) {
	e.RParen = tok
	tok.Ref = e
}

// UnaryOperator is a prefix operator applied to a single operand.
type UnaryOperator struct {
	Op    *token.Token
	Value Expr
}

func (e *UnaryOperator) Kind() NodeKind   { return KindUnaryOperator }
func (e *UnaryOperator) ASTClass() string { return astClass(e.Kind()) }
func (e *UnaryOperator) exprNode()        {}

// NewUnaryOperator claims op and returns the owning node.
func NewUnaryOperator(op *token.Token, value Expr) *UnaryOperator {
	u := &UnaryOperator{Op: op, Value: value}
	op.Ref = u
	return u
}

// BinaryOperator is a left-to-right pair joined by an infix operator,
// including the synthetic '.'/'->' member-access operators.
type BinaryOperator struct {
	LHS Expr
	RHS Expr
	Op  *token.Token
}

func (e *BinaryOperator) Kind() NodeKind   { return KindBinaryOperator }
func (e *BinaryOperator) ASTClass() string { return astClass(e.Kind()) }
func (e *BinaryOperator) exprNode()        {}

// NewBinaryOperator claims op and returns the owning node.
func NewBinaryOperator(lhs Expr, rhs Expr, op *token.Token) *BinaryOperator {
	b := &BinaryOperator{LHS: lhs, RHS: rhs, Op: op}
	op.Ref = b
	return b
}
