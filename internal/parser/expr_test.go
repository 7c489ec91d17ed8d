package parser

import (
	"testing"

	"github.com/cxfuzzy/cxfuzzy/internal/ast"
	"github.com/cxfuzzy/cxfuzzy/internal/lexer"
	"github.com/cxfuzzy/cxfuzzy/internal/token"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	c := NewCursor(lexer.Lex(src))
	e := ParseExpression(c)
	if e == nil {
		t.Fatalf("ParseExpression(%q) = nil", src)
	}
	return e
}

func TestPrecedenceClimbingMultiplicativeBindsTighter(t *testing.T) {
	// 1 + 2 * 3 should bind as 1 + (2 * 3).
	e := parseExpr(t, "1 + 2 * 3")
	bo, ok := e.(*ast.BinaryOperator)
	if !ok || bo.Op.Kind != token.Plus {
		t.Fatalf("top operator = %#v, want '+'", e)
	}
	rhs, ok := bo.RHS.(*ast.BinaryOperator)
	if !ok || rhs.Op.Kind != token.Star {
		t.Fatalf("rhs = %#v, want '*'", bo.RHS)
	}
}

func TestMemberAccessBindsTighterThanArithmetic(t *testing.T) {
	// a.b + c parses as (a.b) + c.
	e := parseExpr(t, "a.b + c")
	bo, ok := e.(*ast.BinaryOperator)
	if !ok || bo.Op.Kind != token.Plus {
		t.Fatalf("top operator = %#v, want '+'", e)
	}
	lhs, ok := bo.LHS.(*ast.BinaryOperator)
	if !ok || lhs.Op.Kind != token.Period {
		t.Fatalf("lhs = %#v, want '.'", bo.LHS)
	}
}

func TestArrowAndPeriodChainLeftAssociative(t *testing.T) {
	// a->b.c chains as (a->b).c
	e := parseExpr(t, "a->b.c")
	top, ok := e.(*ast.BinaryOperator)
	if !ok || top.Op.Kind != token.Period {
		t.Fatalf("top = %#v, want '.'", e)
	}
	inner, ok := top.LHS.(*ast.BinaryOperator)
	if !ok || inner.Op.Kind != token.Arrow {
		t.Fatalf("inner = %#v, want '->'", top.LHS)
	}
}

func TestUnaryPrefixRecursion(t *testing.T) {
	e := parseExpr(t, "!!x")
	outer, ok := e.(*ast.UnaryOperator)
	if !ok || outer.Op.Kind != token.Bang {
		t.Fatalf("outer = %#v, want '!'", e)
	}
	inner, ok := outer.Value.(*ast.UnaryOperator)
	if !ok || inner.Op.Kind != token.Bang {
		t.Fatalf("inner = %#v, want '!'", outer.Value)
	}
	if _, ok := inner.Value.(*ast.DeclRefExpr); !ok {
		t.Fatalf("innermost operand = %#v, want DeclRefExpr", inner.Value)
	}
}

func TestAddressOfParsesAsUnaryOperator(t *testing.T) {
	// &z is a full unary expression handed to parseUnary; a call site like
	// an initializer gets the UnaryOperator directly.
	e := parseExpr(t, "&z")
	u, ok := e.(*ast.UnaryOperator)
	if !ok || u.Op.Kind != token.Amp {
		t.Fatalf("e = %#v, want UnaryOperator('&')", e)
	}
}

func TestMemberAccessBindsTighterThanUnary(t *testing.T) {
	// *p->next reads as *(p->next), not (*p)->next: member access binds
	// tighter than any prefix operator (spec.md §4.2 step 1).
	e := parseExpr(t, "*p->next")
	u, ok := e.(*ast.UnaryOperator)
	if !ok || u.Op.Kind != token.Star {
		t.Fatalf("e = %#v, want UnaryOperator('*')", e)
	}
	bo, ok := u.Value.(*ast.BinaryOperator)
	if !ok || bo.Op.Kind != token.Arrow {
		t.Fatalf("u.Value = %#v, want BinaryOperator('->')", u.Value)
	}
}

func TestAddressOfFieldBindsTighterThanUnary(t *testing.T) {
	// &obj.field reads as &(obj.field), not (&obj).field.
	e := parseExpr(t, "&obj.field")
	u, ok := e.(*ast.UnaryOperator)
	if !ok || u.Op.Kind != token.Amp {
		t.Fatalf("e = %#v, want UnaryOperator('&')", e)
	}
	bo, ok := u.Value.(*ast.BinaryOperator)
	if !ok || bo.Op.Kind != token.Period {
		t.Fatalf("u.Value = %#v, want BinaryOperator('.')", u.Value)
	}
}

func TestLogicalAndIsNotUnaryPrefixOp(t *testing.T) {
	// '&&' is the logical-and operator, not a doubled address-of; a
	// leading '&&' must not be mistaken for a unary prefix (spec.md
	// §4.2's unary set is '+ - ! ~ * & ++ --', no '&&').
	if isUnaryPrefixOp(token.AmpAmp) {
		t.Fatal("isUnaryPrefixOp(AmpAmp) = true, want false")
	}
}

func TestCallExprArgumentsStopAtTopLevelComma(t *testing.T) {
	e := parseExpr(t, "f(1, 2)")
	call, ok := e.(*ast.CallExpr)
	if !ok {
		t.Fatalf("e = %#v, want CallExpr", e)
	}
	if len(call.Args) != 2 {
		t.Fatalf("len(Args) = %d, want 2", len(call.Args))
	}
	if len(call.Commas) != 1 {
		t.Fatalf("len(Commas) = %d, want 1", len(call.Commas))
	}
}

func TestCallExprOnMemberAccessResult(t *testing.T) {
	// return a->b.c(1, 2); — the call binds to the DeclRefExpr 'c', not to
	// the whole member-access chain (only a DeclRefExpr can be called).
	e := parseExpr(t, "a->b.c(1, 2)")
	top, ok := e.(*ast.BinaryOperator)
	if !ok || top.Op.Kind != token.Period {
		t.Fatalf("top = %#v, want '.'", e)
	}
	call, ok := top.RHS.(*ast.CallExpr)
	if !ok {
		t.Fatalf("rhs = %#v, want CallExpr", top.RHS)
	}
	if len(call.Args) != 2 {
		t.Fatalf("len(Args) = %d, want 2", len(call.Args))
	}
	inner, ok := top.LHS.(*ast.BinaryOperator)
	if !ok || inner.Op.Kind != token.Arrow {
		t.Fatalf("lhs = %#v, want '->'", top.LHS)
	}
}

func TestTemplateArgsStopAtGreaterInsideBrackets(t *testing.T) {
	// T<U, V*> — V* is parsed as a type argument, not an expression.
	c := NewCursor(lexer.Lex("T<U, V*> x"))
	ref, ok := tryParseQualifiedID(c)
	if !ok {
		t.Fatal("tryParseQualifiedID failed")
	}
	if len(ref.TemplateArgs) != 2 {
		t.Fatalf("len(TemplateArgs) = %d, want 2", len(ref.TemplateArgs))
	}
	if ref.TemplateArgs[0].TypeArg == nil {
		t.Fatal("first template argument should parse as a Type")
	}
	if ref.TemplateArgs[1].TypeArg == nil || len(ref.TemplateArgs[1].TypeArg.Decorations) != 1 {
		t.Fatal("second template argument should parse as a pointer Type")
	}
}

func TestTemplateArgGreaterAsBinaryOperatorInsideParens(t *testing.T) {
	// f<(a>b)>  — the '>' inside parens is a real comparison operator, not
	// the template-argument-list terminator (spec.md §8 boundary case).
	c := NewCursor(lexer.Lex("f<(a>b)>"))
	ref, ok := tryParseQualifiedID(c)
	if !ok {
		t.Fatal("tryParseQualifiedID failed")
	}
	if len(ref.TemplateArgs) != 1 {
		t.Fatalf("len(TemplateArgs) = %d, want 1", len(ref.TemplateArgs))
	}
	if ref.TemplateArgs[0].ExprArg == nil {
		t.Fatal("template argument should parse as an expression, not a type")
	}
	if c.Peek() != nil {
		t.Fatalf("cursor not exhausted: %v remains", c.Peek())
	}
}

func TestEmptyTemplateArgumentList(t *testing.T) {
	c := NewCursor(lexer.Lex("T<>"))
	ref, ok := tryParseQualifiedID(c)
	if !ok {
		t.Fatal("tryParseQualifiedID failed")
	}
	if len(ref.TemplateArgs) != 0 {
		t.Fatalf("len(TemplateArgs) = %d, want 0", len(ref.TemplateArgs))
	}
	if len(ref.TemplateTokens) != 2 {
		t.Fatalf("len(TemplateTokens) = %d, want 2 (just '<' and '>')", len(ref.TemplateTokens))
	}
}

func TestTemplateArgStopsAtGreaterOutsideParens(t *testing.T) {
	// A<1>::value — the expression-valued template argument '1' must not
	// swallow the closing '>' as a relational operator against '::value'
	// (spec.md §4.2's StopAtGreater, §4.3).
	c := NewCursor(lexer.Lex("A<1>::value"))
	ref, ok := tryParseQualifiedID(c)
	if !ok {
		t.Fatal("tryParseQualifiedID failed")
	}
	if len(ref.TemplateArgs) != 1 || ref.TemplateArgs[0].ExprArg == nil {
		t.Fatalf("TemplateArgs = %#v, want one expression argument", ref.TemplateArgs)
	}
	if _, ok := ref.TemplateArgs[0].ExprArg.(*ast.LiteralConstant); !ok {
		t.Fatalf("template argument = %#v, want LiteralConstant(1)", ref.TemplateArgs[0].ExprArg)
	}
	if len(ref.NameQualifiers) != 3 {
		t.Fatalf("len(NameQualifiers) = %d, want 3 (A, ::, value)", len(ref.NameQualifiers))
	}
	if c.Peek() != nil {
		t.Fatalf("cursor not exhausted: %v remains", c.Peek())
	}
}

func TestQualifiedNameWithLeadingColonColon(t *testing.T) {
	c := NewCursor(lexer.Lex("::std::vector"))
	ref, ok := tryParseQualifiedID(c)
	if !ok {
		t.Fatal("tryParseQualifiedID failed")
	}
	if len(ref.NameQualifiers) != 4 {
		t.Fatalf("len(NameQualifiers) = %d, want 4 (::, std, ::, vector)", len(ref.NameQualifiers))
	}
}
