package parser

import (
	"github.com/cxfuzzy/cxfuzzy/internal/ast"
	"github.com/cxfuzzy/cxfuzzy/internal/token"
)

// Two synthetic precedence levels sit above the pure binary-operator
// oracle in package token, injected here at the call site rather than
// by mutating that oracle (spec.md §4.2). PrecedenceArrowAndPeriod
// gives '.'/'->' the tightest binding of any binary-shaped operator;
// PrecedenceUnaryOperator documents where prefix operators sit in the
// same ladder, though prefix operators are parsed by direct recursive
// descent rather than through the binary climber.
const (
	PrecedenceUnaryOperator  = token.PrecedenceMultiplicative + 1
	PrecedenceArrowAndPeriod = token.PrecedenceMultiplicative + 2
)

// qualSink is the common target of the qualified-name/template-argument
// recognizer: both ast.Type and ast.DeclRefExpr implement it, so one
// recognizer builds either (spec.md §4.3).
type qualSink interface {
	AddNameQualifier(tok *token.Token)
	MakeTemplateArgs()
	AddTemplateSeparator(tok *token.Token)
	AddTemplateArgument(arg ast.TemplateArg)
}

// parseQualifiedNameInto consumes a possibly-empty chain of
// `identifier ('::' identifier)*`, with an optional `<...>`
// template-argument list following any identifier, claiming every
// token into sink. It reports whether at least one identifier was
// consumed.
func parseQualifiedNameInto(c *Cursor, sink qualSink) bool {
	consumed := false
	for {
		if c.Check(token.ColonColon) {
			sink.AddNameQualifier(c.Next())
			continue
		}
		if !c.Check(token.Identifier) {
			break
		}
		sink.AddNameQualifier(c.Next())
		consumed = true

		if c.Check(token.Less) {
			tryParseTemplateArgs(c, sink)
		}

		if c.Check(token.ColonColon) {
			continue
		}
		break
	}
	return consumed
}

// tryParseTemplateArgs speculatively consumes a `< arg (, arg)* >`
// list, including the degenerate empty list `<>`. It rewinds and
// leaves the '<' untouched (to be reinterpreted as less-than) on any
// failure to find a matching '>'. Separators and arguments are added to
// sink only once the closing '>' has been found.
func tryParseTemplateArgs(c *Cursor, sink qualSink) bool {
	g := GuardCursor(c)
	seps := []*token.Token{c.Next()}
	var args []ast.TemplateArg

	first := true
	for {
		if c.Check(token.Greater) {
			seps = append(seps, c.Next())
			g.Dismiss()
			sink.MakeTemplateArgs()
			for _, sep := range seps {
				sink.AddTemplateSeparator(sep)
			}
			for _, arg := range args {
				sink.AddTemplateArgument(arg)
			}
			return true
		}
		if !first {
			if !c.Check(token.Comma) {
				g.Abort()
				return false
			}
			seps = append(seps, c.Next())
		}
		first = false

		arg, ok := parseTemplateArgument(c)
		if !ok {
			g.Abort()
			return false
		}
		args = append(args, arg)
	}
}

// parseTemplateArgument tries a Type first and falls back to an
// expression, per spec.md §4.3.
func parseTemplateArgument(c *Cursor) (ast.TemplateArg, bool) {
	g := GuardCursor(c)
	if typ, ok := tryParseType(c); ok {
		g.Dismiss()
		return ast.TemplateArg{TypeArg: typ}, true
	}
	g.Abort()

	g = GuardCursor(c)
	if expr := parseAssignmentAndAbove(c, true); expr != nil {
		g.Dismiss()
		return ast.TemplateArg{ExprArg: expr}, true
	}
	g.Abort()
	return ast.TemplateArg{}, false
}

// tryParseQualifiedID recognizes a DeclRefExpr, the only expression
// form a qualified name produces.
func tryParseQualifiedID(c *Cursor) (*ast.DeclRefExpr, bool) {
	g := GuardCursor(c)
	ref := &ast.DeclRefExpr{}
	if !parseQualifiedNameInto(c, ref) {
		g.Abort()
		return nil, false
	}
	g.Dismiss()
	return ref, true
}

// ParseExpression parses the full comma-operator-inclusive grammar,
// the entry point used by statement and initializer contexts.
func ParseExpression(c *Cursor) ast.Expr {
	lhs := parseUnary(c)
	if lhs == nil {
		return nil
	}
	return parseBinaryRHS(c, lhs, token.PrecedenceComma, false)
}

// parseAssignmentAndAbove parses one argument/template-argument-shaped
// expression: everything above the comma operator, so that a
// top-level comma is left for the caller (argument list, template
// argument list) to consume as a separator instead. stopAtGreater
// mirrors spec.md §4.2's StopAtGreater flag: when set, a bare '>'
// terminates the expression instead of being read as the relational
// operator, so that a template-argument list's closing '>' is never
// swallowed (spec.md §4.3).
func parseAssignmentAndAbove(c *Cursor, stopAtGreater bool) ast.Expr {
	lhs := parseUnary(c)
	if lhs == nil {
		return nil
	}
	return parseBinaryRHS(c, lhs, token.PrecedenceAssignment, stopAtGreater)
}

// precedenceOfOperator reports the precedence at which tok binds as a
// binary operator, folding in the synthetic member-access level.
func precedenceOfOperator(tok *token.Token) token.Precedence {
	if tok == nil {
		return token.PrecedenceUnknown
	}
	switch tok.Kind {
	case token.Period, token.Arrow:
		return PrecedenceArrowAndPeriod
	default:
		return token.BinaryPrecedence(tok.Kind)
	}
}

// parseBinaryRHS is the precedence-climbing loop: given an already
// parsed lhs, it repeatedly consumes an operator at or above minPrec
// and a right operand, climbing further on any operator that binds
// tighter than the one just consumed. When stopAtGreater is set, a
// bare '>' stops the climb instead of being consumed as the
// relational operator (spec.md §4.2).
func parseBinaryRHS(c *Cursor, lhs ast.Expr, minPrec token.Precedence, stopAtGreater bool) ast.Expr {
	for {
		tok := c.Peek()
		if stopAtGreater && tok != nil && tok.Kind == token.Greater {
			return lhs
		}
		prec := precedenceOfOperator(tok)
		if prec == token.PrecedenceUnknown || prec < minPrec {
			return lhs
		}

		g := GuardCursor(c)
		op := c.Next()
		var rhs ast.Expr
		if prec == PrecedenceArrowAndPeriod {
			// '.'/'->' take a bare postfix operand, so a member-access
			// chain folds left to right: a->b.c is (a->b).c.
			rhs = parsePostfix(c)
		} else {
			rhs = parseUnary(c)
		}
		if rhs == nil {
			g.Abort()
			return lhs
		}
		g.Dismiss()

		for {
			nextTok := c.Peek()
			if stopAtGreater && nextTok != nil && nextTok.Kind == token.Greater {
				break
			}
			nextPrec := precedenceOfOperator(nextTok)
			if nextPrec <= prec {
				break
			}
			rhs = parseBinaryRHS(c, rhs, nextPrec, stopAtGreater)
		}
		lhs = ast.NewBinaryOperator(lhs, rhs, op)
	}
}

// isUnaryPrefixOp reports whether kind can introduce a UnaryOperator.
func isUnaryPrefixOp(kind token.Kind) bool {
	switch kind {
	case token.Plus, token.Minus, token.Bang, token.Tilde, token.Star,
		token.Amp, token.PlusPlus, token.MinusMinus:
		return true
	default:
		return false
	}
}

// parseUnary recognizes a run of prefix operators around a postfix
// expression. Member access binds tighter than any prefix operator
// (spec.md §4.2 step 1): at the bottom of the prefix-op recursion, the
// postfix result climbs through '.'/'->' before being handed back up
// as the operand, so '*p->next' reads as '*(p->next)' and '&obj.field'
// as '&(obj.field)', not '(*p)->next' / '(&obj).field'.
func parseUnary(c *Cursor) ast.Expr {
	tok := c.Peek()
	if tok != nil && isUnaryPrefixOp(tok.Kind) {
		g := GuardCursor(c)
		op := c.Next()
		operand := parseUnary(c)
		if operand == nil {
			g.Abort()
			return nil
		}
		g.Dismiss()
		return ast.NewUnaryOperator(op, operand)
	}
	operand := parsePostfix(c)
	if operand == nil {
		return nil
	}
	return parseBinaryRHS(c, operand, PrecedenceArrowAndPeriod, false)
}

// parsePostfix recognizes a primary expression followed by any number
// of call suffixes. Only a DeclRefExpr can be called, per spec.md §3.
func parsePostfix(c *Cursor) ast.Expr {
	expr := parsePrimary(c)
	if expr == nil {
		return nil
	}
	for {
		callee, ok := expr.(*ast.DeclRefExpr)
		if !ok || !c.Check(token.LParen) {
			return expr
		}
		lparen := c.Next()
		call := ast.NewCallExpr(callee, lparen)
		if !c.Check(token.RParen) {
			for {
				g := GuardCursor(c)
				arg := parseAssignmentAndAbove(c, false)
				if arg == nil {
					g.Abort()
					break
				}
				g.Dismiss()
				call.AppendArg(arg)
				if c.Check(token.Comma) {
					call.AppendComma(c.Next())
					continue
				}
				break
			}
		}
		if c.Check(token.RParen) {
			call.SetRightParen(c.Next())
		}
		expr = call
	}
}

// parsePrimary recognizes a literal constant, a qualified name, or a
// parenthesized expression. Inside the parens StopAtGreater never
// applies: a '>' there is unambiguously a comparison (spec.md §8's
// `f<(a>b)>` boundary case).
func parsePrimary(c *Cursor) ast.Expr {
	tok := c.Peek()
	if tok == nil {
		return nil
	}
	if tok.Kind == token.LParen {
		g := GuardCursor(c)
		c.Next()
		inner := ParseExpression(c)
		if inner == nil || !c.Check(token.RParen) {
			g.Abort()
			return nil
		}
		c.Next()
		g.Dismiss()
		return inner
	}
	if token.IsLiteralOrConstant(tok.Kind) {
		c.Next()
		return ast.NewLiteralConstant(tok)
	}
	if ref, ok := tryParseQualifiedID(c); ok {
		return ref
	}
	return nil
}
