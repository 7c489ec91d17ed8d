// Package highlight is the "downstream highlighter" the parser is
// specified to feed: it walks a parsed tree and assigns a semantic
// Role to every token the tree owns, purely by structural
// classification, performing no semantic analysis of its own.
package highlight

import (
	"fmt"

	"github.com/cxfuzzy/cxfuzzy/internal/ast"
	"github.com/cxfuzzy/cxfuzzy/internal/token"
)

// Role is the closed set of semantic classifications a token can be
// given.
type Role int

const (
	RoleKeyword Role = iota
	RoleIdentifier
	RoleTypeName
	RoleBindingName
	RoleOperator
	RoleLiteral
	RoleUnparsable
)

var roleNames = map[Role]string{
	RoleKeyword:     "keyword",
	RoleIdentifier:  "identifier",
	RoleTypeName:    "type",
	RoleBindingName: "binding",
	RoleOperator:    "operator",
	RoleLiteral:     "literal",
	RoleUnparsable:  "unparsable",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Entry pairs one token with the role assigned to it.
type Entry struct {
	Tok  *token.Token
	Role Role
}

// Roles walks tu and returns one Entry per token it owns, in the
// order the tokens appear in the tree (which matches source order,
// since every recognizer claims tokens left to right).
func Roles(tu *ast.TranslationUnit) []Entry {
	var out []Entry
	for _, s := range tu.Stmts {
		walkStmt(s, &out)
	}
	// Declarators of one DeclStmt share their base type's tokens; keep
	// only the first entry for each token.
	seen := make(map[*token.Token]bool, len(out))
	uniq := out[:0]
	for _, e := range out {
		if seen[e.Tok] {
			continue
		}
		seen[e.Tok] = true
		uniq = append(uniq, e)
	}
	return uniq
}

func push(out *[]Entry, tok *token.Token, role Role) {
	if tok == nil {
		return
	}
	*out = append(*out, Entry{Tok: tok, Role: role})
}

func walkStmt(s ast.Stmt, out *[]Entry) {
	switch n := s.(type) {
	case *ast.CompoundStmt:
		push(out, n.LBrace, RoleOperator)
		for _, st := range n.Body {
			walkStmt(st, out)
		}
		push(out, n.RBrace, RoleOperator)

	case *ast.DeclStmt:
		for i, d := range n.Decls {
			walkVarDecl(d, out)
			if i < len(n.Commas) {
				push(out, n.Commas[i], RoleOperator)
			}
		}
		push(out, n.Semi, RoleOperator)

	case *ast.ReturnStmt:
		push(out, n.Return, RoleKeyword)
		if n.Value != nil {
			walkExpr(n.Value, out)
		}
		push(out, n.Semi, RoleOperator)

	case *ast.LabelStmt:
		push(out, n.Name, RoleBindingName)
		push(out, n.Colon, RoleOperator)

	case *ast.ExprLineStmt:
		if n.Value != nil {
			walkExpr(n.Value, out)
		}
		push(out, n.Semi, RoleOperator)

	case *ast.FunctionDecl:
		walkFunctionDecl(n, out)

	case *ast.ClassDecl:
		walkClassDecl(n, out)

	case *ast.UnparsableBlock:
		for _, t := range n.Tokens {
			push(out, t, RoleUnparsable)
		}
	}
}

func walkExpr(e ast.Expr, out *[]Entry) {
	switch n := e.(type) {
	case *ast.LiteralConstant:
		push(out, n.Tok, RoleLiteral)

	case *ast.DeclRefExpr:
		walkQualifiedName(n.NameQualifiers, n.TemplateTokens, n.TemplateArgs, out)

	case *ast.CallExpr:
		if n.Callee != nil {
			walkQualifiedName(n.Callee.NameQualifiers, n.Callee.TemplateTokens, n.Callee.TemplateArgs, out)
		}
		push(out, n.LParen, RoleOperator)
		for i, arg := range n.Args {
			walkExpr(arg, out)
			if i < len(n.Commas) {
				push(out, n.Commas[i], RoleOperator)
			}
		}
		push(out, n.RParen, RoleOperator)

	case *ast.UnaryOperator:
		push(out, n.Op, RoleOperator)
		walkExpr(n.Value, out)

	case *ast.BinaryOperator:
		walkExpr(n.LHS, out)
		push(out, n.Op, RoleOperator)
		walkExpr(n.RHS, out)
	}
}

// walkQualifiedName classifies a name-qualifier chain ('::'-separated
// identifiers) plus its optional template-argument list, in source
// order.
func walkQualifiedName(quals []*token.Token, templateToks []*token.Token, args []ast.TemplateArg, out *[]Entry) {
	for _, q := range quals {
		role := RoleIdentifier
		if q.Kind == token.ColonColon {
			role = RoleOperator
		}
		push(out, q, role)
	}
	walkTemplateList(templateToks, args, out)
}

// walkTemplateList interleaves the '<'/','/'>' separator tokens with
// their corresponding argument, per the claim order established by
// tryParseTemplateArgs: templateToks holds the '<', one ',' between
// each pair of arguments, and the '>', i.e. len(args)+1 elements for
// a non-empty list.
func walkTemplateList(templateToks []*token.Token, args []ast.TemplateArg, out *[]Entry) {
	for i, t := range templateToks {
		push(out, t, RoleOperator)
		if i < len(args) {
			walkTemplateArg(args[i], out)
		}
	}
}

func walkTemplateArg(arg ast.TemplateArg, out *[]Entry) {
	switch {
	case arg.TypeArg != nil:
		walkType(arg.TypeArg, out)
	case arg.ExprArg != nil:
		walkExpr(arg.ExprArg, out)
	}
}

// walkType classifies a Type's qualifier chain, template arguments,
// and pointer/reference decorations.
func walkType(t *ast.Type, out *[]Entry) {
	if t == nil {
		return
	}
	for _, q := range t.Qualifiers {
		role := RoleTypeName
		switch {
		case token.IsCVQualifier(q.Kind):
			role = RoleKeyword
		case q.Kind == token.ColonColon:
			role = RoleOperator
		}
		push(out, q, role)
	}
	walkTemplateList(t.TemplateTokens, t.TemplateArgs, out)
	for _, d := range t.Decorations {
		push(out, d.Tok, RoleOperator)
	}
}

func walkVarDecl(v *ast.VarDecl, out *[]Entry) {
	if v == nil {
		return
	}
	walkType(v.VariableType, out)
	push(out, v.Name, RoleBindingName)
	if v.Init != nil {
		walkVarInit(v.Init, out)
	}
}

func walkVarInit(vi *ast.VarInitialization, out *[]Entry) {
	push(out, vi.Ops[0], RoleOperator)
	if vi.Value != nil {
		walkExpr(vi.Value, out)
	}
	push(out, vi.Ops[1], RoleOperator)
}

func walkFunctionDecl(f *ast.FunctionDecl, out *[]Entry) {
	push(out, f.Modifier, RoleKeyword)
	if f.Name != nil && f.Name.Kind == token.Tilde {
		// Destructor: the '~' precedes the type parsed after it.
		push(out, f.Name, RoleOperator)
		walkType(f.ReturnType, out)
	} else {
		walkType(f.ReturnType, out)
		push(out, f.Name, RoleBindingName)
	}

	push(out, f.LParen, RoleOperator)
	for i, p := range f.Params {
		walkVarDecl(p, out)
		if i < len(f.Commas) {
			push(out, f.Commas[i], RoleOperator)
		}
	}
	push(out, f.RParen, RoleOperator)

	for _, t := range f.Trailer {
		push(out, t, RoleUnparsable)
	}

	push(out, f.Semi, RoleOperator)
	if f.Body != nil {
		walkStmt(f.Body, out)
	}
}

func walkClassDecl(c *ast.ClassDecl, out *[]Entry) {
	push(out, c.ClassKey, RoleKeyword)
	walkType(c.Name, out)
	push(out, c.Colon, RoleOperator)

	for _, b := range c.Bases {
		if b.Access != nil {
			push(out, b.Access, RoleKeyword)
		}
		walkType(b.Type, out)
		push(out, b.Comma, RoleOperator)
	}

	for _, t := range c.SkippedTokens {
		push(out, t, RoleUnparsable)
	}

	push(out, c.LBrace, RoleOperator)
	for _, s := range c.Body {
		walkStmt(s, out)
	}
	push(out, c.RBrace, RoleOperator)
	push(out, c.Semi, RoleOperator)
}
