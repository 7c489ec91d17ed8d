package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cxfuzzy/cxfuzzy/internal/ast"
	"github.com/cxfuzzy/cxfuzzy/internal/token"
)

func runAST(args []string) {
	fs := flag.NewFlagSet("ast", flag.ExitOnError)
	_ = fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "usage: cxfuzzy ast <file>")
		os.Exit(2)
	}

	tu, _, err := lexAndParse(rest[0])
	if err != nil {
		log.Fatalf("cxfuzzy: %v", err)
	}

	for _, s := range tu.Stmts {
		dumpStmt(s, 0)
	}
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

func dumpTok(tok *token.Token) string {
	if tok == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", tok.Literal)
}

func dumpStmt(s ast.Stmt, depth int) {
	if s == nil {
		return
	}
	fmt.Printf("%s%s\n", indent(depth), s.ASTClass())

	switch n := s.(type) {
	case *ast.CompoundStmt:
		for _, st := range n.Body {
			dumpStmt(st, depth+1)
		}
	case *ast.DeclStmt:
		for _, d := range n.Decls {
			dumpVarDecl(d, depth+1)
		}
	case *ast.ReturnStmt:
		if n.Value != nil {
			dumpExpr(n.Value, depth+1)
		}
	case *ast.LabelStmt:
		fmt.Printf("%sname: %s\n", indent(depth+1), dumpTok(n.Name))
	case *ast.ExprLineStmt:
		dumpExpr(n.Value, depth+1)
	case *ast.FunctionDecl:
		fmt.Printf("%sname: %s\n", indent(depth+1), dumpTok(n.Name))
		for _, p := range n.Params {
			dumpVarDecl(p, depth+1)
		}
		if n.Body != nil {
			dumpStmt(n.Body, depth+1)
		}
	case *ast.ClassDecl:
		fmt.Printf("%skey: %s\n", indent(depth+1), dumpTok(n.ClassKey))
		for _, b := range n.Bases {
			fmt.Printf("%sbase:\n", indent(depth+1))
			dumpType(b.Type, depth+2)
		}
		for _, st := range n.Body {
			dumpStmt(st, depth+1)
		}
	case *ast.UnparsableBlock:
		var lits []string
		for _, t := range n.Tokens {
			lits = append(lits, t.Literal)
		}
		fmt.Printf("%stokens: %s\n", indent(depth+1), strings.Join(lits, " "))
	}
}

func dumpExpr(e ast.Expr, depth int) {
	if e == nil {
		return
	}
	fmt.Printf("%s%s\n", indent(depth), e.ASTClass())

	switch n := e.(type) {
	case *ast.LiteralConstant:
		fmt.Printf("%svalue: %s\n", indent(depth+1), dumpTok(n.Tok))
	case *ast.DeclRefExpr:
		fmt.Printf("%sname: %s\n", indent(depth+1), joinTokens(n.NameQualifiers))
	case *ast.CallExpr:
		if n.Callee != nil {
			fmt.Printf("%scallee: %s\n", indent(depth+1), joinTokens(n.Callee.NameQualifiers))
		}
		for _, a := range n.Args {
			dumpExpr(a, depth+1)
		}
	case *ast.UnaryOperator:
		fmt.Printf("%sop: %s\n", indent(depth+1), dumpTok(n.Op))
		dumpExpr(n.Value, depth+1)
	case *ast.BinaryOperator:
		dumpExpr(n.LHS, depth+1)
		fmt.Printf("%sop: %s\n", indent(depth+1), dumpTok(n.Op))
		dumpExpr(n.RHS, depth+1)
	}
}

func dumpVarDecl(v *ast.VarDecl, depth int) {
	if v == nil {
		return
	}
	fmt.Printf("%sVarDecl\n", indent(depth))
	dumpType(v.VariableType, depth+1)
	fmt.Printf("%sname: %s\n", indent(depth+1), dumpTok(v.Name))
	if v.Init != nil && v.Init.Value != nil {
		dumpExpr(v.Init.Value, depth+1)
	}
}

func dumpType(t *ast.Type, depth int) {
	if t == nil {
		return
	}
	fmt.Printf("%sType: %s%s\n", indent(depth), joinTokens(t.Qualifiers), strings.Repeat("*", len(t.Decorations)))
}

func joinTokens(toks []*token.Token) string {
	lits := make([]string, len(toks))
	for i, t := range toks {
		lits[i] = t.Literal
	}
	return strings.Join(lits, "")
}
