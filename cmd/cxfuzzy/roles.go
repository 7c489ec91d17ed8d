package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cxfuzzy/cxfuzzy/internal/ast"
	"github.com/cxfuzzy/cxfuzzy/internal/highlight"
)

func runRoles(args []string) {
	fs := flag.NewFlagSet("roles", flag.ExitOnError)
	_ = fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "usage: cxfuzzy roles <file>")
		os.Exit(2)
	}

	tu, _, err := lexAndParse(rest[0])
	if err != nil {
		log.Fatalf("cxfuzzy: %v", err)
	}

	printRoles(tu)
}

func printRoles(tu *ast.TranslationUnit) {
	for _, e := range highlight.Roles(tu) {
		fmt.Printf("%d:%d %-16s %-10s %s\n", e.Tok.Span.Start.Line, e.Tok.Span.Start.Column, e.Tok.Kind, e.Role, e.Tok.Literal)
	}
}
