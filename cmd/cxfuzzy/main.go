// Command cxfuzzy fuzzily parses a C-family source file and prints
// the per-token role classification or AST shape it recovers.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	switch sub {
	case "help", "-h", "--help":
		usage()
	case "roles":
		runRoles(args)
	case "ast":
		runAST(args)
	case "watch":
		runWatch(args)
	case "version":
		runVersion(args)
	default:
		fmt.Fprintf(os.Stderr, "cxfuzzy: unknown subcommand %q\n", sub)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cxfuzzy <command> [arguments]

Commands:
  roles <file>    lex, parse, and print one role-classified line per token
  ast <file>      lex, parse, and print an indented AST dump
  watch <file>    re-run roles every time the file is written
  version         print the tool's version`)
}
