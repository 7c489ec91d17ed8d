// Package ast defines the tagged variant tree the fuzzy parser builds:
// two lineages, Stmt and Expr, both rooted at ASTElement. The class-tag
// field (NodeKind) is redundant with Go's own type switch but is kept
// as part of the public contract, mirroring the original C++
// implementation's runtime ASTElementClass tag.
package ast

import "fmt"

// NodeKind is the class-tag every AST node carries alongside its Go
// type, for callers that want to classify nodes without a type switch.
type NodeKind int

const (
	KindCompoundStmt NodeKind = iota
	KindDeclStmt
	KindReturnStmt
	KindLabelStmt
	KindExprLineStmt
	KindFunctionDecl
	KindClassDecl
	KindUnparsableBlock

	KindLiteralConstant
	KindDeclRefExpr
	KindCallExpr
	KindUnaryOperator
	KindBinaryOperator

	KindType
	KindVarDecl
	KindVarInitialization
)

var nodeKindNames = map[NodeKind]string{
	KindCompoundStmt:      "CompoundStmt",
	KindDeclStmt:          "DeclStmt",
	KindReturnStmt:        "ReturnStmt",
	KindLabelStmt:         "LabelStmt",
	KindExprLineStmt:      "ExprLineStmt",
	KindFunctionDecl:      "FunctionDecl",
	KindClassDecl:         "ClassDecl",
	KindUnparsableBlock:   "UnparsableBlock",
	KindLiteralConstant:   "LiteralConstant",
	KindDeclRefExpr:       "DeclRefExpr",
	KindCallExpr:          "CallExpr",
	KindUnaryOperator:     "UnaryOperator",
	KindBinaryOperator:    "BinaryOperator",
	KindType:              "Type",
	KindVarDecl:           "VarDecl",
	KindVarInitialization: "VarInitialization",
}

// String returns the node kind's name, e.g. "BinaryOperator".
func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// ASTElement is the contract every node in the tree satisfies. Anything
// a token's back-reference slot may point to is an ASTElement; this
// also satisfies token.ASTNode, so any ASTElement can be stored
// directly in a Token's Ref field.
type ASTElement interface {
	Kind() NodeKind
	ASTClass() string
}

// Stmt is the statement lineage: CompoundStmt, DeclStmt, ReturnStmt,
// LabelStmt, ExprLineStmt, FunctionDecl, ClassDecl, UnparsableBlock.
type Stmt interface {
	ASTElement
	stmtNode()
}

// Expr is the expression lineage: LiteralConstant, DeclRefExpr,
// CallExpr, UnaryOperator, BinaryOperator.
type Expr interface {
	ASTElement
	exprNode()
}

// astClass renders a NodeKind as the ASTClass() string every node
// returns; every concrete type forwards here to avoid repeating the
// string conversion at each call site.
func astClass(k NodeKind) string { return k.String() }
