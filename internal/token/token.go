// Package token defines the token kind enumeration and the token handle
// that the fuzzy parser consumes. The lexer that produces these tokens,
// and the AST nodes that claim them, live in sibling packages.
package token

import "fmt"

// Kind identifies the lexical category of a token.
type Kind int

const (
	// Special tokens.
	EOF Kind = iota
	Unknown
	Comment

	// RawIdentifier must never reach the parser: the lexer is required to
	// promote every raw identifier into Identifier or a keyword kind before
	// handing tokens to the cursor. It exists only so that Cursor.Next can
	// assert the invariant.
	RawIdentifier

	Identifier

	// Literal families.
	NumericLiteral
	CharLiteral
	StringLiteral

	// Boolean / null literals.
	KwTrue
	KwFalse
	KwNullptr
	KwObjCYes
	KwObjCNo

	// Control flow.
	KwReturn

	// Storage / declaration keywords.
	KwStatic
	KwVirtual
	KwAuto

	// CV / storage qualifiers.
	KwConst
	KwVolatile
	KwRegister

	// Access specifiers.
	KwPublic
	KwProtected
	KwPrivate

	// Class keys.
	KwClass
	KwStruct
	KwUnion
	KwEnum

	// Built-in type keywords (§4.4 catalogue).
	KwShort
	KwLong
	KwInt64
	KwInt128
	KwSigned
	KwUnsigned
	KwComplex
	KwImaginary
	KwVoid
	KwChar
	KwWCharT
	KwChar16T
	KwChar32T
	KwInt
	KwHalf
	KwFloat
	KwDouble
	KwBool
	KwBoolUnderscore
	KwDecimal32
	KwDecimal64
	KwDecimal128
	KwVector

	// Punctuators.
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Colon
	ColonColon
	Period
	Arrow
	Less
	Greater
	Equal
	EqualEqual
	BangEqual
	Plus
	Minus
	Star
	Slash
	Percent
	Bang
	Tilde
	Amp
	AmpAmp
	Pipe
	PipePipe
	PlusPlus
	MinusMinus
)

var kindNames = map[Kind]string{
	EOF:           "EOF",
	Unknown:       "UNKNOWN",
	Comment:       "COMMENT",
	RawIdentifier: "RAW_IDENTIFIER",
	Identifier:    "IDENTIFIER",

	NumericLiteral: "NUMERIC_LITERAL",
	CharLiteral:    "CHAR_LITERAL",
	StringLiteral:  "STRING_LITERAL",

	KwTrue:    "true",
	KwFalse:   "false",
	KwNullptr: "nullptr",
	KwObjCYes: "__objc_yes",
	KwObjCNo:  "__objc_no",

	KwReturn: "return",

	KwStatic:  "static",
	KwVirtual: "virtual",
	KwAuto:    "auto",

	KwConst:    "const",
	KwVolatile: "volatile",
	KwRegister: "register",

	KwPublic:    "public",
	KwProtected: "protected",
	KwPrivate:   "private",

	KwClass:  "class",
	KwStruct: "struct",
	KwUnion:  "union",
	KwEnum:   "enum",

	KwShort:          "short",
	KwLong:           "long",
	KwInt64:          "__int64",
	KwInt128:         "__int128",
	KwSigned:         "signed",
	KwUnsigned:       "unsigned",
	KwComplex:        "_Complex",
	KwImaginary:      "_Imaginary",
	KwVoid:           "void",
	KwChar:           "char",
	KwWCharT:         "wchar_t",
	KwChar16T:        "char16_t",
	KwChar32T:        "char32_t",
	KwInt:            "int",
	KwHalf:           "half",
	KwFloat:          "float",
	KwDouble:         "double",
	KwBool:           "bool",
	KwBoolUnderscore: "_Bool",
	KwDecimal32:      "_Decimal32",
	KwDecimal64:      "_Decimal64",
	KwDecimal128:     "_Decimal128",
	KwVector:         "__vector",

	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	LBracket:   "[",
	RBracket:   "]",
	Semicolon:  ";",
	Comma:      ",",
	Colon:      ":",
	ColonColon: "::",
	Period:     ".",
	Arrow:      "->",
	Less:       "<",
	Greater:    ">",
	Equal:      "=",
	EqualEqual: "==",
	BangEqual:  "!=",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Bang:       "!",
	Tilde:      "~",
	Amp:        "&",
	AmpAmp:     "&&",
	Pipe:       "|",
	PipePipe:   "||",
	PlusPlus:   "++",
	MinusMinus: "--",
}

// String returns the canonical spelling or name of the token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps the spelling of every keyword recognized by this kind
// catalogue to its Kind. The lexer uses it to promote raw identifiers.
var Keywords = map[string]Kind{
	"true":       KwTrue,
	"false":      KwFalse,
	"nullptr":    KwNullptr,
	"__objc_yes": KwObjCYes,
	"__objc_no":  KwObjCNo,

	"return": KwReturn,

	"static":  KwStatic,
	"virtual": KwVirtual,
	"auto":    KwAuto,

	"const":    KwConst,
	"volatile": KwVolatile,
	"register": KwRegister,

	"public":    KwPublic,
	"protected": KwProtected,
	"private":   KwPrivate,

	"class":  KwClass,
	"struct": KwStruct,
	"union":  KwUnion,
	"enum":   KwEnum,

	"short":      KwShort,
	"long":       KwLong,
	"__int64":    KwInt64,
	"__int128":   KwInt128,
	"signed":     KwSigned,
	"unsigned":   KwUnsigned,
	"_Complex":   KwComplex,
	"_Imaginary": KwImaginary,
	"void":       KwVoid,
	"char":       KwChar,
	"wchar_t":    KwWCharT,
	"char16_t":   KwChar16T,
	"char32_t":   KwChar32T,
	"int":        KwInt,
	"half":       KwHalf,
	"float":      KwFloat,
	"double":     KwDouble,
	"bool":       KwBool,
	"_Bool":      KwBoolUnderscore,
	"_Decimal32": KwDecimal32,
	"_Decimal64": KwDecimal64,
	"_Decimal128": KwDecimal128,
	"__vector":   KwVector,
}

// IsBuiltinType reports whether k is one of the built-in type keywords
// from §4.4 step 2.
func IsBuiltinType(k Kind) bool {
	switch k {
	case KwShort, KwLong, KwInt64, KwInt128, KwSigned, KwUnsigned, KwComplex,
		KwImaginary, KwVoid, KwChar, KwWCharT, KwChar16T, KwChar32T, KwInt,
		KwHalf, KwFloat, KwDouble, KwBool, KwBoolUnderscore, KwDecimal32,
		KwDecimal64, KwDecimal128, KwVector:
		return true
	default:
		return false
	}
}

// IsCVQualifier reports whether k is a leading/trailing CV or storage
// qualifier keyword from §4.4 steps 1 and 3.
func IsCVQualifier(k Kind) bool {
	switch k {
	case KwConst, KwVolatile, KwRegister:
		return true
	default:
		return false
	}
}

// IsLiteralOrConstant reports whether k starts a LiteralConstant
// expression: a literal family, or a boolean/null keyword literal.
func IsLiteralOrConstant(k Kind) bool {
	switch k {
	case NumericLiteral, CharLiteral, StringLiteral,
		KwTrue, KwFalse, KwNullptr, KwObjCYes, KwObjCNo:
		return true
	default:
		return false
	}
}

// Position is a 1-based line/column and 0-based byte offset within a
// source file. The parsing core never consults Position; it exists for
// the highlighter and CLI diagnostics only.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Span covers the bytes of a single token.
type Span struct {
	Start Position
	End   Position
}

// ASTNode is the back-reference target a Token's annotation slot points
// to. It is satisfied by every node in package ast; token deliberately
// depends on nothing from ast to avoid an import cycle, so the slot is
// typed as this minimal interface instead.
type ASTNode interface {
	// ASTClass returns the node's tag, mirroring spec.md's "class-tag
	// field is redundant with the discriminator but part of the public
	// contract for downstream classification."
	ASTClass() string
}

// Token is a handle to a single lexed token. Ref is the mutable
// AST back-reference slot described in spec.md §3: the parser sets it
// whenever an AST node claims ownership of the token, and never
// otherwise mutates the token. A later claim overwrites an earlier one
// (a CallExpr re-claims its callee's tokens, and each cloned base type
// re-claims the shared type tokens).
type Token struct {
	Kind    Kind
	Literal string
	Span    Span

	Ref ASTNode
}

// String renders the token for debugging.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Literal, t.Span.Start.Line, t.Span.Start.Column)
}
