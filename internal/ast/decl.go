package ast

import "github.com/cxfuzzy/cxfuzzy/internal/token"

// InitKind distinguishes the three initializer shapes spec.md §3
// names; only Assignment is produced by this implementation.
type InitKind int

const (
	InitAssignment InitKind = iota
	InitConstructor
	InitBrace
)

// VarInitialization is a variable's initializer.
type VarInitialization struct {
	InitKind InitKind
	// Ops[0]/Ops[1] are '=' (Ops[1] nil) for Assignment, or the
	// opening/closing delimiter pair for Constructor/Brace.
	Ops   [2]*token.Token
	Value Expr
}

func (v *VarInitialization) Kind() NodeKind   { return KindVarInitialization }
func (v *VarInitialization) ASTClass() string { return astClass(v.Kind()) }

// NewAssignmentInit builds an ASSIGNMENT initializer, claiming the '='
// token.
func NewAssignmentInit(equals *token.Token, value Expr) *VarInitialization {
	vi := &VarInitialization{InitKind: InitAssignment, Value: value}
	vi.Ops[0] = equals
	equals.Ref = vi
	return vi
}

// VarDecl is a Type, a name token, and an optional initializer. The
// name token is absent (nil) exactly when this declarator is a
// function parameter that named nothing.
type VarDecl struct {
	VariableType *Type
	Name         *token.Token
	Init         *VarInitialization
}

func (v *VarDecl) Kind() NodeKind   { return KindVarDecl }
func (v *VarDecl) ASTClass() string { return astClass(v.Kind()) }

// SetName claims the declarator's name token.
func (v *VarDecl) SetName(tok *token.Token) {
	v.Name = tok
	tok.Ref = v
}

// FunctionDecl is a function declaration or definition.
//
// Name and ReturnType interact unusually for destructors: per spec.md
// §9's Open Question, the destructor recognizer parses the '~' token
// into Name and then parses a *type* immediately afterward into
// ReturnType — so for `~Foo()`, Name is the '~' token and ReturnType
// is a Type whose sole qualifier is the identifier "Foo". This is
// preserved verbatim from the original rather than corrected.
type FunctionDecl struct {
	// Modifier fuses 'static' and 'virtual' into one optional slot, per
	// spec.md §9's second Open Question.
	Modifier   *token.Token
	ReturnType *Type
	Name       *token.Token

	LParen *token.Token
	RParen *token.Token
	Params []*VarDecl
	Commas []*token.Token

	// Trailer holds tokens consumed opaquely between ')' and '{'/';'
	// (member-initializer lists, attributes, trailing qualifiers) so
	// that token-coverage holds without giving them structured meaning
	// (spec.md §9, "Approximation of function trailers").
	Trailer []*token.Token

	Semi *token.Token
	Body *CompoundStmt
}

func (f *FunctionDecl) Kind() NodeKind   { return KindFunctionDecl }
func (f *FunctionDecl) ASTClass() string { return astClass(f.Kind()) }
func (f *FunctionDecl) stmtNode()        {}

// SetModifier claims an optional leading 'static' or 'virtual' token.
func (f *FunctionDecl) SetModifier(tok *token.Token) {
	f.Modifier = tok
	tok.Ref = f
}

// SetName claims the function's name token (or, for a destructor, the
// '~' token — see the FunctionDecl doc comment).
func (f *FunctionDecl) SetName(tok *token.Token) {
	f.Name = tok
	tok.Ref = f
}

// SetLeftParen claims the opening parameter-list parenthesis.
func (f *FunctionDecl) SetLeftParen(tok *token.Token) {
	f.LParen = tok
	tok.Ref = f
}

// AppendParam appends one already-parsed parameter declaration.
func (f *FunctionDecl) AppendParam(p *VarDecl) { f.Params = append(f.Params, p) }

// AppendComma claims a comma separating parameters.
func (f *FunctionDecl) AppendComma(tok *token.Token) {
	f.Commas = append(f.Commas, tok)
	tok.Ref = f
}

// SetRightParen claims the closing parameter-list parenthesis.
func (f *FunctionDecl) SetRightParen(tok *token.Token) {
	f.RParen = tok
	tok.Ref = f
}

// AppendTrailerToken claims one opaque token between ')' and the
// function's terminator.
func (f *FunctionDecl) AppendTrailerToken(tok *token.Token) {
	f.Trailer = append(f.Trailer, tok)
	tok.Ref = f
}

// SetSemi claims the forward-declaration semicolon.
func (f *FunctionDecl) SetSemi(tok *token.Token) {
	f.Semi = tok
	tok.Ref = f
}

// BaseClass is one entry of a class's base-class list.
type BaseClass struct {
	Access *token.Token // nil if no access specifier was given
	Type   *Type
	Comma  *token.Token // nil for the final base in the list
}

// ClassDecl is a class/struct/union/enum declaration.
type ClassDecl struct {
	ClassKey *token.Token
	Name     *Type
	Colon    *token.Token
	Bases    []BaseClass

	// SkippedTokens holds tokens consumed opaquely while scanning for
	// the base-class list's opening brace after a malformed base list
	// (spec.md §4.5).
	SkippedTokens []*token.Token

	LBrace *token.Token
	RBrace *token.Token
	Body   []Stmt

	Semi *token.Token
}

func (c *ClassDecl) Kind() NodeKind   { return KindClassDecl }
func (c *ClassDecl) ASTClass() string { return astClass(c.Kind()) }
func (c *ClassDecl) stmtNode()        {}

// SetClassKey claims the class/struct/union/enum keyword token.
func (c *ClassDecl) SetClassKey(tok *token.Token) {
	c.ClassKey = tok
	tok.Ref = c
}

// SetColon claims the ':' introducing the base-class list.
func (c *ClassDecl) SetColon(tok *token.Token) {
	c.Colon = tok
	tok.Ref = c
}

// AddBaseClass appends one base-class entry, claiming its access
// specifier (if any) and trailing comma (if any).
func (c *ClassDecl) AddBaseClass(access *token.Token, typ *Type, comma *token.Token) {
	if access != nil {
		access.Ref = c
	}
	if comma != nil {
		comma.Ref = c
	}
	c.Bases = append(c.Bases, BaseClass{Access: access, Type: typ, Comma: comma})
}

// SetLeftBrace claims the opening brace of the class body.
func (c *ClassDecl) SetLeftBrace(tok *token.Token) {
	c.LBrace = tok
	tok.Ref = c
}

// AddStmt appends one member statement to the class body.
func (c *ClassDecl) AddStmt(s Stmt) { c.Body = append(c.Body, s) }

// SetRightBrace claims the closing brace of the class body.
func (c *ClassDecl) SetRightBrace(tok *token.Token) {
	c.RBrace = tok
	tok.Ref = c
}

// SetSemi claims the trailing semicolon after a class body or forward
// declaration.
func (c *ClassDecl) SetSemi(tok *token.Token) {
	c.Semi = tok
	tok.Ref = c
}

// SetTokenOfOpaqueSkip claims and appends a token skipped while
// scanning for the base-class list's opening brace (spec.md §4.5: "if
// it cannot be fully parsed, tokens are skipped to the next '{'").
// These tokens get no structured role beyond belonging to the
// ClassDecl.
func (c *ClassDecl) SetTokenOfOpaqueSkip(tok *token.Token) {
	tok.Ref = c
	c.SkippedTokens = append(c.SkippedTokens, tok)
}
