package ast

import "github.com/cxfuzzy/cxfuzzy/internal/token"

// DecorationKind distinguishes the two decoration shapes a Type can
// carry: a pointer, or a reference (lvalue '&' or rvalue '&&', both
// filed under Reference — the distinguishing '&' vs '&&' spelling is
// recoverable from the decoration's own token).
type DecorationKind int

const (
	DecorationPointer DecorationKind = iota
	DecorationReference
)

// Decoration is a single '*', '&', or '&&' attached to a Type.
type Decoration struct {
	Kind DecorationKind
	Tok  *token.Token
}

// TemplateArg is a single template argument, parsed first as a Type
// and, on failure, as an Expr (spec.md §4.3). Exactly one of TypeArg,
// ExprArg is non-nil.
type TemplateArg struct {
	TypeArg *Type
	ExprArg Expr
}

// Type is a sequence of name-qualifier tokens (CV-qualifiers, built-in
// type keywords, or a qualified identifier with optional template
// arguments) followed by an ordered list of decorations.
//
// Type is itself an ASTElement: every qualifier, template-syntax, and
// decoration token it owns has its back-reference set to the Type
// that claimed it.
type Type struct {
	Qualifiers []*token.Token

	// TemplateTokens holds the leading '<', every separating ',', and
	// the trailing '>', in that order; nil when there is no template
	// argument list (as opposed to an empty-but-present "<>", which
	// populates this with exactly the '<' and '>' tokens).
	TemplateTokens []*token.Token
	TemplateArgs   []TemplateArg

	Decorations []Decoration
}

func (t *Type) Kind() NodeKind   { return KindType }
func (t *Type) ASTClass() string { return astClass(t.Kind()) }

// AddNameQualifier appends tok to the type's name-qualifier sequence
// and claims it. Satisfies the qualSink interface the qualified-name
// recognizer (spec.md §4.3) parses into.
func (t *Type) AddNameQualifier(tok *token.Token) {
	t.Qualifiers = append(t.Qualifiers, tok)
	tok.Ref = t
}

// MakeTemplateArgs marks this type as carrying a template-argument
// list, even before any argument or separator token has been added
// (the "<>" empty-list case).
func (t *Type) MakeTemplateArgs() {
	if t.TemplateTokens == nil {
		t.TemplateTokens = []*token.Token{}
	}
}

// AddTemplateSeparator appends and claims a '<', ',', or '>' token
// belonging to this type's template-argument list.
func (t *Type) AddTemplateSeparator(tok *token.Token) {
	t.TemplateTokens = append(t.TemplateTokens, tok)
	tok.Ref = t
}

// AddTemplateArgument appends one already-parsed template argument.
func (t *Type) AddTemplateArgument(arg TemplateArg) {
	t.TemplateArgs = append(t.TemplateArgs, arg)
}

// AddDecoration appends and claims one '*', '&', or '&&' decoration
// token.
func (t *Type) AddDecoration(kind DecorationKind, tok *token.Token) {
	t.Decorations = append(t.Decorations, Decoration{Kind: kind, Tok: tok})
	tok.Ref = t
}

// CloneWithoutDecorations returns a structurally independent copy of
// t's name-qualifier and template-argument data, with an empty
// decoration list. Used by the declaration parser (spec.md §4.5,
// §9 "Shared base type in multi-declarator statements") so that each
// declarator in `int *a, **b;` gets its own decoration list while
// sharing the same underlying qualifier tokens.
//
// The clone re-claims every qualifier and template-syntax token (their
// Ref is overwritten to point at the clone), matching the original's
// unconditional per-declarator cloneWithoutDecorations call: in a
// statement with N declarators, the base-type tokens end up owned by
// whichever declarator was cloned last, since each clone's claim
// overwrites the previous one's. Earlier declarators keep the same
// token pointers in their own Qualifiers slice — so the text and
// coverage are correct for every declarator — but are no longer the
// back-reference owner of those tokens. This is a deliberate exception
// to invariant 5 for shared base-type tokens only; own decorations are
// never shared and always satisfy it.
func (t *Type) CloneWithoutDecorations() *Type {
	clone := &Type{}
	for _, q := range t.Qualifiers {
		clone.AddNameQualifier(q)
	}
	if t.TemplateTokens != nil {
		clone.MakeTemplateArgs()
		for _, tt := range t.TemplateTokens {
			clone.AddTemplateSeparator(tt)
		}
		clone.TemplateArgs = append([]TemplateArg{}, t.TemplateArgs...)
	}
	return clone
}
