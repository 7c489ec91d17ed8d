package parser

import (
	"github.com/cxfuzzy/cxfuzzy/internal/ast"
	"github.com/cxfuzzy/cxfuzzy/internal/token"
)

// parseTypeCore recognizes the qualifier/core-name portion of a type:
// leading CV qualifiers, then 'auto', a run of built-in type keywords,
// or a qualified name (with optional template arguments), then
// trailing CV qualifiers. It never consumes '*'/'&'/'&&' decorations;
// callers that want those call parseTypeDecorations separately, so
// that a declaration statement's shared base type can be parsed once
// and decorated independently per declarator (spec.md §4.5, §9).
func parseTypeCore(c *Cursor) (*ast.Type, bool) {
	g := GuardCursor(c)
	typ := &ast.Type{}

	for tok := c.Peek(); tok != nil && token.IsCVQualifier(tok.Kind); tok = c.Peek() {
		typ.AddNameQualifier(c.Next())
	}

	core := false
	if c.Check(token.KwAuto) {
		typ.AddNameQualifier(c.Next())
		core = true
	}
	if !core {
		for tok := c.Peek(); tok != nil && token.IsBuiltinType(tok.Kind); tok = c.Peek() {
			typ.AddNameQualifier(c.Next())
			core = true
		}
	}
	if !core {
		core = parseQualifiedNameInto(c, typ)
	}
	if !core {
		g.Abort()
		return nil, false
	}

	for tok := c.Peek(); tok != nil && token.IsCVQualifier(tok.Kind); tok = c.Peek() {
		typ.AddNameQualifier(c.Next())
	}

	g.Dismiss()
	return typ, true
}

// parseTypeDecorations consumes a run of '*', '&', '&&' tokens onto
// typ.
func parseTypeDecorations(c *Cursor, typ *ast.Type) {
	for {
		tok := c.Peek()
		if tok == nil {
			return
		}
		switch tok.Kind {
		case token.Star:
			typ.AddDecoration(ast.DecorationPointer, c.Next())
		case token.Amp, token.AmpAmp:
			typ.AddDecoration(ast.DecorationReference, c.Next())
		default:
			return
		}
	}
}

// tryParseType recognizes a complete type: core plus decorations. Used
// wherever a type stands alone (return types, parameter types,
// template arguments, base-class names) rather than being shared
// across declarators.
func tryParseType(c *Cursor) (*ast.Type, bool) {
	g := GuardCursor(c)
	typ, ok := parseTypeCore(c)
	if !ok {
		g.Abort()
		return nil, false
	}
	parseTypeDecorations(c, typ)
	g.Dismiss()
	return typ, true
}

// parseVarDeclarator parses one declarator sharing baseType: its own
// decorations, its name, and an optional '=' initializer.
func parseVarDeclarator(c *Cursor, baseType *ast.Type) (*ast.VarDecl, bool) {
	typ := baseType.CloneWithoutDecorations()
	parseTypeDecorations(c, typ)

	if !c.Check(token.Identifier) {
		return nil, false
	}
	vd := &ast.VarDecl{VariableType: typ}
	vd.SetName(c.Next())

	if c.Check(token.Equal) {
		g := GuardCursor(c)
		eq := c.Next()
		value := parseAssignmentAndAbove(c, false)
		if value == nil {
			g.Abort()
			return vd, true
		}
		g.Dismiss()
		vd.Init = ast.NewAssignmentInit(eq, value)
	}
	return vd, true
}

// tryParseDeclStmt recognizes a variable declaration statement: a
// shared base type followed by one or more comma-separated
// declarators and a terminating ';'.
func tryParseDeclStmt(c *Cursor) (*ast.DeclStmt, bool) {
	g := GuardCursor(c)
	baseType, ok := parseTypeCore(c)
	if !ok {
		g.Abort()
		return nil, false
	}

	ds := &ast.DeclStmt{}
	first := true
	for {
		if !first {
			if !c.Check(token.Comma) {
				break
			}
			ds.AppendComma(c.Next())
		}
		first = false

		decl, ok := parseVarDeclarator(c, baseType)
		if !ok {
			g.Abort()
			return nil, false
		}
		ds.AddDecl(decl)
	}

	if !c.Check(token.Semicolon) {
		g.Abort()
		return nil, false
	}
	ds.SetSemi(c.Next())
	g.Dismiss()
	return ds, true
}

// isModifierKeyword reports whether kind is 'static' or 'virtual',
// the two keywords fused into FunctionDecl.Modifier.
func isModifierKeyword(kind token.Kind) bool {
	return kind == token.KwStatic || kind == token.KwVirtual
}

// tryParseFunctionDecl recognizes a function declaration or
// definition, including the destructor quirk documented on
// ast.FunctionDecl. nameOptional permits a name-less declarator — the
// destructor pattern, and a constructor whose "return type" is really
// its own name — and is only ever true inside a class body (spec.md
// §4.5, §4.7).
func tryParseFunctionDecl(c *Cursor, nameOptional bool) (*ast.FunctionDecl, bool) {
	g := GuardCursor(c)
	f := &ast.FunctionDecl{}

	if tok := c.Peek(); tok != nil && isModifierKeyword(tok.Kind) {
		f.SetModifier(c.Next())
	}

	if nameOptional && c.Check(token.Tilde) {
		f.SetName(c.Next())
		retType, ok := tryParseType(c)
		if !ok {
			g.Abort()
			return nil, false
		}
		f.ReturnType = retType
	} else {
		retType, ok := tryParseType(c)
		if !ok {
			g.Abort()
			return nil, false
		}
		f.ReturnType = retType
		switch {
		case c.Check(token.Identifier):
			f.SetName(c.Next())
		case nameOptional:
			// Constructor: the parsed type is the function's own name.
		default:
			g.Abort()
			return nil, false
		}
	}

	if !c.Check(token.LParen) {
		g.Abort()
		return nil, false
	}
	f.SetLeftParen(c.Next())

	if !c.Check(token.RParen) {
		for {
			g2 := GuardCursor(c)
			ptype, ok := tryParseType(c)
			if !ok {
				g2.Abort()
				break
			}
			param := &ast.VarDecl{VariableType: ptype}
			if c.Check(token.Identifier) {
				param.SetName(c.Next())
			}
			g2.Dismiss()
			f.AppendParam(param)
			if c.Check(token.Comma) {
				f.AppendComma(c.Next())
				continue
			}
			break
		}
	}

	if !c.Check(token.RParen) {
		g.Abort()
		return nil, false
	}
	f.SetRightParen(c.Next())

	// Approximation of function trailers (spec.md §9): everything
	// between ')' and the body/terminator is claimed opaquely, with
	// no structured meaning, covering member-initializer lists,
	// attributes, and trailing cv/ref/noexcept qualifiers alike.
	for {
		tok := c.Peek()
		if tok == nil || tok.Kind == token.LBrace || tok.Kind == token.Semicolon {
			break
		}
		f.AppendTrailerToken(c.Next())
	}

	switch {
	case c.Check(token.LBrace):
		body, ok := parseCompoundStmt(c)
		if !ok {
			g.Abort()
			return nil, false
		}
		f.Body = body
	case c.Check(token.Semicolon):
		f.SetSemi(c.Next())
	default:
		g.Abort()
		return nil, false
	}

	g.Dismiss()
	return f, true
}

// isClassKey reports whether kind opens a ClassDecl.
func isClassKey(kind token.Kind) bool {
	switch kind {
	case token.KwClass, token.KwStruct, token.KwUnion, token.KwEnum:
		return true
	default:
		return false
	}
}

// isAccessSpecifierKeyword reports whether kind is a base-class access
// specifier.
func isAccessSpecifierKeyword(kind token.Kind) bool {
	switch kind {
	case token.KwPublic, token.KwProtected, token.KwPrivate:
		return true
	default:
		return false
	}
}

// parseBaseList recognizes the comma-separated `access? Type` list
// following a class's ':'. It reports whether the whole list parsed
// cleanly; on failure the caller rewinds to the start of the list,
// drops any bases added to cd, and claims the list's tokens as
// skipped tokens instead.
func parseBaseList(c *Cursor, cd *ast.ClassDecl) bool {
	for {
		var access *token.Token
		if tok := c.Peek(); tok != nil && isAccessSpecifierKeyword(tok.Kind) {
			access = c.Next()
		}
		typ, ok := tryParseType(c)
		if !ok {
			return false
		}
		var comma *token.Token
		if c.Check(token.Comma) {
			comma = c.Next()
		}
		cd.AddBaseClass(access, typ, comma)
		if comma == nil {
			return true
		}
	}
}

// tryParseClassDecl recognizes a class/struct/union/enum declaration.
// If the base-class list cannot be fully parsed, tokens are skipped
// opaquely up to the next '{' (spec.md §4.5).
func tryParseClassDecl(c *Cursor) (*ast.ClassDecl, bool) {
	tok := c.Peek()
	if tok == nil || !isClassKey(tok.Kind) {
		return nil, false
	}
	g := GuardCursor(c)
	cd := &ast.ClassDecl{}
	cd.SetClassKey(c.Next())

	if name, ok := tryParseType(c); ok {
		cd.Name = name
	}

	if c.Check(token.Colon) {
		cd.SetColon(c.Next())
		g2 := GuardCursor(c)
		if parseBaseList(c, cd) {
			g2.Dismiss()
		} else {
			g2.Abort()
			cd.Bases = nil
			for {
				t := c.Peek()
				if t == nil || t.Kind == token.LBrace {
					break
				}
				cd.SetTokenOfOpaqueSkip(c.Next())
			}
		}
	}

	if c.Check(token.LBrace) {
		cd.SetLeftBrace(c.Next())
		for !c.Check(token.RBrace) {
			if c.Peek() == nil {
				break
			}
			cd.AddStmt(ParseAny(c, true))
		}
		if c.Check(token.RBrace) {
			cd.SetRightBrace(c.Next())
		}
	}

	if c.Check(token.Semicolon) {
		cd.SetSemi(c.Next())
	}

	g.Dismiss()
	return cd, true
}
