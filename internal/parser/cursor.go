// Package parser implements the fuzzy recursive-descent parser: a
// backtracking token cursor, an expression precedence climber,
// declaration/statement recognizers, and the type/qualified-name
// recognizers they share. The parser never rejects input; every token
// ends up owned by some node in the returned tree, down to the
// unparsable-block salvage path.
package parser

import "github.com/cxfuzzy/cxfuzzy/internal/token"

// Cursor presents a token slice as a forward stream that transparently
// hides Unknown and Comment tokens (spec.md §4.1, §3 invariant 2). It
// never mutates the underlying slice except through the tokens' own
// Ref field, set by the AST nodes that claim them.
type Cursor struct {
	tokens []token.Token
	first  int
	last   int
}

// NewCursor returns a Cursor over the full token slice.
func NewCursor(tokens []token.Token) *Cursor {
	c := &Cursor{tokens: tokens, first: 0, last: len(tokens)}
	c.skipHidden()
	return c
}

// skipHidden advances first past any run of Unknown/Comment tokens,
// and collapses the stream to empty once it reaches EOF.
func (c *Cursor) skipHidden() {
	for c.first < c.last {
		k := c.tokens[c.first].Kind
		if k == token.Unknown || k == token.Comment {
			c.first++
			continue
		}
		if k == token.EOF {
			c.first = c.last
			return
		}
		return
	}
}

// Peek returns the current token without consuming it, or nil if the
// stream is exhausted.
func (c *Cursor) Peek() *token.Token {
	if c.first >= c.last {
		return nil
	}
	return &c.tokens[c.first]
}

// Check reports whether the current token has the given kind.
func (c *Cursor) Check(kind token.Kind) bool {
	t := c.Peek()
	return t != nil && t.Kind == kind
}

// Next consumes and returns the current token, then advances past any
// following hidden tokens, per spec.md §4.1. It panics if the stream
// is exhausted (callers must Check/Peek first) or if the token about
// to be returned is a RawIdentifier, which would violate the lexer
// contract.
func (c *Cursor) Next() *token.Token {
	if c.first >= c.last {
		panic("parser: Next called on an exhausted cursor")
	}
	ret := &c.tokens[c.first]
	if ret.Kind == token.RawIdentifier {
		panic("parser: raw identifier token reached the parser; the lexer must promote it first")
	}
	c.first++
	c.skipHidden()
	return ret
}

// mark is an opaque cursor snapshot.
type mark struct {
	first, last int
}

// Mark snapshots the cursor's position.
func (c *Cursor) Mark() mark { return mark{c.first, c.last} }

// Rewind restores a previously taken snapshot.
func (c *Cursor) Rewind(m mark) {
	c.first, c.last = m.first, m.last
}

// Guard is a scoped cursor snapshot that rewinds the cursor on Abort
// and does nothing on Dismiss. Every speculative recognizer acquires a
// guard at entry and must call exactly one of Dismiss (on success) or
// Abort (on failure) before returning, encoding spec.md §3 invariant 3
// structurally: a failed recognizer's net cursor effect is always a
// rewind to the pre-call position.
type Guard struct {
	c  *Cursor
	m  mark
}

// GuardCursor opens a new guard over c.
func GuardCursor(c *Cursor) Guard {
	return Guard{c: c, m: c.Mark()}
}

// Abort rewinds the cursor to the position it had when the guard was
// opened.
func (g Guard) Abort() { g.c.Rewind(g.m) }

// Dismiss is a no-op marking the speculative parse as committed; it
// exists so call sites read symmetrically with Abort and so a future
// guard implementation could assert against double-resolution.
func (g Guard) Dismiss() {}
