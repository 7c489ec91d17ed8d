package parser

import (
	"testing"

	"github.com/cxfuzzy/cxfuzzy/internal/token"
)

func toks(kinds ...token.Kind) []token.Token {
	out := make([]token.Token, len(kinds))
	for i, k := range kinds {
		out[i] = token.Token{Kind: k, Literal: k.String()}
	}
	return out
}

func TestCursorSkipsUnknownAndComment(t *testing.T) {
	c := NewCursor(toks(token.Unknown, token.Comment, token.Identifier, token.Comment, token.Semicolon))
	if got := c.Peek(); got == nil || got.Kind != token.Identifier {
		t.Fatalf("Peek() = %v, want Identifier", got)
	}
	c.Next()
	if got := c.Peek(); got == nil || got.Kind != token.Semicolon {
		t.Fatalf("Peek() after Next = %v, want Semicolon", got)
	}
}

func TestCursorCollapsesAtEOF(t *testing.T) {
	c := NewCursor(toks(token.Identifier, token.EOF))
	c.Next()
	if got := c.Peek(); got != nil {
		t.Fatalf("Peek() past EOF = %v, want nil", got)
	}
}

func TestCursorEmptyStream(t *testing.T) {
	c := NewCursor(nil)
	if got := c.Peek(); got != nil {
		t.Fatalf("Peek() on empty stream = %v, want nil", got)
	}
}

func TestCursorNextPanicsOnRawIdentifier(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Next() on a RawIdentifier token did not panic")
		}
	}()
	c := NewCursor(toks(token.RawIdentifier))
	c.Next()
}

func TestGuardAbortRewindsToPreCallPosition(t *testing.T) {
	c := NewCursor(toks(token.Identifier, token.Semicolon, token.Identifier))
	before := c.Mark()

	g := GuardCursor(c)
	c.Next()
	c.Next()
	g.Abort()

	after := c.Mark()
	if before != after {
		t.Fatalf("cursor position after Abort = %+v, want pre-call %+v", after, before)
	}
}

func TestGuardDismissKeepsAdvance(t *testing.T) {
	c := NewCursor(toks(token.Identifier, token.Semicolon))
	g := GuardCursor(c)
	c.Next()
	g.Dismiss()

	if got := c.Peek(); got == nil || got.Kind != token.Semicolon {
		t.Fatalf("Peek() after Dismiss = %v, want Semicolon", got)
	}
}

func TestNestedGuardsRewindIndependently(t *testing.T) {
	c := NewCursor(toks(token.Identifier, token.Star, token.Semicolon))
	outer := GuardCursor(c)
	c.Next() // Identifier

	inner := GuardCursor(c)
	c.Next() // Star
	inner.Abort()

	if got := c.Peek(); got == nil || got.Kind != token.Star {
		t.Fatalf("Peek() after inner Abort = %v, want Star", got)
	}
	outer.Abort()
	if got := c.Peek(); got == nil || got.Kind != token.Identifier {
		t.Fatalf("Peek() after outer Abort = %v, want Identifier", got)
	}
}
