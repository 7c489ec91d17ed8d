package highlight

import (
	"testing"

	"github.com/cxfuzzy/cxfuzzy/internal/lexer"
	"github.com/cxfuzzy/cxfuzzy/internal/parser"
)

func rolesFor(t *testing.T, src string) []Entry {
	t.Helper()
	tu := parser.Parse(lexer.Lex(src))
	return Roles(tu)
}

func TestFunctionDeclRoles(t *testing.T) {
	entries := rolesFor(t, "int add(int a, int b) { return a; }")

	want := []struct {
		literal string
		role    Role
	}{
		{"int", RoleTypeName},
		{"add", RoleBindingName},
		{"(", RoleOperator},
		{"int", RoleTypeName},
		{"a", RoleBindingName},
		{",", RoleOperator},
		{"int", RoleTypeName},
		{"b", RoleBindingName},
		{")", RoleOperator},
		{"{", RoleOperator},
		{"return", RoleKeyword},
		{"a", RoleIdentifier},
		{";", RoleOperator},
		{"}", RoleOperator},
	}

	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i, e := range entries {
		if e.Tok.Literal != want[i].literal || e.Role != want[i].role {
			t.Errorf("entry %d = (%q, %s), want (%q, %s)", i, e.Tok.Literal, e.Role, want[i].literal, want[i].role)
		}
	}
}

func TestUnparsableRoleOnSalvage(t *testing.T) {
	entries := rolesFor(t, "garbage;;")
	sawUnparsable := false
	for _, e := range entries {
		if e.Role == RoleUnparsable {
			sawUnparsable = true
		}
	}
	if !sawUnparsable {
		t.Fatalf("expected a RoleUnparsable entry for the stray ';' among %+v", entries)
	}
}

func TestDestructorNameIsOperatorRole(t *testing.T) {
	entries := rolesFor(t, "class Foo { ~Foo(); };")
	found := false
	for _, e := range entries {
		if e.Tok.Literal == "~" {
			found = true
			if e.Role != RoleOperator {
				t.Errorf("destructor tilde role = %s, want operator", e.Role)
			}
		}
	}
	if !found {
		t.Fatal("expected to find the '~' token among role entries")
	}
}
