package sexp

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/simd-testgen/errors"
	"github.com/wippyai/simd-testgen/wast/internal/token"
)

func parse(t *testing.T, src string) []*Node {
	t.Helper()
	tokens, err := token.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	forms, err := New(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return forms
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		forms []string
	}{
		{"empty", "", nil},
		{"atom", "foo", []string{"foo"}},
		{"empty_list", "()", []string{"()"}},
		{"nested", "(a (b c) d)", []string{"(a (b c) d)"}},
		{"two_forms", "(module)\n(assert_return)", []string{"(module)", "(assert_return)"}},
		{"string_atom", `(invoke "i16x8.add")`, []string{`(invoke "i16x8.add")`}},
		{
			"multi_line_assertion",
			"(assert_return (invoke \"i16x8.add_sat_s\"\n  (v128.const i16x8 1 2 3 4 5 6 7 8)\n  (v128.const i16x8 0 0 0 0 0 0 0 0))\n  (v128.const i16x8 1 2 3 4 5 6 7 8))",
			[]string{`(assert_return (invoke "i16x8.add_sat_s" (v128.const i16x8 1 2 3 4 5 6 7 8) (v128.const i16x8 0 0 0 0 0 0 0 0)) (v128.const i16x8 1 2 3 4 5 6 7 8))`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forms := parse(t, tt.input)
			if len(forms) != len(tt.forms) {
				t.Fatalf("got %d forms, want %d", len(forms), len(tt.forms))
			}
			for i, f := range forms {
				if got := f.String(); got != tt.forms[i] {
					t.Errorf("form %d = %s, want %s", i, got, tt.forms[i])
				}
			}
		})
	}
}

func TestParse_Lines(t *testing.T) {
	forms := parse(t, "(module)\n\n(assert_return\n  (invoke \"x\"))")
	if len(forms) != 2 {
		t.Fatalf("got %d forms", len(forms))
	}
	if forms[0].Line != 1 || forms[1].Line != 3 {
		t.Errorf("lines = %d, %d, want 1, 3", forms[0].Line, forms[1].Line)
	}
	invoke := forms[1].Items[1]
	if invoke.Line != 4 || invoke.Head() != "invoke" {
		t.Errorf("invoke = %s at line %d", invoke, invoke.Line)
	}
}

func TestParse_Truncated(t *testing.T) {
	tokens, _ := token.Tokenize("(module)\n(assert_return (invoke \"a\")\n")
	p := New(tokens)
	forms, err := p.Parse()
	if len(forms) != 1 || forms[0].Head() != "module" {
		t.Fatalf("complete forms before the truncation should survive, got %v", forms)
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindTruncated}) {
		t.Fatalf("error = %v, want truncated", err)
	}
	diags := p.Diagnostics()
	if len(diags) != 1 || diags[0].Line != 2 {
		t.Errorf("diagnostics = %v", diags)
	}
}

func TestParse_StrayParen(t *testing.T) {
	tokens, _ := token.Tokenize("(a))\n(b)")
	p := New(tokens)
	forms, err := p.Parse()
	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindUnexpectedToken}) {
		t.Errorf("error = %v, want unexpected_token", err)
	}
}

func TestParseString_TokenizerTruncation(t *testing.T) {
	forms, diags := ParseString("(a)\n(b \"open")
	if len(forms) != 1 {
		t.Fatalf("got %d forms, want 1", len(forms))
	}
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(diags), diags)
	}
	for _, d := range diags {
		if d.Kind != errors.KindTruncated {
			t.Errorf("diagnostic kind = %v, want truncated", d.Kind)
		}
	}
}

func TestNodeHelpers(t *testing.T) {
	forms := parse(t, `(assert_return (invoke $M "i16x8.add" (v128.const i16x8 1) (v128.const i16x8 2)) (either (v128.const i16x8 3)))`)
	root := forms[0]

	if root.Head() != "assert_return" {
		t.Errorf("Head() = %q", root.Head())
	}
	if len(root.Args()) != 2 {
		t.Errorf("Args() = %d items", len(root.Args()))
	}
	consts := root.Find("v128.const")
	if len(consts) != 3 {
		t.Fatalf("Find found %d constants, want 3", len(consts))
	}
	if got := consts[2].String(); got != "(v128.const i16x8 3)" {
		t.Errorf("third constant = %s", got)
	}

	atom := root.Items[0]
	if atom.Head() != "" || atom.Args() != nil {
		t.Error("atoms have no head or args")
	}
	if !atom.IsAtom(token.Keyword) || atom.IsList() {
		t.Error("assert_return should be a keyword atom")
	}

	var strs []string
	root.Walk(func(n *Node) bool {
		if n.IsAtom(token.String) {
			strs = append(strs, n.Token.Value)
		}
		return true
	})
	if len(strs) != 1 || strs[0] != "i16x8.add" {
		t.Errorf("strings = %v", strs)
	}
}
