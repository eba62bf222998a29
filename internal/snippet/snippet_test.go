package snippet

import "testing"

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		wantInput string
		wantHint  string
	}{
		{name: "array literal receiver", code: "[1, 2, 3].map(x => x * 2)", wantInput: "[1, 2, 3]", wantHint: "Array method"},
		{name: "nested array receiver", code: "[[1, 2], [3]].flat()", wantInput: "[[1, 2], [3]]", wantHint: "Array method"},
		{name: "object namespace", code: "Object.keys({a: 1, b: 2})", wantInput: "{a: 1, b: 2}", wantHint: "Object method"},
		{name: "math namespace", code: "Math.round(4.6)", wantInput: "4.6", wantHint: "Math method"},
		{name: "number namespace with semicolon", code: "Number.isInteger(5);", wantInput: "5", wantHint: "Number method"},
		{name: "double quoted string", code: `"hello".toUpperCase()`, wantInput: `"hello"`, wantHint: "String method"},
		{name: "single quoted string", code: `'a-b-c'.split('-')`, wantInput: `'a-b-c'`, wantHint: "String method"},
		{name: "parenthesized number", code: "(3.14159).toFixed(2)", wantInput: "3.14159", wantHint: "Number method"},
		{name: "spread into math", code: "Math.max(...[1, 2, 3])", wantInput: "[1, 2, 3]", wantHint: "Math method"},
		{name: "python builtin", code: "len([1, 2, 3])", wantInput: "[1, 2, 3]", wantHint: HintCall},
		{name: "variable receiver", code: "arr.includes(2)", wantInput: "2", wantHint: HintCall},
		{name: "empty group then argument", code: "arr.slice().join('-')", wantInput: "'-'", wantHint: HintCall},
		{name: "python chained call", code: "s.strip().split(',')", wantInput: "','", wantHint: HintCall},
		{name: "empty call falls back", code: "items.pop()", wantInput: Placeholder, wantHint: HintFallback},
		{name: "no parens", code: "x = 5", wantInput: Placeholder, wantHint: HintFallback},
		{name: "empty", code: "", wantInput: Placeholder, wantHint: HintFallback},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Analyze(tc.code)
			if got.DataInput != tc.wantInput || got.MethodHint != tc.wantHint {
				t.Fatalf("Analyze(%q) = %+v, want {%q %q}", tc.code, got, tc.wantInput, tc.wantHint)
			}
		})
	}
}

func TestAnalyzeWithCustomRules(t *testing.T) {
	rules := []Rule{{
		Name: "always",
		Match: func(code string) (Result, bool) {
			return Result{DataInput: code, MethodHint: "custom"}, true
		},
	}}
	got := AnalyzeWith(rules, "  anything;  ")
	if got.DataInput != "anything" || got.MethodHint != "custom" {
		t.Fatalf("unexpected result %+v", got)
	}
	if got := AnalyzeWith(nil, "foo(1)"); got.DataInput != Placeholder {
		t.Fatalf("expected placeholder with no rules, got %+v", got)
	}
}
