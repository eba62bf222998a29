// Package snippet pulls a displayable input and a coarse method hint out of a
// one-line code example. It never evaluates code.
package snippet

import (
	"regexp"
	"strings"
)

const (
	// Placeholder is returned as the input when no rule matches.
	Placeholder = "[data]"
	// HintFallback is returned as the hint when no rule matches.
	HintFallback = "Apply a method"
	// HintCall is the hint for the generic parenthesized-group rule.
	HintCall = "Method call"
)

// Result is the outcome of analyzing one snippet.
type Result struct {
	DataInput  string
	MethodHint string
}

// Rule reports whether it applies to code and, if so, what it extracted.
type Rule struct {
	Name  string
	Match func(code string) (Result, bool)
}

var (
	namespaceCall = regexp.MustCompile(`^(Object|Math|Number)\.\w+\((.+)\)$`)
	arrayReceiver = regexp.MustCompile(`^(\[.*?\])\.\w+\(`)
	quotedString  = regexp.MustCompile(`^("[^"]*"|'[^']*'|` + "`[^`]*`" + `)\.\w+\(`)
	parenReceiver = regexp.MustCompile(`^\((.+?)\)\.\w+\(`)
	spreadCall    = regexp.MustCompile(`^(Object|Math|Number)\.\w+\(\.\.\.(\[.*\])\)$`)
	firstGroup    = regexp.MustCompile(`\(([^()]*)\)`)
)

// Rules is evaluated in order; the first match wins.
var Rules = []Rule{
	{Name: "namespace-call", Match: matchNamespaceCall},
	{Name: "array-receiver", Match: matchArrayReceiver},
	{Name: "string-receiver", Match: matchStringReceiver},
	{Name: "paren-receiver", Match: matchParenReceiver},
	{Name: "namespace-spread", Match: matchSpreadCall},
	{Name: "first-group", Match: matchFirstGroup},
}

// Analyze runs Rules against code and falls back to the placeholder.
func Analyze(code string) Result {
	return AnalyzeWith(Rules, code)
}

// AnalyzeWith runs a custom rule list.
func AnalyzeWith(rules []Rule, code string) Result {
	normalized := normalize(code)
	for _, rule := range rules {
		if res, ok := rule.Match(normalized); ok {
			return res
		}
	}
	return Result{DataInput: Placeholder, MethodHint: HintFallback}
}

func normalize(code string) string {
	code = strings.TrimSpace(code)
	return strings.TrimSpace(strings.TrimSuffix(code, ";"))
}

// matchNamespaceCall leaves spread arguments to matchSpreadCall.
func matchNamespaceCall(code string) (Result, bool) {
	m := namespaceCall.FindStringSubmatch(code)
	if m == nil {
		return Result{}, false
	}
	args := strings.TrimSpace(m[2])
	if strings.HasPrefix(args, "...") {
		return Result{}, false
	}
	return Result{DataInput: args, MethodHint: m[1] + " method"}, true
}

func matchArrayReceiver(code string) (Result, bool) {
	m := arrayReceiver.FindStringSubmatch(code)
	if m == nil {
		return Result{}, false
	}
	return Result{DataInput: m[1], MethodHint: "Array method"}, true
}

func matchStringReceiver(code string) (Result, bool) {
	m := quotedString.FindStringSubmatch(code)
	if m == nil {
		return Result{}, false
	}
	return Result{DataInput: m[1], MethodHint: "String method"}, true
}

func matchParenReceiver(code string) (Result, bool) {
	m := parenReceiver.FindStringSubmatch(code)
	if m == nil {
		return Result{}, false
	}
	return Result{DataInput: m[1], MethodHint: "Number method"}, true
}

func matchSpreadCall(code string) (Result, bool) {
	m := spreadCall.FindStringSubmatch(code)
	if m == nil {
		return Result{}, false
	}
	return Result{DataInput: m[2], MethodHint: m[1] + " method"}, true
}

// matchFirstGroup takes the first non-empty group, so "a.slice().join('-')" yields '-'.
func matchFirstGroup(code string) (Result, bool) {
	for _, m := range firstGroup.FindAllStringSubmatch(code, -1) {
		if args := strings.TrimSpace(m[1]); args != "" {
			return Result{DataInput: args, MethodHint: HintCall}, true
		}
	}
	return Result{}, false
}
