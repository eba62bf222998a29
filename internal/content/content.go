// Package content exposes the read-only method reference and problem tables.
// Tables are built once at init and shared; callers must not mutate them.
package content

import (
	"strings"

	"method-quiz-service/internal/domain"
)

// DefaultLanguage backs unknown language values.
const DefaultLanguage = domain.LanguageJavaScript

var tables = map[domain.Language][]domain.Method{
	domain.LanguageJavaScript: javascriptMethods,
	domain.LanguageTypeScript: javascriptMethods,
	domain.LanguagePython:     pythonMethods,
}

// Resolve maps a requested language onto the language whose table serves it.
// TypeScript shares the JavaScript table; unknown values use DefaultLanguage.
func Resolve(lang domain.Language) domain.Language {
	switch domain.Language(strings.ToLower(strings.TrimSpace(string(lang)))) {
	case domain.LanguagePython:
		return domain.LanguagePython
	default:
		return DefaultLanguage
	}
}

// Languages lists the languages with a table of their own.
func Languages() []domain.Language {
	return []domain.Language{domain.LanguageJavaScript, domain.LanguagePython}
}

// Table returns the method table for lang. It is never empty.
func Table(lang domain.Language) []domain.Method {
	return tables[Resolve(lang)]
}

// ItemsByCategory filters Table(lang). Unknown categories yield an empty slice.
func ItemsByCategory(lang domain.Language, category string) []domain.Method {
	return FilterByCategories(Table(lang), []string{category})
}

// FilterByCategories keeps methods whose category is in categories, preserving order.
func FilterByCategories(methods []domain.Method, categories []string) []domain.Method {
	wanted := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		wanted[c] = struct{}{}
	}
	out := make([]domain.Method, 0, len(methods))
	for _, m := range methods {
		if _, ok := wanted[m.Category]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Categories lists the distinct categories of a table in first-seen order.
func Categories(methods []domain.Method) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range methods {
		if _, ok := seen[m.Category]; ok {
			continue
		}
		seen[m.Category] = struct{}{}
		out = append(out, m.Category)
	}
	return out
}

// Problems returns the algorithm problem table.
func Problems() []domain.AlgorithmProblem {
	return algorithmProblems
}

// ProblemsByCategory filters Problems by category.
func ProblemsByCategory(categories []string) []domain.AlgorithmProblem {
	wanted := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		wanted[c] = struct{}{}
	}
	out := make([]domain.AlgorithmProblem, 0, len(algorithmProblems))
	for _, p := range algorithmProblems {
		if _, ok := wanted[p.Category]; ok {
			out = append(out, p)
		}
	}
	return out
}

// ProblemCategories lists the distinct problem categories in first-seen order.
func ProblemCategories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range algorithmProblems {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
