package app

import (
	"testing"

	"method-quiz-service/internal/content"
	"method-quiz-service/internal/domain"
	"method-quiz-service/internal/random"
)

func findMethod(t *testing.T, table []domain.Method, name string) domain.Method {
	t.Helper()
	for _, m := range table {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("method %q not in table", name)
	return domain.Method{}
}

func TestDistractorsPreferRelatedMethods(t *testing.T) {
	table := content.Table(domain.LanguageJavaScript)
	correct := findMethod(t, table, "keys")

	got := GenerateDistractors(random.Default, correct, table, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 distractors, got %v", got)
	}
	// both related methods exist in the table and come first in declared order
	if got[0] != "values" || got[1] != "entries" {
		t.Fatalf("expected related methods first, got %v", got)
	}
}

func TestDistractorsSkipUnknownRelatedNames(t *testing.T) {
	table := content.Table(domain.LanguageJavaScript)
	correct := findMethod(t, table, "map") // forEach and flatMap are not in the table

	got := GenerateDistractors(random.Default, correct, table, 3)
	if got[0] != "filter" {
		t.Fatalf("expected filter first, got %v", got)
	}
	for _, name := range got {
		if name == "forEach" || name == "flatMap" {
			t.Fatalf("unknown related method %q leaked into %v", name, got)
		}
	}
}

func TestDistractorsFallBackToSameCategory(t *testing.T) {
	table := []domain.Method{
		{Name: "a", Category: "x"},
		{Name: "b", Category: "x"},
		{Name: "c", Category: "y"},
		{Name: "d", Category: "y"},
		{Name: "e", Category: "y"},
	}
	got := GenerateDistractors(random.Default, table[0], table, 1)
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("expected same-category b, got %v", got)
	}
}

func TestDistractorsExcludeCorrectAndDuplicates(t *testing.T) {
	for _, lang := range content.Languages() {
		table := content.Table(lang)
		for _, correct := range table {
			for i := 0; i < 10; i++ {
				got := GenerateDistractors(random.Default, correct, table, 3)
				if len(got) != 3 {
					t.Fatalf("%s/%s: expected 3 distractors, got %v", lang, correct.Name, got)
				}
				seen := map[string]bool{}
				for _, name := range got {
					if name == correct.Name {
						t.Fatalf("%s: correct answer in distractors %v", correct.Name, got)
					}
					if seen[name] {
						t.Fatalf("%s: duplicate distractor in %v", correct.Name, got)
					}
					seen[name] = true
				}
			}
		}
	}
}

func TestDistractorsSmallTableReturnsFewer(t *testing.T) {
	table := []domain.Method{
		{Name: "a", Category: "x", RelatedMethods: []string{"a", "b"}},
		{Name: "b", Category: "x"},
		{Name: "c", Category: "y"},
	}
	got := GenerateDistractors(random.Default, table[0], table, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 distractors from a 3-item table, got %v", got)
	}
	if got := GenerateDistractors(random.Default, table[0], table, 0); len(got) != 0 {
		t.Fatalf("expected none for count 0, got %v", got)
	}
}

func TestProblemDistractors(t *testing.T) {
	problems := content.Problems()
	got := GenerateProblemDistractors(random.Default, problems[0], problems, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 distractors, got %v", got)
	}
	if got[0] != "Three Sum" || got[1] != "Group Anagrams" {
		t.Fatalf("expected related problems first, got %v", got)
	}
}
