package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"method-quiz-service/internal/content"
	"method-quiz-service/internal/domain"
	"method-quiz-service/internal/random"
)

type staticContent struct{}

func (staticContent) GetMethods(_ context.Context, lang domain.Language) ([]domain.Method, error) {
	return content.Table(lang), nil
}

type failingContent struct{ err error }

func (f failingContent) GetMethods(context.Context, domain.Language) ([]domain.Method, error) {
	return nil, f.err
}

func methodNames(lang domain.Language) map[string]bool {
	names := map[string]bool{}
	for _, m := range content.Table(lang) {
		names[m.Name] = true
	}
	return names
}

func TestGenerateMethodQuiz(t *testing.T) {
	gen := NewGenerator(staticContent{})
	names := methodNames(domain.LanguageJavaScript)

	for _, lang := range []domain.Language{domain.LanguageJavaScript, domain.LanguageTypeScript} {
		questions, err := gen.Generate(context.Background(), domain.QuizConfig{
			Language:        lang,
			QuestionCount:   5,
			TimePerQuestion: 30,
		})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(questions) != 5 {
			t.Fatalf("expected 5 questions, got %d", len(questions))
		}
		ids := map[string]bool{}
		correct := map[string]bool{}
		for _, q := range questions {
			assertOptionInvariants(t, q)
			if !names[q.CorrectMethod] {
				t.Fatalf("%s: answer %q not in javascript table", lang, q.CorrectMethod)
			}
			if ids[q.ID] {
				t.Fatalf("duplicate question id %q", q.ID)
			}
			ids[q.ID] = true
			if correct[q.CorrectMethod] {
				t.Fatalf("method %q sampled twice from a large table", q.CorrectMethod)
			}
			correct[q.CorrectMethod] = true
		}
	}
}

func TestGenerateHonorsCategoryFilter(t *testing.T) {
	gen := NewGenerator(staticContent{})
	questions, err := gen.Generate(context.Background(), domain.QuizConfig{
		Language:        domain.LanguageJavaScript,
		Categories:      []string{"Array"},
		QuestionCount:   10,
		TimePerQuestion: 15,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(questions))
	}
	arrayCount := len(content.ItemsByCategory(domain.LanguageJavaScript, "Array"))
	firstBatch := map[string]bool{}
	for i, q := range questions {
		assertOptionInvariants(t, q)
		if q.Category != "Array" {
			t.Fatalf("expected only Array questions, got %s", q.Category)
		}
		if i < arrayCount {
			if firstBatch[q.CorrectMethod] {
				t.Fatalf("repeat %q inside the first batch", q.CorrectMethod)
			}
			firstBatch[q.CorrectMethod] = true
		}
	}
}

func TestGenerateFallsBackWhenFilterTooNarrow(t *testing.T) {
	gen := NewGenerator(staticContent{})
	questions, err := gen.Generate(context.Background(), domain.QuizConfig{
		Language:        domain.LanguageJavaScript,
		Categories:      []string{"Object"}, // three methods only
		QuestionCount:   15,
		TimePerQuestion: 10,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	other := 0
	for _, q := range questions {
		if q.Category != "Object" {
			other++
		}
	}
	if other == 0 {
		t.Fatalf("expected fallback to the full table")
	}
}

func TestGenerateUnknownCategoryFallsBack(t *testing.T) {
	gen := NewGenerator(staticContent{})
	questions, err := gen.Generate(context.Background(), domain.QuizConfig{
		Language:        domain.LanguagePython,
		Categories:      []string{"Nope"},
		QuestionCount:   5,
		TimePerQuestion: 10,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
	names := methodNames(domain.LanguagePython)
	for _, q := range questions {
		if !names[q.CorrectMethod] {
			t.Fatalf("answer %q not in python table", q.CorrectMethod)
		}
	}
}

func TestGenerateProblemQuiz(t *testing.T) {
	gen := NewGeneratorWithRandom(failingContent{err: errors.New("unused")}, random.Default, time.Now)
	questions, err := gen.Generate(context.Background(), domain.QuizConfig{
		QuizType:        domain.QuizTypeProblems,
		QuestionCount:   15,
		TimePerQuestion: 30,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(questions) != 15 {
		t.Fatalf("expected 15 questions from a 10-problem table, got %d", len(questions))
	}
	for _, q := range questions {
		assertOptionInvariants(t, q)
	}
}

func TestGeneratePropagatesContentErrors(t *testing.T) {
	want := errors.New("boom")
	gen := NewGenerator(failingContent{err: want})
	_, err := gen.Generate(context.Background(), domain.QuizConfig{QuestionCount: 5, TimePerQuestion: 10})
	if !errors.Is(err, want) {
		t.Fatalf("expected content error, got %v", err)
	}
}

func TestSampleRepeatsInBatches(t *testing.T) {
	got := sample(random.Default, []int{1, 2, 3}, 7)
	if len(got) != 7 {
		t.Fatalf("expected 7 items, got %v", got)
	}
	for start := 0; start < len(got); start += 3 {
		end := min(start+3, len(got))
		seen := map[int]bool{}
		for _, v := range got[start:end] {
			if seen[v] {
				t.Fatalf("duplicate within batch %v", got[start:end])
			}
			seen[v] = true
		}
	}
	if got := sample(random.Default, []int{}, 3); len(got) != 0 {
		t.Fatalf("expected empty sample, got %v", got)
	}
}
