package app

import (
	"context"
	"time"

	"method-quiz-service/internal/content"
	"method-quiz-service/internal/domain"
	"method-quiz-service/internal/random"
)

// MinEligibleItems is the smallest filtered table that still yields four distinct options.
const MinEligibleItems = 4

// ContentRepository loads method tables (from cache/backing store).
type ContentRepository interface {
	GetMethods(ctx context.Context, lang domain.Language) ([]domain.Method, error)
}

// Generator assembles quizzes from the content tables.
type Generator struct {
	content ContentRepository
	rnd     random.Source
	builder *QuestionBuilder
}

func NewGenerator(repo ContentRepository) *Generator {
	return NewGeneratorWithRandom(repo, random.Default, time.Now)
}

// NewGeneratorWithRandom pins the random source and clock, mostly for tests.
func NewGeneratorWithRandom(repo ContentRepository, rnd random.Source, now func() time.Time) *Generator {
	if rnd == nil {
		rnd = random.Default
	}
	return &Generator{
		content: repo,
		rnd:     rnd,
		builder: NewQuestionBuilder(rnd, now),
	}
}

// Generate builds cfg.QuestionCount questions in sampling order.
func (g *Generator) Generate(ctx context.Context, cfg domain.QuizConfig) ([]domain.QuizQuestion, error) {
	if cfg.QuizType == domain.QuizTypeProblems {
		return g.generateProblems(cfg), nil
	}

	table, err := g.content.GetMethods(ctx, content.Resolve(cfg.Language))
	if err != nil {
		return nil, err
	}

	eligible := table
	if len(cfg.Categories) > 0 {
		if filtered := content.FilterByCategories(table, cfg.Categories); len(filtered) >= MinEligibleItems {
			eligible = filtered
		}
	}

	// distractors come from the full table, not the filtered one
	picked := sample(g.rnd, eligible, cfg.QuestionCount)
	questions := make([]domain.QuizQuestion, 0, len(picked))
	for i, item := range picked {
		questions = append(questions, g.builder.BuildMethodQuestion(item, table, i))
	}
	return questions, nil
}

func (g *Generator) generateProblems(cfg domain.QuizConfig) []domain.QuizQuestion {
	table := content.Problems()
	eligible := table
	if len(cfg.Categories) > 0 {
		if filtered := content.ProblemsByCategory(cfg.Categories); len(filtered) >= MinEligibleItems {
			eligible = filtered
		}
	}

	picked := sample(g.rnd, eligible, cfg.QuestionCount)
	questions := make([]domain.QuizQuestion, 0, len(picked))
	for i, item := range picked {
		questions = append(questions, g.builder.BuildProblemQuestion(item, table, i))
	}
	return questions
}

// sample draws n items without repetition when possible. Smaller tables are drawn
// in repeated batches; an item never repeats within one batch.
func sample[T any](src random.Source, items []T, n int) []T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	if len(items) >= n {
		return random.PickN(src, items, n)
	}
	out := make([]T, 0, n)
	for len(out) < n {
		out = append(out, random.PickN(src, items, n-len(out))...)
	}
	return out
}
