package app

import (
	"fmt"
	"strings"
	"time"

	"method-quiz-service/internal/domain"
	"method-quiz-service/internal/random"
	"method-quiz-service/internal/snippet"
)

// QuestionBuilder turns a single content item into a multiple-choice question.
type QuestionBuilder struct {
	rnd random.Source
	now func() time.Time
}

func NewQuestionBuilder(rnd random.Source, now func() time.Time) *QuestionBuilder {
	if rnd == nil {
		rnd = random.Default
	}
	if now == nil {
		now = time.Now
	}
	return &QuestionBuilder{rnd: rnd, now: now}
}

// BuildMethodQuestion asks which method turns an example's input into its output.
// item.Examples must not be empty.
func (b *QuestionBuilder) BuildMethodQuestion(item domain.Method, all []domain.Method, index int) domain.QuizQuestion {
	example := random.PickOne(b.rnd, item.Examples)
	wrong := GenerateDistractors(b.rnd, item, all, DefaultDistractorCount)
	options := random.Shuffle(b.rnd, append([]string{item.Name}, wrong...))
	analyzed := snippet.Analyze(example.Code)

	explanation := example.Explanation
	if explanation == "" {
		explanation = item.Description
	}

	return domain.QuizQuestion{
		ID:            b.questionID(index),
		Input:         analyzed.DataInput,
		Output:        example.Output,
		CorrectMethod: item.Name,
		Options:       options,
		Difficulty:    ClassifyDifficulty(item.Arguments),
		Explanation:   explanation,
		Category:      item.Category,
		MethodHint:    analyzed.MethodHint,
	}
}

// BuildProblemQuestion asks which problem an example input/output pair belongs to.
// item.Examples must not be empty.
func (b *QuestionBuilder) BuildProblemQuestion(item domain.AlgorithmProblem, all []domain.AlgorithmProblem, index int) domain.QuizQuestion {
	example := random.PickOne(b.rnd, item.Examples)
	wrong := GenerateProblemDistractors(b.rnd, item, all, DefaultDistractorCount)
	options := random.Shuffle(b.rnd, append([]string{item.Title}, wrong...))

	explanation := example.Explanation
	if explanation == "" {
		explanation = item.Description
	}
	difficulty := item.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}

	return domain.QuizQuestion{
		ID:            b.questionID(index),
		Input:         example.Input,
		Output:        example.Output,
		CorrectMethod: item.Title,
		Options:       options,
		Difficulty:    difficulty,
		Explanation:   explanation,
		Category:      item.Category,
		MethodHint:    item.Category + " problem",
	}
}

// questionID is unique within one generation call, not globally.
func (b *QuestionBuilder) questionID(index int) string {
	return fmt.Sprintf("q-%d-%d", index, b.now().UnixNano())
}

// ClassifyDifficulty grades a method by its argument shape:
// hard takes a callback and more than two arguments, medium takes a callback
// or more than one argument, everything else is easy.
func ClassifyDifficulty(args []domain.Argument) domain.Difficulty {
	hasCallback := false
	for _, arg := range args {
		t := strings.ToLower(arg.Type)
		if strings.Contains(t, "function") || strings.Contains(t, "callback") {
			hasCallback = true
			break
		}
	}
	switch {
	case hasCallback && len(args) > 2:
		return domain.DifficultyHard
	case hasCallback || len(args) > 1:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyEasy
	}
}
