package app

import (
	"method-quiz-service/internal/domain"
	"method-quiz-service/internal/random"
)

// DefaultDistractorCount is the number of wrong answers per question.
const DefaultDistractorCount = 3

// candidate is the part of a content item the distractor passes look at.
type candidate struct {
	name     string
	category string
	related  []string
}

func methodCandidate(m domain.Method) candidate {
	return candidate{name: m.Name, category: m.Category, related: m.RelatedMethods}
}

func problemCandidate(p domain.AlgorithmProblem) candidate {
	return candidate{name: p.Title, category: p.Category, related: p.RelatedProblems}
}

// GenerateDistractors returns up to count distinct method names other than correct.Name,
// preferring related methods, then the same category, then anything else.
// Fewer than count names are returned when the table runs out.
func GenerateDistractors(src random.Source, correct domain.Method, all []domain.Method, count int) []string {
	pool := make([]candidate, len(all))
	for i, m := range all {
		pool[i] = methodCandidate(m)
	}
	return pickDistractors(src, methodCandidate(correct), pool, count)
}

// GenerateProblemDistractors is GenerateDistractors for the problem table, keyed by title.
func GenerateProblemDistractors(src random.Source, correct domain.AlgorithmProblem, all []domain.AlgorithmProblem, count int) []string {
	pool := make([]candidate, len(all))
	for i, p := range all {
		pool[i] = problemCandidate(p)
	}
	return pickDistractors(src, problemCandidate(correct), pool, count)
}

func pickDistractors(src random.Source, correct candidate, pool []candidate, count int) []string {
	if count <= 0 {
		return []string{}
	}
	used := map[string]struct{}{correct.name: {}}
	known := make(map[string]struct{}, len(pool))
	for _, c := range pool {
		known[c.name] = struct{}{}
	}

	out := make([]string, 0, count)
	add := func(name string) {
		if _, ok := used[name]; ok {
			return
		}
		used[name] = struct{}{}
		out = append(out, name)
	}

	// related names may point outside the table
	for _, name := range correct.related {
		if len(out) >= count {
			return out
		}
		if _, ok := known[name]; ok {
			add(name)
		}
	}

	sameCategory := make([]candidate, 0, len(pool))
	for _, c := range pool {
		if c.category == correct.category {
			sameCategory = append(sameCategory, c)
		}
	}
	for _, c := range random.Shuffle(src, sameCategory) {
		if len(out) >= count {
			return out
		}
		add(c.name)
	}

	for _, c := range random.Shuffle(src, pool) {
		if len(out) >= count {
			return out
		}
		add(c.name)
	}
	return out
}
