package app

import (
	"math"
	"time"

	"method-quiz-service/internal/domain"
)

const (
	pointsPerCorrect = 10
	fastBonus        = 5
)

// StreakMultiplier returns 3 from a streak of 5, 2 from 3, otherwise 1.
func StreakMultiplier(streak int) int {
	switch {
	case streak >= 5:
		return 3
	case streak >= 3:
		return 2
	default:
		return 1
	}
}

// Score computes the points for one answer. An answer is fast when it took at most
// half the time limit. Both returned components already carry the streak multiplier.
func Score(isCorrect bool, timeSpent, timeLimit time.Duration, currentStreak int) domain.ScoreResult {
	if !isCorrect {
		return domain.ScoreResult{}
	}

	wasFast := timeSpent <= timeLimit/2
	bonus := 0
	if wasFast {
		bonus = fastBonus
	}
	multiplier := StreakMultiplier(currentStreak)

	return domain.ScoreResult{
		BasePoints:  pointsPerCorrect * multiplier,
		BonusPoints: bonus * multiplier,
		TotalPoints: (pointsPerCorrect + bonus) * multiplier,
		WasCorrect:  true,
		WasFast:     wasFast,
	}
}

// Aggregate summarizes a finished quiz. BasePoints is estimated as ten per correct
// answer and BonusPoints is whatever TotalScore has beyond that.
func Aggregate(answers []domain.QuizAnswer, maxStreak int, start, end time.Time) domain.QuizResult {
	result := domain.QuizResult{
		TotalQuestions: len(answers),
		MaxStreak:      maxStreak,
		StartTime:      start,
		EndTime:        end,
		Answers:        answers,
		TotalTime:      int64(math.Round(end.Sub(start).Seconds())),
	}
	if len(answers) == 0 {
		return result
	}

	var sum float64
	fastest := math.Inf(1)
	slowest := math.Inf(-1)
	for _, a := range answers {
		if a.IsCorrect {
			result.CorrectAnswers++
		}
		result.TotalScore += a.Points

		ms := milliseconds(a.TimeSpent)
		sum += ms
		fastest = math.Min(fastest, ms)
		slowest = math.Max(slowest, ms)
	}

	result.Accuracy = round1(float64(result.CorrectAnswers) / float64(result.TotalQuestions) * 100)
	result.AverageTime = round1(sum / float64(len(answers)))
	result.FastestAnswer = round1(fastest)
	result.SlowestAnswer = round1(slowest)
	result.BasePoints = result.CorrectAnswers * pointsPerCorrect
	result.BonusPoints = max(0, result.TotalScore-result.BasePoints)
	return result
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
