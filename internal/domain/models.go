package domain

import (
	"encoding/json"
	"time"
)

// Language selects which content table a quiz draws from.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguagePython     Language = "python"
)

// QuizType selects the content table and question style.
type QuizType string

const (
	QuizTypeMethods  QuizType = "methods"
	QuizTypeProblems QuizType = "problems"
)

// Difficulty is a coarse classification attached to each question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Argument describes one parameter of a Method.
type Argument struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Optional    bool   `json:"optional,omitempty"`
}

// Returns describes what a Method evaluates to.
type Returns struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Example is a one-line usage of a Method with its printed output.
type Example struct {
	Code        string `json:"code"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Method is a reference entry for a built-in method. Examples is never empty.
type Method struct {
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	Syntax         string     `json:"syntax"`
	Description    string     `json:"description"`
	Arguments      []Argument `json:"arguments"`
	Returns        Returns    `json:"returns"`
	Examples       []Example  `json:"examples"`
	RelatedMethods []string   `json:"relatedMethods,omitempty"`
}

// ProblemExample is a sample input/output pair of an algorithm problem.
type ProblemExample struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// AlgorithmProblem is an interview-style problem. Examples is never empty.
type AlgorithmProblem struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Category        string           `json:"category"`
	Difficulty      Difficulty       `json:"difficulty"`
	Description     string           `json:"description"`
	Examples        []ProblemExample `json:"examples"`
	Constraints     []string         `json:"constraints,omitempty"`
	Hints           []string         `json:"hints,omitempty"`
	RelatedProblems []string         `json:"relatedProblems,omitempty"`
}

// QuizConfig is the caller's request for one generated quiz.
type QuizConfig struct {
	Language        Language `json:"language"`
	Categories      []string `json:"categories"`
	QuestionCount   int      `json:"questionCount"`
	TimePerQuestion int      `json:"timePerQuestion"` // seconds
	QuizType        QuizType `json:"quizType,omitempty"`
}

var (
	allowedQuestionCounts = []int{5, 10, 15}
	allowedTimeLimits     = []int{10, 15, 20, 30}
)

// Validate checks the request against the supported quiz sizes and timers.
func (c QuizConfig) Validate() error {
	if !containsInt(allowedQuestionCounts, c.QuestionCount) {
		return ErrInvalidQuestionCount
	}
	if !containsInt(allowedTimeLimits, c.TimePerQuestion) {
		return ErrInvalidTimeLimit
	}
	return nil
}

// TimeLimit returns the per-question timer as a duration.
func (c QuizConfig) TimeLimit() time.Duration {
	return time.Duration(c.TimePerQuestion) * time.Second
}

func containsInt(values []int, v int) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// QuizQuestion is one multiple-choice question. CorrectMethod appears exactly once in Options.
type QuizQuestion struct {
	ID            string     `json:"id"`
	Input         string     `json:"input"`
	Output        string     `json:"output"`
	CorrectMethod string     `json:"correctMethod"`
	Options       []string   `json:"options"`
	Difficulty    Difficulty `json:"difficulty"`
	Explanation   string     `json:"explanation"`
	Category      string     `json:"category"`
	MethodHint    string     `json:"methodHint"`
}

// IsCorrect reports whether option is the answer key.
func (q QuizQuestion) IsCorrect(option string) bool {
	return option == q.CorrectMethod
}

// PublicQuestion is the client-facing view of a question without the answer key.
type PublicQuestion struct {
	ID         string     `json:"id"`
	Input      string     `json:"input"`
	Output     string     `json:"output"`
	Options    []string   `json:"options"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
	MethodHint string     `json:"methodHint"`
}

// Public strips the answer key and explanation.
func (q QuizQuestion) Public() PublicQuestion {
	return PublicQuestion{
		ID:         q.ID,
		Input:      q.Input,
		Output:     q.Output,
		Options:    q.Options,
		Difficulty: q.Difficulty,
		Category:   q.Category,
		MethodHint: q.MethodHint,
	}
}

// ScoreResult is the points breakdown for one answer. BasePoints and BonusPoints
// already include the streak multiplier, so they sum to TotalPoints.
type ScoreResult struct {
	BasePoints  int  `json:"basePoints"`
	BonusPoints int  `json:"bonusPoints"`
	TotalPoints int  `json:"totalPoints"`
	WasCorrect  bool `json:"wasCorrect"`
	WasFast     bool `json:"wasFast"`
}

// QuizAnswer records one answered question. SelectedOption is nil when the timer ran out.
// TimeSpent is carried on the wire in milliseconds.
type QuizAnswer struct {
	QuestionID     string        `json:"questionId"`
	SelectedOption *string       `json:"selectedOption"`
	IsCorrect      bool          `json:"isCorrect"`
	TimeSpent      time.Duration `json:"timeSpent"`
	Points         int           `json:"points"`
}

type quizAnswerJSON struct {
	QuestionID     string  `json:"questionId"`
	SelectedOption *string `json:"selectedOption"`
	IsCorrect      bool    `json:"isCorrect"`
	TimeSpent      int64   `json:"timeSpent"`
	Points         int     `json:"points"`
}

// MarshalJSON writes TimeSpent in milliseconds.
func (a QuizAnswer) MarshalJSON() ([]byte, error) {
	return json.Marshal(quizAnswerJSON{
		QuestionID:     a.QuestionID,
		SelectedOption: a.SelectedOption,
		IsCorrect:      a.IsCorrect,
		TimeSpent:      a.TimeSpent.Milliseconds(),
		Points:         a.Points,
	})
}

// UnmarshalJSON reads TimeSpent in milliseconds.
func (a *QuizAnswer) UnmarshalJSON(data []byte) error {
	var raw quizAnswerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = QuizAnswer{
		QuestionID:     raw.QuestionID,
		SelectedOption: raw.SelectedOption,
		IsCorrect:      raw.IsCorrect,
		TimeSpent:      time.Duration(raw.TimeSpent) * time.Millisecond,
		Points:         raw.Points,
	}
	return nil
}

// QuizResult aggregates a finished quiz. Times are in milliseconds except TotalTime (seconds).
type QuizResult struct {
	TotalQuestions int          `json:"totalQuestions"`
	CorrectAnswers int          `json:"correctAnswers"`
	Accuracy       float64      `json:"accuracy"`
	TotalScore     int          `json:"totalScore"`
	BasePoints     int          `json:"basePoints"`
	BonusPoints    int          `json:"bonusPoints"`
	AverageTime    float64      `json:"averageTime"`
	FastestAnswer  float64      `json:"fastestAnswer"`
	SlowestAnswer  float64      `json:"slowestAnswer"`
	MaxStreak      int          `json:"maxStreak"`
	TotalTime      int64        `json:"totalTime"`
	StartTime      time.Time    `json:"startTime"`
	EndTime        time.Time    `json:"endTime"`
	Answers        []QuizAnswer `json:"answers"`
}

// LeaderboardEntry is a persisted quiz result. Entries are never mutated after creation.
type LeaderboardEntry struct {
	ID            string    `json:"id"`
	PlayerName    string    `json:"playerName"`
	Score         int       `json:"score"`
	Accuracy      float64   `json:"accuracy"`
	Language      Language  `json:"language"`
	QuestionCount int       `json:"questionCount"`
	Date          time.Time `json:"date"`
}
