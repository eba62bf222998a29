package app

import (
	"sync"
	"time"

	"method-quiz-service/internal/domain"
)

// Session is one player's run through a generated quiz.
type Session struct {
	id        string
	config    domain.QuizConfig
	questions []domain.QuizQuestion
	byID      map[string]int
	startedAt time.Time
	now       func() time.Time

	mu        sync.Mutex
	answers   []domain.QuizAnswer
	answered  map[string]struct{}
	streak    int
	maxStreak int
	finished  bool
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(id string, cfg domain.QuizConfig, questions []domain.QuizQuestion) *Session {
	return NewSessionWithClock(id, cfg, questions, time.Now)
}

// NewSessionWithClock takes the clock used for start and end timestamps.
func NewSessionWithClock(id string, cfg domain.QuizConfig, questions []domain.QuizQuestion, now func() time.Time) *Session {
	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		byID[q.ID] = i
	}
	return &Session{
		id:        id,
		config:    cfg,
		questions: questions,
		byID:      byID,
		startedAt: now(),
		now:       now,
		answered:  make(map[string]struct{}),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Config() domain.QuizConfig { return s.config }

func (s *Session) Questions() []domain.QuizQuestion { return s.questions }

// answer scores one question against the streak built up before it.
// A nil option is a timeout and counts as wrong.
func (s *Session) answer(questionID string, option *string, timeSpent time.Duration) (domain.ScoreResult, domain.QuizQuestion, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return domain.ScoreResult{}, domain.QuizQuestion{}, 0, domain.ErrSessionNotFound
	}
	idx, ok := s.byID[questionID]
	if !ok {
		return domain.ScoreResult{}, domain.QuizQuestion{}, 0, domain.ErrQuestionNotFound
	}
	if _, done := s.answered[questionID]; done {
		return domain.ScoreResult{}, domain.QuizQuestion{}, 0, domain.ErrQuestionAnswered
	}
	question := s.questions[idx]

	correct := option != nil && question.IsCorrect(*option)
	result := Score(correct, timeSpent, s.config.TimeLimit(), s.streak)
	if correct {
		s.streak++
		if s.streak > s.maxStreak {
			s.maxStreak = s.streak
		}
	} else {
		s.streak = 0
	}

	s.answered[questionID] = struct{}{}
	s.answers = append(s.answers, domain.QuizAnswer{
		QuestionID:     questionID,
		SelectedOption: option,
		IsCorrect:      correct,
		TimeSpent:      timeSpent,
		Points:         result.TotalPoints,
	})
	return result, question, s.streak, nil
}

// finish aggregates the session once; later calls report ErrSessionNotFound.
func (s *Session) finish() (domain.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return domain.QuizResult{}, domain.ErrSessionNotFound
	}
	s.finished = true
	answers := make([]domain.QuizAnswer, len(s.answers))
	copy(answers, s.answers)
	return Aggregate(answers, s.maxStreak, s.startedAt, s.now()), nil
}
