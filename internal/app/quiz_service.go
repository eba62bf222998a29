package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"method-quiz-service/internal/domain"
)

// SessionRepository abstracts how play sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// QuizService contains the quiz use cases.
type QuizService struct {
	generator   *Generator
	sessions    SessionRepository
	leaderboard *Leaderboard
	now         func() time.Time
}

func NewQuizService(generator *Generator, sessions SessionRepository, leaderboard *Leaderboard) *QuizService {
	return &QuizService{generator: generator, sessions: sessions, leaderboard: leaderboard, now: time.Now}
}

// AnswerSubmission models one answer sent by a client. A nil Option means the timer ran out.
type AnswerSubmission struct {
	QuestionID string
	Option     *string
	TimeSpent  time.Duration
}

// AnswerOutcome is returned to the client after each answer.
type AnswerOutcome struct {
	QuestionID    string             `json:"questionId"`
	Score         domain.ScoreResult `json:"score"`
	CorrectMethod string             `json:"correctMethod"`
	Explanation   string             `json:"explanation"`
	Streak        int                `json:"streak"`
}

// FinishOutcome carries the aggregate result and, when submitted, the leaderboard entry.
type FinishOutcome struct {
	Result domain.QuizResult        `json:"result"`
	Entry  *domain.LeaderboardEntry `json:"entry,omitempty"`
	Rank   int                      `json:"rank,omitempty"`
}

// Generate builds a quiz without opening a session.
func (s *QuizService) Generate(ctx context.Context, cfg domain.QuizConfig) ([]domain.QuizQuestion, error) {
	return s.generator.Generate(ctx, cfg)
}

// Start generates a quiz and opens a session for it.
func (s *QuizService) Start(ctx context.Context, cfg domain.QuizConfig) (*Session, error) {
	questions, err := s.generator.Generate(ctx, cfg)
	if err != nil {
		return nil, err
	}
	session := NewSessionWithClock(uuid.NewString(), cfg, questions, s.now)
	s.sessions.Put(session)
	return session, nil
}

// Answer scores a submission using the session's current streak.
func (s *QuizService) Answer(_ context.Context, sessionID string, submission AnswerSubmission) (AnswerOutcome, error) {
	if submission.TimeSpent < 0 {
		return AnswerOutcome{}, domain.ErrInvalidTimeSpent
	}
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return AnswerOutcome{}, domain.ErrSessionNotFound
	}
	score, question, streak, err := session.answer(submission.QuestionID, submission.Option, submission.TimeSpent)
	if err != nil {
		return AnswerOutcome{}, err
	}
	return AnswerOutcome{
		QuestionID:    question.ID,
		Score:         score,
		CorrectMethod: question.CorrectMethod,
		Explanation:   question.Explanation,
		Streak:        streak,
	}, nil
}

// Finish closes the session and submits the result when playerName is set.
func (s *QuizService) Finish(ctx context.Context, sessionID, playerName string) (FinishOutcome, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return FinishOutcome{}, domain.ErrSessionNotFound
	}
	result, err := session.finish()
	if err != nil {
		return FinishOutcome{}, err
	}
	s.sessions.Delete(sessionID)

	outcome := FinishOutcome{Result: result}
	if playerName == "" || s.leaderboard == nil {
		return outcome, nil
	}

	cfg := session.Config()
	entry, err := s.leaderboard.Submit(ctx, domain.LeaderboardEntry{
		PlayerName:    playerName,
		Score:         outcome.Result.TotalScore,
		Accuracy:      outcome.Result.Accuracy,
		Language:      cfg.Language,
		QuestionCount: len(session.Questions()),
	})
	if err != nil {
		return outcome, err
	}
	outcome.Entry = &entry
	outcome.Rank = rankOf(s.leaderboard.List(ctx, ""), entry.ID)
	return outcome, nil
}

// Abandon drops a session without scoring it, e.g. when the client disconnects.
func (s *QuizService) Abandon(_ context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
}

// Leaderboard exposes the leaderboard for read-only transports.
func (s *QuizService) Leaderboard() *Leaderboard {
	return s.leaderboard
}

func rankOf(entries []domain.LeaderboardEntry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i + 1
		}
	}
	return 0
}
