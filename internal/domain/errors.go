package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a play session has not been started or already finished.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrQuestionNotFound indicates a submitted question ID is not part of the session.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrQuestionAnswered indicates a question was already answered in the session.
	ErrQuestionAnswered = errors.New("question already answered")
	// ErrInvalidTimeSpent is returned for answers reporting a negative time.
	ErrInvalidTimeSpent = errors.New("time spent must not be negative")
	// ErrContentNotFound indicates a content table could not be loaded from the backing store.
	ErrContentNotFound = errors.New("content table not found")
	// ErrInvalidQuestionCount is returned for question counts other than 5, 10 or 15.
	ErrInvalidQuestionCount = errors.New("question count must be 5, 10 or 15")
	// ErrInvalidTimeLimit is returned for timers other than 10, 15, 20 or 30 seconds.
	ErrInvalidTimeLimit = errors.New("time per question must be 10, 15, 20 or 30 seconds")
	// ErrInvalidPlayerName is returned when a leaderboard submission has no player name.
	ErrInvalidPlayerName = errors.New("invalid player name")
)
