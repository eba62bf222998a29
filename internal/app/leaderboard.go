package app

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"method-quiz-service/internal/domain"
)

const (
	DefaultLeaderboardKey      = "quiz-leaderboard"
	DefaultLeaderboardCapacity = 100
)

// KVStore is the storage port the leaderboard persists through (memory, Redis, Postgres, SQLite).
type KVStore interface {
	Read(ctx context.Context, key string) (string, bool, error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Leaderboard keeps a score-descending, size-capped list of results in a KVStore.
// Storage failures are logged and swallowed: reads return nothing and writes are dropped.
// Writes are read-modify-write without locking across processes.
type Leaderboard struct {
	store    KVStore
	key      string
	capacity int
	now      func() time.Time
	newID    func() string
}

// NewLeaderboard builds a leaderboard; a nil store makes every call a no-op.
func NewLeaderboard(store KVStore, key string, capacity int) *Leaderboard {
	return NewLeaderboardWithClock(store, key, capacity, time.Now)
}

// NewLeaderboardWithClock allows deterministic dates in tests.
func NewLeaderboardWithClock(store KVStore, key string, capacity int, now func() time.Time) *Leaderboard {
	if key == "" {
		key = DefaultLeaderboardKey
	}
	if capacity <= 0 {
		capacity = DefaultLeaderboardCapacity
	}
	return &Leaderboard{
		store:    store,
		key:      key,
		capacity: capacity,
		now:      now,
		newID:    uuid.NewString,
	}
}

// Submit records a new entry, assigning its ID and date. The returned entry may
// already have been evicted if it did not make the cut.
func (l *Leaderboard) Submit(ctx context.Context, entry domain.LeaderboardEntry) (domain.LeaderboardEntry, error) {
	entry.PlayerName = strings.TrimSpace(entry.PlayerName)
	if entry.PlayerName == "" {
		return domain.LeaderboardEntry{}, domain.ErrInvalidPlayerName
	}
	entry.ID = l.newID()
	entry.Date = l.now().UTC()

	if l.store == nil {
		return entry, nil
	}
	entries := append(l.load(ctx), entry)
	sortEntries(entries)
	if len(entries) > l.capacity {
		entries = entries[:l.capacity]
	}
	l.save(ctx, entries)
	return entry, nil
}

// List returns entries for lang in rank order; an empty lang returns every entry.
func (l *Leaderboard) List(ctx context.Context, lang domain.Language) []domain.LeaderboardEntry {
	entries := l.load(ctx)
	if lang == "" {
		return entries
	}
	out := make([]domain.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.Language == lang {
			out = append(out, e)
		}
	}
	return out
}

// Top returns at most n entries across all languages.
func (l *Leaderboard) Top(ctx context.Context, n int) []domain.LeaderboardEntry {
	entries := l.load(ctx)
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// RankFor returns the 1-based position score would take, or 0 if it would not fit.
func (l *Leaderboard) RankFor(ctx context.Context, score int) int {
	rank := 1
	for _, e := range l.load(ctx) {
		if e.Score >= score {
			rank++
		}
	}
	if rank > l.capacity {
		return 0
	}
	return rank
}

// Clear removes every entry.
func (l *Leaderboard) Clear(ctx context.Context) {
	if l.store == nil {
		return
	}
	if err := l.store.Delete(ctx, l.key); err != nil {
		log.Printf("leaderboard clear failed: %v", err)
	}
}

func (l *Leaderboard) load(ctx context.Context) []domain.LeaderboardEntry {
	if l.store == nil {
		return []domain.LeaderboardEntry{}
	}
	raw, ok, err := l.store.Read(ctx, l.key)
	if err != nil {
		log.Printf("leaderboard read failed: %v", err)
		return []domain.LeaderboardEntry{}
	}
	if !ok || raw == "" {
		return []domain.LeaderboardEntry{}
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("leaderboard decode failed: %v", err)
		return []domain.LeaderboardEntry{}
	}
	return entries
}

func (l *Leaderboard) save(ctx context.Context, entries []domain.LeaderboardEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		log.Printf("leaderboard encode failed: %v", err)
		return
	}
	if err := l.store.Write(ctx, l.key, string(data)); err != nil {
		log.Printf("leaderboard write failed: %v", err)
	}
}

// sortEntries orders by score descending; earlier entries win ties.
func sortEntries(entries []domain.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Date.Before(entries[j].Date)
	})
}
