package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"method-quiz-service/internal/domain"
)

type mapStore struct {
	data map[string]string
}

func newMapStore() *mapStore { return &mapStore{data: map[string]string{}} }

func (m *mapStore) Read(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapStore) Write(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *mapStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

type brokenStore struct{}

func (brokenStore) Read(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}
func (brokenStore) Write(context.Context, string, string) error { return errors.New("quota exceeded") }
func (brokenStore) Delete(context.Context, string) error        { return errors.New("storage unavailable") }

func steppingClock() func() time.Time {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
}

func TestLeaderboardSortsAndCaps(t *testing.T) {
	ctx := context.Background()
	lb := NewLeaderboardWithClock(newMapStore(), "", 3, steppingClock())

	for i, score := range []int{40, 90, 60, 90, 10} {
		if _, err := lb.Submit(ctx, domain.LeaderboardEntry{
			PlayerName: fmt.Sprintf("p%d", i),
			Score:      score,
			Language:   domain.LanguageJavaScript,
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	entries := lb.List(ctx, "")
	if len(entries) != 3 {
		t.Fatalf("expected capacity of 3, got %d", len(entries))
	}
	wantPlayers := []string{"p1", "p3", "p2"}
	for i, want := range wantPlayers {
		if entries[i].PlayerName != want {
			t.Fatalf("position %d: expected %s, got %+v", i, want, entries)
		}
		if entries[i].ID == "" || entries[i].Date.IsZero() {
			t.Fatalf("expected id and date to be assigned, got %+v", entries[i])
		}
	}
}

func TestLeaderboardFiltersByLanguage(t *testing.T) {
	ctx := context.Background()
	lb := NewLeaderboard(newMapStore(), "lb", 10)
	_, _ = lb.Submit(ctx, domain.LeaderboardEntry{PlayerName: "a", Score: 5, Language: domain.LanguagePython})
	_, _ = lb.Submit(ctx, domain.LeaderboardEntry{PlayerName: "b", Score: 7, Language: domain.LanguageJavaScript})

	py := lb.List(ctx, domain.LanguagePython)
	if len(py) != 1 || py[0].PlayerName != "a" {
		t.Fatalf("unexpected python entries %+v", py)
	}
	if top := lb.Top(ctx, 1); len(top) != 1 || top[0].PlayerName != "b" {
		t.Fatalf("unexpected top entry %+v", top)
	}
}

func TestLeaderboardRankAndClear(t *testing.T) {
	ctx := context.Background()
	lb := NewLeaderboard(newMapStore(), "lb", 2)
	if got := lb.RankFor(ctx, 10); got != 1 {
		t.Fatalf("expected rank 1 on an empty board, got %d", got)
	}
	_, _ = lb.Submit(ctx, domain.LeaderboardEntry{PlayerName: "a", Score: 50})
	_, _ = lb.Submit(ctx, domain.LeaderboardEntry{PlayerName: "b", Score: 30})

	if got := lb.RankFor(ctx, 40); got != 2 {
		t.Fatalf("expected rank 2, got %d", got)
	}
	if got := lb.RankFor(ctx, 20); got != 0 {
		t.Fatalf("expected score below a full board to miss, got %d", got)
	}

	lb.Clear(ctx)
	if got := lb.List(ctx, ""); len(got) != 0 {
		t.Fatalf("expected empty board after clear, got %+v", got)
	}
}

func TestLeaderboardRejectsBlankName(t *testing.T) {
	lb := NewLeaderboard(newMapStore(), "lb", 10)
	if _, err := lb.Submit(context.Background(), domain.LeaderboardEntry{PlayerName: "   "}); !errors.Is(err, domain.ErrInvalidPlayerName) {
		t.Fatalf("expected invalid player name, got %v", err)
	}
}

func TestLeaderboardDegradesWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	for name, store := range map[string]KVStore{"broken": brokenStore{}, "nil": nil} {
		t.Run(name, func(t *testing.T) {
			lb := NewLeaderboard(store, "lb", 10)
			entry, err := lb.Submit(ctx, domain.LeaderboardEntry{PlayerName: "a", Score: 10})
			if err != nil {
				t.Fatalf("expected storage failure to be swallowed, got %v", err)
			}
			if entry.ID == "" {
				t.Fatalf("expected entry to be returned")
			}
			if got := lb.List(ctx, ""); len(got) != 0 {
				t.Fatalf("expected empty list, got %+v", got)
			}
			lb.Clear(ctx)
		})
	}
}

func TestLeaderboardIgnoresCorruptPayload(t *testing.T) {
	store := newMapStore()
	store.data["lb"] = "{not json"
	lb := NewLeaderboard(store, "lb", 10)
	if got := lb.List(context.Background(), ""); len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}
