package memory

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"method-quiz-service/internal/content"
	"method-quiz-service/internal/domain"
)

// ContentLoader fetches a method table from a backing store (e.g., Postgres).
type ContentLoader interface {
	LoadMethods(ctx context.Context, lang domain.Language) ([]domain.Method, error)
}

// ContentRepository caches method tables with TTL to avoid repeated loader hits.
type ContentRepository struct {
	loader ContentLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[domain.Language]cachedTable
}

type cachedTable struct {
	methods   []domain.Method
	expiresAt time.Time
}

func NewContentRepository(loader ContentLoader, ttl time.Duration) *ContentRepository {
	return &ContentRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[domain.Language]cachedTable),
	}
}

func (r *ContentRepository) GetMethods(ctx context.Context, lang domain.Language) ([]domain.Method, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[lang]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.methods, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(string(lang), func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[lang]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.methods, nil
		}
		r.mu.RUnlock()

		methods, err := r.loader.LoadMethods(ctx, lang)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[lang] = cachedTable{
			methods:   methods,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return methods, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Method), nil
}

func (r *ContentRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticContentLoader serves the compiled-in tables.
type StaticContentLoader struct{}

func NewStaticContentLoader() StaticContentLoader {
	return StaticContentLoader{}
}

func (StaticContentLoader) LoadMethods(_ context.Context, lang domain.Language) ([]domain.Method, error) {
	return content.Table(lang), nil
}

// FallbackContentLoader serves the static table when the primary loader has no row for a language.
type FallbackContentLoader struct {
	primary  ContentLoader
	fallback ContentLoader
}

func NewFallbackContentLoader(primary ContentLoader) *FallbackContentLoader {
	return &FallbackContentLoader{primary: primary, fallback: StaticContentLoader{}}
}

func (l *FallbackContentLoader) LoadMethods(ctx context.Context, lang domain.Language) ([]domain.Method, error) {
	methods, err := l.primary.LoadMethods(ctx, lang)
	if errors.Is(err, domain.ErrContentNotFound) || (err == nil && len(methods) == 0) {
		return l.fallback.LoadMethods(ctx, lang)
	}
	return methods, err
}
