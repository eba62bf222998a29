package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"method-quiz-service/internal/domain"
)

// ContentLoader fetches a method table from a backing store (e.g., Postgres).
type ContentLoader interface {
	LoadMethods(ctx context.Context, lang domain.Language) ([]domain.Method, error)
}

// ContentRepository caches method tables in Redis and falls back to a loader on cache miss.
// Tables are stored as JSON: SET content:methods:{language} <json> EX ttl
type ContentRepository struct {
	client *redis.Client
	loader ContentLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewContentRepository(client *redis.Client, loader ContentLoader, ttl time.Duration) *ContentRepository {
	return &ContentRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *ContentRepository) GetMethods(ctx context.Context, lang domain.Language) ([]domain.Method, error) {
	key := r.methodsKey(lang)
	if methods, ok := r.cached(ctx, key); ok {
		return methods, nil
	}

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if methods, ok := r.cached(ctx, key); ok {
			return methods, nil
		}

		methods, err := r.loader.LoadMethods(ctx, lang)
		if err != nil {
			return nil, err
		}

		// a failed cache fill only costs a reload next time
		if data, err := json.Marshal(methods); err == nil {
			_ = r.client.Set(ctx, key, data, r.ttlWithJitter()).Err()
		}
		return methods, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Method), nil
}

func (r *ContentRepository) cached(ctx context.Context, key string) ([]domain.Method, bool) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	var methods []domain.Method
	if err := json.Unmarshal(raw, &methods); err != nil || len(methods) == 0 {
		return nil, false
	}
	return methods, true
}

func (r *ContentRepository) methodsKey(lang domain.Language) string {
	return "content:methods:" + string(lang)
}

func (r *ContentRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
