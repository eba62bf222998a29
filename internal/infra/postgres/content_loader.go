package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"method-quiz-service/internal/domain"
)

// ContentLoader loads method tables stored as JSONB, one row per language.
type ContentLoader struct {
	pool *pgxpool.Pool
}

func NewContentLoader(pool *pgxpool.Pool) *ContentLoader {
	return &ContentLoader{pool: pool}
}

func (l *ContentLoader) LoadMethods(ctx context.Context, lang domain.Language) ([]domain.Method, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM method_tables WHERE language=$1`, string(lang)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("load methods %s: %w", lang, domain.ErrContentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load methods: %w", err)
	}
	var methods []domain.Method
	if err := json.Unmarshal(raw, &methods); err != nil {
		return nil, fmt.Errorf("unmarshal methods: %w", err)
	}
	return methods, nil
}

// SaveMethods upserts a language's table, used to seed the database from the static tables.
func (l *ContentLoader) SaveMethods(ctx context.Context, lang domain.Language, methods []domain.Method) error {
	data, err := json.Marshal(methods)
	if err != nil {
		return fmt.Errorf("marshal methods: %w", err)
	}
	_, err = l.pool.Exec(ctx,
		`INSERT INTO method_tables (language, data) VALUES ($1, $2::jsonb)
		 ON CONFLICT (language) DO UPDATE SET data=EXCLUDED.data`,
		string(lang), string(data))
	if err != nil {
		return fmt.Errorf("save methods: %w", err)
	}
	return nil
}
