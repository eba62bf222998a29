package cli

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"method-quiz-service/internal/app"
	"method-quiz-service/internal/config"
	"method-quiz-service/internal/domain"
	"method-quiz-service/internal/infra/memory"
	"method-quiz-service/internal/infra/postgres"
	redisstore "method-quiz-service/internal/infra/redis"
	"method-quiz-service/internal/infra/sqlite"
	transport "method-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.NewRouter(deps.service, quizDefaults(cfg)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

type dependencies struct {
	service *app.QuizService
	closers []io.Closer
	pool    *pgxpool.Pool
}

func (d *dependencies) Close() {
	for _, c := range d.closers {
		if err := c.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}
	if d.pool != nil {
		d.pool.Close()
	}
}

// buildDependencies picks adapters from whatever backends cfg configures.
// Leaderboard storage prefers redis, then postgres, then sqlite, then process memory.
func buildDependencies(ctx context.Context, cfg config.Config) (_ *dependencies, err error) {
	deps := &dependencies{}
	defer func() {
		if err != nil {
			deps.Close()
		}
	}()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = newRedisClient(cfg)
		deps.closers = append(deps.closers, redisClient)
	}
	sessionTTL := config.TTLDuration(cfg.Redis.TTL, 30*time.Minute)

	if cfg.Postgres.URL != "" {
		pool, connErr := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if connErr != nil {
			return nil, connErr
		}
		deps.pool = pool
	}

	var loader memory.ContentLoader = memory.NewStaticContentLoader()
	if deps.pool != nil {
		loader = memory.NewFallbackContentLoader(postgres.NewContentLoader(deps.pool))
	}

	contentTTL := config.TTLDuration(cfg.Content.TTL, 10*time.Minute)
	var contentRepo app.ContentRepository
	if redisClient != nil {
		contentRepo = redisstore.NewContentRepository(redisClient, loader, contentTTL)
	} else {
		contentRepo = memory.NewContentRepository(loader, contentTTL)
	}

	var kv app.KVStore
	switch {
	case redisClient != nil:
		kv = redisstore.NewKVStore(redisClient, "")
	case deps.pool != nil:
		kv = postgres.NewKVStore(deps.pool)
	case cfg.SQLite.Path != "":
		store, openErr := sqlite.NewKVStore(cfg.SQLite.Path)
		if openErr != nil {
			return nil, openErr
		}
		deps.closers = append(deps.closers, store)
		kv = store
	default:
		kv = memory.NewKVStore()
	}
	leaderboard := app.NewLeaderboard(kv, cfg.Leaderboard.Key, cfg.Leaderboard.Capacity)

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = redisstore.NewSessionStore(redisClient, sessionTTL)
	} else {
		sessions = memory.NewSessionStore()
	}

	deps.service = app.NewQuizService(app.NewGenerator(contentRepo), sessions, leaderboard)
	return deps, nil
}

var newRedisClient = func(cfg config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func quizDefaults(cfg config.Config) domain.QuizConfig {
	return domain.QuizConfig{
		Language:        domain.Language(cfg.Quiz.Language),
		QuestionCount:   cfg.Quiz.QuestionCount,
		TimePerQuestion: cfg.Quiz.TimePerQuestion,
		QuizType:        domain.QuizTypeMethods,
	}
}
