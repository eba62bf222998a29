package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"method-quiz-service/internal/app"
	"method-quiz-service/internal/content"
	"method-quiz-service/internal/domain"
)

// API serves the REST endpoints for quiz generation and the leaderboard.
type API struct {
	service  *app.QuizService
	defaults domain.QuizConfig
}

// NewRouter wires the REST API and the websocket play loop.
// defaults fill in quiz parameters a request leaves out.
func NewRouter(service *app.QuizService, defaults domain.QuizConfig) http.Handler {
	api := &API{service: service, defaults: defaults}
	ws := NewWSHandler(service, defaults)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ws", ws.ServeWS)
	r.Route("/api", func(r chi.Router) {
		r.Get("/quiz", api.generateQuiz)
		r.Get("/categories", api.listCategories)
		r.Get("/leaderboard", api.getLeaderboard)
		r.Delete("/leaderboard", api.clearLeaderboard)
	})
	return r
}

type quizResponse struct {
	Config    domain.QuizConfig     `json:"config"`
	Questions []domain.QuizQuestion `json:"questions"`
}

func (a *API) generateQuiz(w http.ResponseWriter, r *http.Request) {
	cfg, err := parseQuizConfig(r.URL.Query(), a.defaults)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	questions, err := a.service.Generate(r.Context(), cfg)
	if err != nil {
		log.Printf("generate quiz failed: %v", err)
		writeError(w, http.StatusInternalServerError, errors.New("could not generate quiz"))
		return
	}
	writeJSON(w, http.StatusOK, quizResponse{Config: cfg, Questions: questions})
}

func (a *API) listCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if domain.QuizType(q.Get("type")) == domain.QuizTypeProblems {
		writeJSON(w, http.StatusOK, content.ProblemCategories())
		return
	}
	lang := domain.Language(q.Get("language"))
	if lang == "" {
		lang = a.defaults.Language
	}
	writeJSON(w, http.StatusOK, content.Categories(content.Table(lang)))
}

func (a *API) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entries := a.service.Leaderboard().List(r.Context(), domain.Language(q.Get("language")))
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	writeJSON(w, http.StatusOK, entries)
}

func (a *API) clearLeaderboard(w http.ResponseWriter, r *http.Request) {
	a.service.Leaderboard().Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// parseQuizConfig reads language, categories, count, time and type; missing values come from defaults.
func parseQuizConfig(q url.Values, defaults domain.QuizConfig) (domain.QuizConfig, error) {
	cfg := defaults
	if v := q.Get("language"); v != "" {
		cfg.Language = domain.Language(strings.ToLower(v))
	}
	if v := q.Get("categories"); v != "" {
		cfg.Categories = nil
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.Categories = append(cfg.Categories, c)
			}
		}
	}
	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, domain.ErrInvalidQuestionCount
		}
		cfg.QuestionCount = n
	}
	if v := q.Get("time"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, domain.ErrInvalidTimeLimit
		}
		cfg.TimePerQuestion = n
	}
	if v := q.Get("type"); v != "" {
		cfg.QuizType = domain.QuizType(v)
	}
	if cfg.QuizType == "" {
		cfg.QuizType = domain.QuizTypeMethods
	}
	return cfg, cfg.Validate()
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response failed: %v", err)
	}
}
