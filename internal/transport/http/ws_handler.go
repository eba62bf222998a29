package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"method-quiz-service/internal/app"
	"method-quiz-service/internal/domain"
)

type WSHandler struct {
	service  *app.QuizService
	defaults domain.QuizConfig
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService, defaults domain.QuizConfig) *WSHandler {
	return &WSHandler{
		service:  service,
		defaults: defaults,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// answerPayload carries the time spent in milliseconds; a null option is a timeout.
type answerPayload struct {
	QuestionID string  `json:"questionId"`
	Option     *string `json:"option"`
	TimeSpent  int64   `json:"timeSpent"`
}

type finishPayload struct {
	PlayerName string `json:"playerName"`
}

type quizPayload struct {
	SessionID       string                  `json:"sessionId"`
	TimePerQuestion int                     `json:"timePerQuestion"`
	Questions       []domain.PublicQuestion `json:"questions"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and runs one quiz per connection.
// Query parameters match GET /api/quiz; name is the default leaderboard name.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	cfg, err := parseQuizConfig(r.URL.Query(), h.defaults)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	playerName := r.URL.Query().Get("name")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session, err := h.service.Start(r.Context(), cfg)
	if err != nil {
		h.send(conn, "error", errorPayload{Message: err.Error()})
		return
	}
	finished := false
	defer func() {
		if !finished {
			h.service.Abandon(r.Context(), session.ID())
		}
	}()

	public := make([]domain.PublicQuestion, 0, len(session.Questions()))
	for _, q := range session.Questions() {
		public = append(public, q.Public())
	}
	if !h.send(conn, "quiz", quizPayload{SessionID: session.ID(), TimePerQuestion: cfg.TimePerQuestion, Questions: public}) {
		return
	}

	for !finished {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.send(conn, "error", errorPayload{Message: "invalid answer payload"})
				continue
			}
			outcome, err := h.service.Answer(r.Context(), session.ID(), app.AnswerSubmission{
				QuestionID: payload.QuestionID,
				Option:     payload.Option,
				TimeSpent:  time.Duration(payload.TimeSpent) * time.Millisecond,
			})
			if err != nil {
				h.send(conn, "error", errorPayload{Message: err.Error()})
				continue
			}
			h.send(conn, "answerResult", outcome)
		case "finish":
			var payload finishPayload
			_ = json.Unmarshal(inbound.Payload, &payload)
			name := payload.PlayerName
			if name == "" {
				name = playerName
			}
			outcome, err := h.service.Finish(r.Context(), session.ID(), name)
			finished = true
			if err != nil {
				h.send(conn, "error", errorPayload{Message: err.Error()})
				continue
			}
			h.send(conn, "result", outcome)
		default:
			h.send(conn, "error", errorPayload{Message: "unsupported message type"})
		}
	}
}

func (h *WSHandler) send(conn *websocket.Conn, typ string, payload any) bool {
	if err := conn.WriteJSON(outboundMessage[any]{Type: typ, Payload: payload}); err != nil {
		log.Printf("ws write error: %v", err)
		return false
	}
	return true
}
