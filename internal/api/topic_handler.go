package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// TopicHandler handles topic-related HTTP requests
type TopicHandler struct {
	topics store.TopicStore
	logger *slog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(topics store.TopicStore, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicHandler{
		topics: topics,
		logger: logger.With(slog.String("component", "topic_handler")),
	}
}

// Routes returns the router mounted at /api/topics.
func (h *TopicHandler) Routes() chi.Router {
	r := NewRouter()
	r.Get("/", h.ListTopics)
	return r
}

// ListTopics handles GET /api/topics requests
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	topics, err := h.topics.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("topics listed", slog.Int("count", len(topics)))
	shared.RespondWithJSON(w, r, http.StatusOK, TopicsResponse{Topics: topics})
}
