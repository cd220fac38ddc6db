package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// CommentHandler handles requests addressed to a comment by id
type CommentHandler struct {
	comments store.CommentStore
	logger   *slog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(comments store.CommentStore, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// Routes returns the router mounted at /api/comments.
func (h *CommentHandler) Routes() chi.Router {
	r := NewRouter()
	r.Patch("/{comment_id}", h.PatchCommentVotes)
	r.Delete("/{comment_id}", h.DeleteComment)
	return r
}

// PatchCommentVotes handles PATCH /api/comments/{comment_id} requests
func (h *CommentHandler) PatchCommentVotes(w http.ResponseWriter, r *http.Request) {
	var req VotesRequest
	if err := shared.BindJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comment, err := h.comments.UpdateVotes(r.Context(), pathParam(r, paramCommentID), *req.IncVotes)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentEnvelope{Comment: *comment})
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	commentID := pathParam(r, paramCommentID)

	if err := h.comments.Delete(r.Context(), commentID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("comment deleted", slog.String("comment_id", commentID))
	shared.RespondNoContent(w, r)
}
