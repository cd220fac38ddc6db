package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/service"
	"github.com/phrazzld/news-api/internal/store"
)

// ArticleHandler handles article and article-comment HTTP requests
type ArticleHandler struct {
	articles service.ArticleService
	logger   *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articles service.ArticleService, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{
		articles: articles,
		logger:   logger.With(slog.String("component", "article_handler")),
	}
}

// Routes returns the router mounted at /api/articles.
func (h *ArticleHandler) Routes() chi.Router {
	r := NewRouter()
	r.Get("/", h.ListArticles)
	r.Route("/{article_id}", func(r chi.Router) {
		r.NotFound(InvalidEndpoint)
		r.MethodNotAllowed(InvalidEndpoint)
		r.Get("/", h.GetArticle)
		r.Patch("/", h.PatchArticleVotes)
		r.Get("/comments", h.ListComments)
		r.Post("/comments", h.CreateComment)
	})
	return r
}

// ListArticles handles GET /api/articles requests.
// Query parameters: topic, sort_by, order.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query()
	q := store.ArticleQuery{
		Topic:  query.Get("topic"),
		SortBy: query.Get("sort_by"),
		Order:  query.Get("order"),
	}

	articles, err := h.articles.ListArticles(r.Context(), q)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("articles listed",
		slog.Int("count", len(articles)),
		slog.String("topic", q.Topic))
	shared.RespondWithJSON(w, r, http.StatusOK, ArticlesResponse{Articles: toArticleSummaries(articles)})
}

// GetArticle handles GET /api/articles/{article_id} requests
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.articles.GetArticle(r.Context(), pathParam(r, paramArticleID))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleEnvelope{Article: toArticleResponse(article)})
}

// PatchArticleVotes handles PATCH /api/articles/{article_id} requests
func (h *ArticleHandler) PatchArticleVotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	articleID := pathParam(r, paramArticleID)

	var req VotesRequest
	if err := shared.BindJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articles.VoteArticle(r.Context(), articleID, *req.IncVotes)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("article votes adjusted",
		slog.String("article_id", articleID),
		slog.Int("inc_votes", *req.IncVotes),
		slog.Int("votes", article.Votes))
	shared.RespondWithJSON(w, r, http.StatusOK, ArticleEnvelope{Article: toArticleResponse(article)})
}

// ListComments handles GET /api/articles/{article_id}/comments requests
func (h *ArticleHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.articles.ListComments(r.Context(), pathParam(r, paramArticleID))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentsResponse{Comments: comments})
}

// CreateComment handles POST /api/articles/{article_id}/comments requests
func (h *ArticleHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := shared.BindJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comment, err := h.articles.AddComment(r.Context(), pathParam(r, paramArticleID), domain.NewComment{
		Username: *req.Comment.Username,
		Body:     *req.Comment.Body,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CommentEnvelope{Comment: *comment})
}
