package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
)

// Path parameter names.
const (
	paramArticleID = "article_id"
	paramCommentID = "comment_id"
	paramUsername  = "username"
)

// InvalidEndpoint responds to any unmatched path or method.
func InvalidEndpoint(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, domain.MsgInvalidEndpoint)
}

// NewRouter returns a chi router whose unmatched paths and methods answer
// with InvalidEndpoint. Every router in the tree is built with it, because
// a mounted sub-router handles its own misses.
func NewRouter() chi.Router {
	r := chi.NewRouter()
	r.NotFound(InvalidEndpoint)
	r.MethodNotAllowed(InvalidEndpoint)
	return r
}

// pathParam returns the raw path parameter. Ids are not parsed here; the
// datastore rejects values that are not valid for the column.
func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
