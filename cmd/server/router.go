package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/phrazzld/news-api/internal/api"
	"github.com/phrazzld/news-api/internal/api/middleware"
	"github.com/phrazzld/news-api/internal/api/shared"
)

const healthTimeout = 2 * time.Second

// setupRouter builds the full request pipeline. Every router in the tree
// answers unmatched paths with the invalid endpoint response.
func (app *application) setupRouter() chi.Router {
	r := api.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewTraceMiddleware(app.logger))
	r.Use(app.metrics.Handler)
	r.Use(middleware.Recoverer)
	if app.limiter != nil {
		r.Use(app.limiter.Handler)
	}
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", app.health)

	r.Route("/api", func(r chi.Router) {
		r.NotFound(api.InvalidEndpoint)
		r.MethodNotAllowed(api.InvalidEndpoint)

		r.Get("/", api.GetEndpoints)
		r.Mount("/topics", app.topicHandler.Routes())
		r.Mount("/articles", app.articleHandler.Routes())
		r.Mount("/comments", app.commentHandler.Routes())
		r.Mount("/users", app.userHandler.Routes())
	})

	return r
}

// health reports whether the database is reachable.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := app.db.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
