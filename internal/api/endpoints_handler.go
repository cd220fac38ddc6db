package api

import (
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/phrazzld/news-api/internal/platform/logger"
)

//go:embed endpoints.json
var endpointsJSON []byte

// EndpointsJSON returns the API description served at GET /api.
func EndpointsJSON() []byte {
	return endpointsJSON
}

// GetEndpoints handles GET /api requests by serving the API description verbatim.
func GetEndpoints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(endpointsJSON); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("failed to write endpoints description", slog.String("error", err.Error()))
	}
}
