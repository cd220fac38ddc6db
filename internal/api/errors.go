package api

import (
	"log/slog"
	"net/http"

	"github.com/mdobak/go-xerrors"
	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/phrazzld/news-api/internal/redact"
)

// Classification is the client-facing outcome of a failed request.
type Classification struct {
	Status int
	Msg    string
}

// classifier recognizes one family of errors.
type classifier func(error) (Classification, bool)

// classifiers are consulted in order; the first match wins. An error no
// classifier recognizes is an internal error.
var classifiers = []classifier{
	classifyMalformedInput,
	classifyNotFound,
	classifyInvalidQuery,
	classifyMissingReference,
}

var internalError = Classification{
	Status: http.StatusInternalServerError,
	Msg:    domain.MsgInternalError,
}

// classifyMalformedInput covers values the datastore or the body decoder
// could not interpret, such as a non-numeric id or inc_votes of "ten".
func classifyMalformedInput(err error) (Classification, bool) {
	if postgres.IsInvalidInput(err) || domain.IsKind(err, domain.KindMalformedInput) {
		return Classification{Status: http.StatusBadRequest, Msg: domain.MsgBadRequest}, true
	}
	return Classification{}, false
}

func classifyNotFound(err error) (Classification, bool) {
	de, ok := domain.AsError(err)
	if !ok || de.Kind != domain.KindNotFound {
		return Classification{}, false
	}
	return Classification{Status: http.StatusNotFound, Msg: de.Msg}, true
}

func classifyInvalidQuery(err error) (Classification, bool) {
	de, ok := domain.AsError(err)
	if !ok || (de.Kind != domain.KindInvalidQuery && de.Kind != domain.KindBadRequest) {
		return Classification{}, false
	}
	return Classification{Status: http.StatusBadRequest, Msg: de.Msg}, true
}

// classifyMissingReference maps a foreign key violation to a 404 naming the
// referenced resource that does not exist.
func classifyMissingReference(err error) (Classification, bool) {
	table, ok := postgres.ForeignKeyTable(err)
	if !ok {
		return Classification{}, false
	}

	msg := domain.MsgResourceNotFound
	switch table {
	case postgres.TableArticles:
		msg = domain.MsgArticleNotFound
	case postgres.TableUsers:
		msg = domain.MsgUsernameNotFound
	}
	return Classification{Status: http.StatusNotFound, Msg: msg}, true
}

// ClassifyError maps err to the status and message sent to the client.
func ClassifyError(err error) Classification {
	for _, classify := range classifiers {
		if c, ok := classify(err); ok {
			return c
		}
	}
	return internalError
}

// HandleAPIError writes the classified error response for err. Internal
// errors are logged at ERROR with their stack and never described to the
// client.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	c := ClassifyError(err)

	var attrs []slog.Attr
	if c.Status >= http.StatusInternalServerError {
		attrs = append(attrs, slog.String("stack", redact.String(xerrors.Sprint(err))))
	}

	shared.RespondWithErrorAndLog(w, r, c.Status, c.Msg, err, attrs...)
}
