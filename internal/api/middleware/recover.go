package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mdobak/go-xerrors"
	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
)

var errPanic = errors.New("panic recovered")

// Recoverer turns a handler panic into the standard 500 error response. The
// panic value and stack are logged; the client only sees the generic message.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			err, ok := rvr.(error)
			if !ok {
				err = fmt.Errorf("%v", rvr)
			}
			err = xerrors.New(errors.Join(errPanic, err))

			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, domain.MsgInternalError, err)
		}()

		next.ServeHTTP(w, r)
	})
}
