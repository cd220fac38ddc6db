package shared

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/news-api/internal/domain"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes the request body into v. Any failure, including an
// oversized or empty body, is reported as malformed input.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return domain.MalformedInput(err)
	}
	return nil
}

// ValidateRequest validates v with its struct tags.
func ValidateRequest(v any) error {
	if err := validate.Struct(v); err != nil {
		return domain.MalformedInput(err)
	}
	return nil
}

// BindJSON decodes and validates the request body into v.
func BindJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := DecodeJSON(w, r, v); err != nil {
		return err
	}
	return ValidateRequest(v)
}
