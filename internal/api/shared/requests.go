package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Single validator instance shared by all handlers; validator.Validate
// caches struct metadata, so reuse matters.
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest checks a decoded request payload. Types that implement
// their own Validate method (domain values like MCQ or MindMap) are
// validated through it; plain DTOs fall back to their struct tags.
func ValidateRequest(v interface{}) error {
	if dv, ok := v.(interface{ Validate() error }); ok {
		return dv.Validate()
	}
	return validate.Struct(v)
}
