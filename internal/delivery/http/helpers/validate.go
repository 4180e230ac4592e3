package helpers

import (
	"encoding/json"
	"net/http"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns the user-facing message for the first violation;
// empty string means valid.
type Validator interface {
	Validate() string
}

// DecodeAndValidate decodes the request body into dest (with
// DisallowUnknownFields) and, if dest implements Validator, runs Validate().
// On decode or validation failure it writes a 400 `{message}` response and
// returns false; callers should return immediately in that case.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if v, ok := dest.(Validator); ok {
		if msg := v.Validate(); msg != "" {
			WriteMessage(w, http.StatusBadRequest, msg)
			return false
		}
	}
	return true
}
