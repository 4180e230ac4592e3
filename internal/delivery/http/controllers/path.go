package controllers

import (
	"net/http"
	"strconv"
)

// pathID parses the named path parameter as an int64 ID. A non-numeric value
// is reported the same way as an absent row: the caller answers 404.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
