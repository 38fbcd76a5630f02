package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}

// writeGatewayError maps the resolver and extractor failures to their status
// codes. Anything else is a 500 with its text.
func writeGatewayError(w http.ResponseWriter, err error) {
	var missing *MissingReferenceError
	if errors.As(err, &missing) {
		writeError(w, http.StatusBadRequest, missing.Error())
		return
	}
	var failed *ExtractionError
	if errors.As(err, &failed) {
		writeError(w, http.StatusInternalServerError, failed.Cause)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
