package server

import (
	"encoding/json"
	"net/http"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := perrors.GetCode(err)
	if code == "" {
		code = perrors.ErrCodeInternal
	}
	status := statusFor(err)
	msg := perrors.UserMessage(err)
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: msg, Code: string(code)})
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch {
	case perrors.Is(err, perrors.ErrCodeNotFound), perrors.Is(err, perrors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case perrors.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
