package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gabapcia/escrowwatch/internal/pkg/logger"

	"github.com/google/uuid"
)

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

func newRequestID() string { return "req_" + uuid.NewString() }

// requestID returns the identifier assigned to the request by withRequestID.
func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}

	return newRequestID()
}

// withRequestID assigns an identifier to every request and binds it to the request logger.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := newRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		ctx = logger.Derive(ctx, "request.id", id, "http.method", r.Method, "http.path", r.URL.Path)

		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

type errorResponse struct {
	RequestID string    `json:"request_id"`
	Error     errorBody `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	writeJSON(w, status, errorResponse{
		RequestID: requestID(r.Context()),
		Error:     errorBody{Code: code, Message: message, Details: details},
	})
}
