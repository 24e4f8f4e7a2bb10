package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/avolkau/fittrack/internal/common"
	"github.com/avolkau/fittrack/internal/logging"
	"github.com/avolkau/fittrack/internal/server/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserID extracts the authenticated user id placed into the request context
// by Authenticator. The second result is false on unauthenticated requests.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// Authenticator rejects requests without a valid bearer token and stores the
// token's subject user id in the request context for the handlers downstream.
func Authenticator(tokens *auth.TokenIssuer, logger logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Debug(r.Context(), "missing bearer token", "path", r.URL.Path)
				respondWithServiceError(r.Context(), w, common.ErrInvalidToken, logger)
				return
			}

			userID, err := tokens.Validate(token)
			if err != nil {
				logger.Debug(r.Context(), "rejected bearer token", "path", r.URL.Path)
				respondWithServiceError(r.Context(), w, err, logger)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger logs one line per request with method, path, status and latency.
func RequestLogger(logger logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			logger.Info(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// statusWriter captures the response code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
