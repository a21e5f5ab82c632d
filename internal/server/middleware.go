package server

import (
	"net/http"

	"github.com/google/uuid"
)

// requestLogging tags every request with a generated id, echoes it back in
// the X-Request-Id header and logs method and path.
func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		s.log.With("request_id", id).Info(r.Context(), "request",
			"method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(w, r)
	})
}
