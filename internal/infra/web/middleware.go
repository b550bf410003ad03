package web

import (
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"

	"slack-charity-donate/internal/infra/logging"
)

// traceMiddleware mints a per-request trace id and logs the request line.
func (s *Server) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := ulid.Make().String()
		ctx := logging.WithTraceID(r.Context(), traceID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		logging.With(ctx, s.log).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
