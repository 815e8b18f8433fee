package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"napoleon_resorts/internal/adapters/observability"
)

func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return http.TimeoutHandler(next, d, "timeout") }
}

// recorder remembers the first status a handler wrote.
type recorder struct {
	http.ResponseWriter
	status int
}

func (w *recorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *recorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *recorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

type outcomeKey struct{}

// tagOutcome labels the request's access log line with what a booking handler concluded
// (ok, empty, invalid, not_found, error). It is a no-op outside Instrument.
func tagOutcome(r *http.Request, outcome string) {
	if p, ok := r.Context().Value(outcomeKey{}).(*string); ok {
		*p = outcome
	}
}

// Instrument records the request metrics and writes one access log line per request.
// Both use the matched chi route pattern, so /v1/rooms/42/quote is reported as
// /v1/rooms/{id}/quote.
func Instrument(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &recorder{ResponseWriter: w}
			var outcome string
			r = r.WithContext(context.WithValue(r.Context(), outcomeKey{}, &outcome))

			next.ServeHTTP(rec, r)

			dur := time.Since(start)
			route := routeOf(r)
			observability.ObserveHTTP(route, r.Method, rec.Status(), dur)

			ev := l.Info()
			if rec.Status() >= http.StatusInternalServerError {
				ev = l.Warn()
			}
			ev = ev.Str("request_id", chimw.GetReqID(r.Context())).
				Str("route", route).
				Str("method", r.Method).
				Int("status", rec.Status()).
				Dur("duration", dur).
				Str("remote", hostOf(r.RemoteAddr)).
				Str("ua", r.UserAgent())
			if outcome != "" {
				ev = ev.Str("outcome", outcome)
			}
			ev.Msg("http_request")
		})
	}
}

// routeOf falls back to the raw path for requests no route matched.
func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// hostOf strips the port. chimw.RealIP has already applied the forwarding headers.
func hostOf(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
		return host
	}
	return addr
}
