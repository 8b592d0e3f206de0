package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// requestRecorder is the subset of the metrics registry the HTTP layer uses.
type requestRecorder interface {
	RecordRequest(route, status string)
	ObserveDuration(route string, seconds float64)
}

// Metrics returns middleware that records a request counter and duration
// histogram under the given route name. Applied per route so path
// parameters never become label values.
func Metrics(rec requestRecorder, route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			rec.RecordRequest(route, strconv.Itoa(sw.status))
			rec.ObserveDuration(route, time.Since(start).Seconds())
		})
	}
}
