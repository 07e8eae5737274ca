package server

import "net/http"

// statusRecorder captures the status code written by the wrapped handler so
// the logging middleware can report it after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// logResponses logs every non-2xx response. Successful requests stay quiet to
// keep the log signal-only.
func (s *Server) logResponses(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status >= 300 {
			s.logger.Warn(r.Context(), "non-ok response",
				"method", r.Method, "path", r.URL.Path, "status", rec.status)
		}
	})
}

// countFileserverHits increments both the admin counter and the prometheus
// counter for every request that reaches the static fileserver.
func (s *Server) countFileserverHits(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.fileserverHits.Add(1)
		s.hitsCounter.Inc()
		next.ServeHTTP(w, r)
	})
}
