package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/config"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/utils"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Logger logs one line per request and tags the response with a request id.
func Logger(logger *utils.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = utils.GenerateID()
			}
			w.Header().Set(RequestIDHeader, requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info("HTTP request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).String())
		})
	}
}

// CORS allows GET and POST with a Content-Type header from the configured
// origin only, with credentials and a one hour preflight cache.
//
// It must wrap the router itself: mux answers an OPTIONS preflight with 405
// before any route middleware runs.
//
// Preflight header names are compared case-sensitively with the lower-cased
// allow-list. Browsers always send them in lower case; a hand-written
// "Content-Type" in Access-Control-Request-Headers is refused.
func CORS(cfg *config.Config) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           config.CORSMaxAge,
	}).Handler
}

// Recovery turns a panicking handler into a 500 response.
func Recovery(logger *utils.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						"error", err,
						"path", r.URL.Path,
						"stack", string(debug.Stack()))
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
