package router

import (
	"net/http"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/config"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/handlers"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/middleware"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/services"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/utils"

	"github.com/gorilla/mux"
)

func NewRouter(service services.ExtractionService, cfg *config.Config, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	extractionHandler := handlers.NewExtractionHandler(service, logger)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	// Extraction endpoints
	r.HandleFunc("/extract", extractionHandler.Extract).Methods(http.MethodPost)
	r.HandleFunc("/extractions", extractionHandler.ListExtractions).Methods(http.MethodGet)

	if cfg.CORSEnabled {
		return middleware.CORS(cfg)(r)
	}
	return r
}
