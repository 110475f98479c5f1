package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/models"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/services"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/utils"
)

const (
	MaxRequestBodySize = 1 << 20 // 1MB
)

type ExtractionHandler struct {
	service services.ExtractionService
	logger  *utils.Logger
}

func NewExtractionHandler(service services.ExtractionService, logger *utils.Logger) *ExtractionHandler {
	return &ExtractionHandler{
		service: service,
		logger:  logger,
	}
}

// Extract answers with JSON on success and a plain text diagnostic on failure.
func (h *ExtractionHandler) Extract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)

	var req models.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondText(w, utils.NewInvalidRequestError("%v", err))
		return
	}

	if req.FilePath == "" {
		h.respondText(w, utils.NewInvalidRequestError("le champ file_path est requis"))
		return
	}

	resp, err := h.service.Extract(r.Context(), &req)
	if err != nil {
		h.respondText(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *ExtractionHandler) ListExtractions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			h.respondError(w, utils.NewBadRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	records, err := h.service.ListExtractions(r.Context(), limit)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, records)
}

func (h *ExtractionHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func statusAndMessage(err error) (int, string) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode, appErr.Message
	}
	return http.StatusInternalServerError, "Internal server error"
}

func (h *ExtractionHandler) respondText(w http.ResponseWriter, err error) {
	status, message := statusAndMessage(err)
	h.logger.Debug("Request error", "status", status, "error", message)
	http.Error(w, message, status)
}

func (h *ExtractionHandler) respondError(w http.ResponseWriter, err error) {
	status, message := statusAndMessage(err)
	h.logger.Error("Request error", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
