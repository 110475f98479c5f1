package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/config"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/extractor"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/models"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/repository"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/storage"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/utils"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type ExtractionService interface {
	Extract(ctx context.Context, req *models.ExtractRequest) (*models.ExtractResponse, error)
	ListExtractions(ctx context.Context, limit int) ([]models.ExtractionRecord, error)
}

type extractionService struct {
	storage     storage.Storage
	extract     extractor.Func
	journal     repository.Repository
	journalOn   bool
	maxFileSize int64
	timeout     time.Duration
	logger      *utils.Logger
}

type Option func(*extractionService)

// WithExtractor replaces the PDF extraction function.
func WithExtractor(fn extractor.Func) Option {
	return func(s *extractionService) { s.extract = fn }
}

// WithJournal records every extraction outcome in repo.
func WithJournal(repo repository.Repository) Option {
	return func(s *extractionService) {
		s.journal = repo
		s.journalOn = true
	}
}

func NewService(store storage.Storage, cfg *config.Config, logger *utils.Logger, opts ...Option) ExtractionService {
	s := &extractionService{
		storage:     store,
		extract:     extractor.ExtractPDF,
		journal:     repository.NewNoopRepository(),
		maxFileSize: cfg.MaxFileSize,
		timeout:     cfg.ExtractionTimeout,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *extractionService) Extract(ctx context.Context, req *models.ExtractRequest) (*models.ExtractResponse, error) {
	start := time.Now()
	rec := &models.ExtractionRecord{
		ID:        utils.GenerateID(),
		FilePath:  req.FilePath,
		CreatedAt: start.UTC(),
	}

	text, appErr := s.run(ctx, req.FilePath, rec)

	rec.DurationMS = time.Since(start).Milliseconds()
	if appErr != nil {
		rec.Status = models.FailureStatus(appErr.Kind)
		msg := appErr.Err.Error()
		rec.Error = &msg
		s.logger.Warn("Extraction failed",
			"file_path", req.FilePath,
			"kind", appErr.Kind,
			"error", appErr.Err,
			"duration_ms", rec.DurationMS)
	} else {
		rec.Status = models.StatusOK
		rec.TextLength = len(text)
		s.logger.Info("Text extracted",
			"file_path", req.FilePath,
			"file_size", rec.FileSize,
			"text_length", rec.TextLength,
			"duration_ms", rec.DurationMS)
	}

	// The journal never changes the outcome of the request.
	if err := s.journal.Create(context.WithoutCancel(ctx), rec); err != nil {
		s.logger.Error("Failed to write extraction journal", "error", err, "id", rec.ID)
	}

	if appErr != nil {
		return nil, appErr
	}
	return &models.ExtractResponse{Text: text}, nil
}

func (s *extractionService) run(ctx context.Context, path string, rec *models.ExtractionRecord) (string, *utils.AppError) {
	data, err := s.storage.Read(ctx, path, s.maxFileSize)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return "", utils.NewResourceLimitError(http.StatusRequestEntityTooLarge, err)
		}
		return "", utils.NewFileReadError(err)
	}
	rec.FileSize = int64(len(data))

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := extractor.Extract(ctx, s.extract, data)
	if err != nil {
		if errors.Is(err, extractor.ErrTimeout) {
			return "", utils.NewResourceLimitError(http.StatusServiceUnavailable, err)
		}
		if errors.Is(err, extractor.ErrCanceled) {
			return "", utils.NewCanceledError(err)
		}
		return "", utils.NewExtractionError(err)
	}

	return text, nil
}

func (s *extractionService) ListExtractions(ctx context.Context, limit int) ([]models.ExtractionRecord, error) {
	if !s.journalOn {
		return nil, utils.NewNotFoundError("Extraction journal is disabled")
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	records, err := s.journal.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list extractions", "error", err)
		return nil, utils.NewInternalError("Failed to retrieve extractions")
	}

	return records, nil
}
