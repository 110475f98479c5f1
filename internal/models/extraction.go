package models

import (
	"time"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/utils"
)

type ExtractRequest struct {
	FilePath string `json:"file_path"`
}

type ExtractResponse struct {
	Text string `json:"text"`
}

// Extraction statuses stored in the journal. Failures are stored under the
// kind of the error that ended the request.
const (
	StatusOK              = "ok"
	StatusReadError       = string(utils.KindFileRead)
	StatusExtractionError = string(utils.KindExtraction)
	StatusLimitExceeded   = string(utils.KindLimitExceeded)
	StatusCanceled        = string(utils.KindCanceled)
)

// FailureStatus is the journal status for a request that failed with kind.
func FailureStatus(kind utils.ErrorKind) string {
	return string(kind)
}

type ExtractionRecord struct {
	ID         string    `json:"id" db:"id"`
	FilePath   string    `json:"file_path" db:"file_path"`
	FileSize   int64     `json:"file_size" db:"file_size"`
	TextLength int       `json:"text_length" db:"text_length"`
	Status     string    `json:"status" db:"status"`
	Error      *string   `json:"error,omitempty" db:"error"`
	DurationMS int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
