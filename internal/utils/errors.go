package utils

import (
	"fmt"
	"net/http"
)

// ErrorKind tells apart the failures of an extraction request.
type ErrorKind string

const (
	KindBadRequest    ErrorKind = "bad_request"
	KindNotFound      ErrorKind = "not_found"
	KindInternal      ErrorKind = "internal"
	KindFileRead      ErrorKind = "read_error"
	KindExtraction    ErrorKind = "extraction_error"
	KindLimitExceeded ErrorKind = "limit_exceeded"
	KindCanceled      ErrorKind = "canceled"
)

// Diagnostic prefixes returned to callers of /extract.
const (
	FileReadPrefix      = "Erreur lors de la lecture du fichier : "
	ExtractionPrefix    = "Erreur lors de l'extraction du texte : "
	ResourceLimitPrefix = "Limite de ressources dépassée : "
	BadRequestPrefix    = "Requête invalide : "
	CanceledPrefix      = "Requête annulée : "
)

// StatusClientClosedRequest is the non-standard status logged when the caller
// went away before the extraction finished. Nobody reads the response.
const StatusClientClosedRequest = 499

type AppError struct {
	StatusCode int
	Message    string
	Kind       ErrorKind
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message, Kind: KindBadRequest}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message, Kind: KindNotFound}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message, Kind: KindInternal}
}

func NewFileReadError(err error) *AppError {
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Message:    FileReadPrefix + err.Error(),
		Kind:       KindFileRead,
		Err:        err,
	}
}

func NewExtractionError(err error) *AppError {
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Message:    ExtractionPrefix + err.Error(),
		Kind:       KindExtraction,
		Err:        err,
	}
}

// NewResourceLimitError reports a size or time limit hit while serving a request.
// statusCode is 413 for size and 503 for time.
func NewResourceLimitError(statusCode int, err error) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    ResourceLimitPrefix + err.Error(),
		Kind:       KindLimitExceeded,
		Err:        err,
	}
}

func NewCanceledError(err error) *AppError {
	return &AppError{
		StatusCode: StatusClientClosedRequest,
		Message:    CanceledPrefix + err.Error(),
		Kind:       KindCanceled,
		Err:        err,
	}
}

func NewInvalidRequestError(format string, args ...any) *AppError {
	return NewBadRequestError(BadRequestPrefix + fmt.Sprintf(format, args...))
}
