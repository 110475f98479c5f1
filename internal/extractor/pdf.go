package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrTimeout is returned by Extract when the deadline passes before the text is ready.
	ErrTimeout = errors.New("extraction timed out")
	// ErrCanceled is returned by Extract when the caller gives up, e.g. the client disconnected.
	ErrCanceled = errors.New("extraction canceled")
)

// Func converts raw PDF bytes into plain text.
type Func func(data []byte) (string, error)

// ExtractPDF returns the plain text of every page, one page per line block.
// A document without any text layer yields an empty string and no error.
func ExtractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to create PDF reader: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}

// Extract runs fn on data and waits for it until ctx is done. The extraction
// goroutine cannot be stopped; after a timeout it finishes in the background
// and its result is dropped.
func Extract(ctx context.Context, fn Func, data []byte) (string, error) {
	type result struct {
		text string
		err  error
	}

	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("extraction panicked: %v", r)}
			}
		}()
		text, err := fn(data)
		done <- result{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		return "", fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
	}
}
