package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/pdftest"
)

func TestExtractPDF(t *testing.T) {
	for _, tc := range []struct {
		desc     string
		data     []byte
		hasErr   bool
		contains []string
	}{{
		desc:     "single page",
		data:     pdftest.Build("Hello PDF"),
		contains: []string{"Hello PDF"},
	}, {
		desc:     "escaped characters",
		data:     pdftest.Build(`total (net) \ brut`),
		contains: []string{"total (net) \\ brut"},
	}, {
		desc:     "livre",
		data:     pdftest.Livre(),
		contains: pdftest.LivrePages,
	}, {
		desc:   "not a PDF",
		data:   []byte("this is plain text, not a PDF document at all"),
		hasErr: true,
	}, {
		desc:   "empty input",
		data:   nil,
		hasErr: true,
	}, {
		desc:   "truncated PDF",
		data:   pdftest.Build("cut short")[:60],
		hasErr: true,
	}} {
		t.Run(tc.desc, func(t *testing.T) {
			text, err := ExtractPDF(tc.data)
			if tc.hasErr != (err != nil) {
				t.Fatalf("got (%q, %v), want error %v", text, err, tc.hasErr)
			}
			for _, entry := range tc.contains {
				if !strings.Contains(text, entry) {
					t.Errorf("missing %q in %q", entry, text)
				}
			}
		})
	}
}

func TestExtractPDFLivreGolden(t *testing.T) {
	text, err := ExtractPDF(pdftest.Livre())
	if err != nil {
		t.Fatalf("ExtractPDF returned error: %v", err)
	}
	if text != pdftest.LivreText {
		t.Errorf("got %q, want %q", text, pdftest.LivreText)
	}
}

func TestExtractPDFAccents(t *testing.T) {
	text, err := ExtractPDF(pdftest.Build("Préface : l'élève a reçu « Noël »"))
	if err != nil {
		t.Fatalf("ExtractPDF returned error: %v", err)
	}
	if text != "Préface : l'élève a reçu « Noël »" {
		t.Errorf("got %q", text)
	}
}

func TestExtractPDFPageOrder(t *testing.T) {
	text, err := ExtractPDF(pdftest.Livre())
	if err != nil {
		t.Fatalf("ExtractPDF returned error: %v", err)
	}

	last := -1
	for _, page := range pdftest.LivrePages {
		idx := strings.Index(text, page)
		if idx <= last {
			t.Fatalf("page %q out of order in %q", page, text)
		}
		last = idx
	}
}

func TestExtractPDFIsDeterministic(t *testing.T) {
	data := pdftest.Livre()

	first, err := ExtractPDF(data)
	if err != nil {
		t.Fatalf("first extraction: %v", err)
	}
	second, err := ExtractPDF(data)
	if err != nil {
		t.Fatalf("second extraction: %v", err)
	}

	if first != second {
		t.Errorf("extractions differ:\n%q\n%q", first, second)
	}
}

func TestExtractReturnsResult(t *testing.T) {
	fn := func(data []byte) (string, error) { return strings.ToUpper(string(data)), nil }

	text, err := Extract(context.Background(), fn, []byte("abc"))
	if err != nil || text != "ABC" {
		t.Errorf("got (%q, %v), want (ABC, nil)", text, err)
	}
}

func TestExtractTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	fn := func([]byte) (string, error) {
		<-release
		return "late", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Extract(ctx, fn, nil)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("got %v, want ErrTimeout", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("got %v, want it to wrap context.DeadlineExceeded", err)
	}
}

func TestExtractCanceled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	fn := func([]byte) (string, error) {
		<-release
		return "late", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	_, err := Extract(ctx, fn, nil)
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("got %v, want ErrCanceled", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Errorf("got %v, a cancellation must not look like a timeout", err)
	}
}

func TestExtractRecoversPanic(t *testing.T) {
	fn := func([]byte) (string, error) { panic("bad xref") }

	_, err := Extract(context.Background(), fn, nil)
	if err == nil || !strings.Contains(err.Error(), "bad xref") {
		t.Errorf("got %v, want error mentioning the panic", err)
	}
}
