package main

import (
	"os"
	"testing"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/pdftest"
)

func TestRun(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if code := run(); code != 1 {
		t.Errorf("run without %s = %d, want 1", inputFile, code)
	}

	if err := os.WriteFile(inputFile, []byte("not a pdf at all"), 0o600); err != nil {
		t.Fatal(err)
	}
	if code := run(); code != 1 {
		t.Errorf("run on invalid PDF = %d, want 1", code)
	}

	if err := os.WriteFile(inputFile, pdftest.Livre(), 0o600); err != nil {
		t.Fatal(err)
	}
	if code := run(); code != 0 {
		t.Errorf("run on livre.pdf = %d, want 0", code)
	}
}
