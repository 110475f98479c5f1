package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/db"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/models"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()

	database, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("NewSQLiteDB: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.RunMigrations(database); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}

	return NewRepository(database)
}

func TestCreateAndListRecent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	msg := "open absent.pdf: no such file or directory"
	records := []*models.ExtractionRecord{
		{ID: "a", FilePath: "livre.pdf", FileSize: 1200, TextLength: 140, Status: models.StatusOK, DurationMS: 3, CreatedAt: base},
		{ID: "b", FilePath: "absent.pdf", Status: models.StatusReadError, Error: &msg, DurationMS: 0, CreatedAt: base.Add(time.Second)},
		{ID: "c", FilePath: "notes.txt", FileSize: 40, Status: models.StatusExtractionError, DurationMS: 1, CreatedAt: base.Add(2 * time.Second)},
	}
	for _, rec := range records {
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create(%s): %v", rec.ID, err)
		}
	}

	got, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("got order %s,%s, want c,b", got[0].ID, got[1].ID)
	}
	if got[1].Error == nil || *got[1].Error != msg {
		t.Errorf("error column = %v, want %q", got[1].Error, msg)
	}
	if got[0].Error != nil {
		t.Errorf("error column = %q, want NULL", *got[0].Error)
	}
	if !got[1].CreatedAt.Equal(base.Add(time.Second)) {
		t.Errorf("created_at = %v, want %v", got[1].CreatedAt, base.Add(time.Second))
	}
}

func TestListRecentEmpty(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %#v, want empty non-nil slice", got)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	for i := 0; i < 2; i++ {
		database, err := db.NewSQLiteDB(path)
		if err != nil {
			t.Fatalf("NewSQLiteDB: %v", err)
		}
		if err := db.RunMigrations(database); err != nil {
			t.Fatalf("RunMigrations run %d: %v", i+1, err)
		}
		database.Close()
	}
}

func TestNoopRepository(t *testing.T) {
	repo := NewNoopRepository()

	if err := repo.Create(context.Background(), &models.ExtractionRecord{ID: "x"}); err != nil {
		t.Errorf("Create: %v", err)
	}
	got, err := repo.ListRecent(context.Background(), 5)
	if err != nil || len(got) != 0 {
		t.Errorf("ListRecent = (%v, %v), want empty", got, err)
	}
}
