package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	return store
}

func TestNewSQLiteStore_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "subdir", "history.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSQLiteStore_Save_Load_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	record := NewRecord("report.pdf", "pdf", "pymupdf", "by_pages")
	record.Succeeded(12, "Successfully parsed report.pdf")

	if err := store.Save(record); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(record.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Filename != "report.pdf" {
		t.Errorf("Filename = %q", loaded.Filename)
	}
	if loaded.FileType != "pdf" {
		t.Errorf("FileType = %q", loaded.FileType)
	}
	if loaded.LoadingMethod != "pymupdf" {
		t.Errorf("LoadingMethod = %q", loaded.LoadingMethod)
	}
	if loaded.ParsingOption != "by_pages" {
		t.Errorf("ParsingOption = %q", loaded.ParsingOption)
	}
	if loaded.TotalPages != 12 {
		t.Errorf("TotalPages = %d", loaded.TotalPages)
	}
	if loaded.Outcome != OutcomeSucceeded {
		t.Errorf("Outcome = %q", loaded.Outcome)
	}
	if !loaded.CreatedAt.Equal(record.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", loaded.CreatedAt, record.CreatedAt)
	}
}

func TestSQLiteStore_Save_UpdatesOutcome(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	record := NewRecord("notes.md", "markdown", "auto", "all_text")
	record.Failed("Error: HTTP error! status: 500")
	if err := store.Save(record); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	record.Succeeded(3, "Successfully parsed notes.md")
	if err := store.Save(record); err != nil {
		t.Fatalf("Save() update error = %v", err)
	}

	loaded, err := store.Load(record.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Outcome != OutcomeSucceeded {
		t.Errorf("Outcome = %q after update", loaded.Outcome)
	}
	if loaded.TotalPages != 3 {
		t.Errorf("TotalPages = %d after update", loaded.TotalPages)
	}
}

func TestSQLiteStore_List_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	older := NewRecord("a.pdf", "pdf", "auto", "all_text")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := NewRecord("b.md", "markdown", "plain", "by_pages")

	for _, r := range []*Record{older, newer} {
		r.Succeeded(1, "ok")
		if err := store.Save(r); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	records, err := store.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List() returned %d records, want 2", len(records))
	}
	if records[0].Filename != "b.md" || records[1].Filename != "a.pdf" {
		t.Errorf("records not sorted newest first: %s, %s", records[0].Filename, records[1].Filename)
	}
}

func TestSQLiteStore_List_Limit(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	for i := 0; i < 5; i++ {
		r := NewRecord("f.pdf", "pdf", "auto", "all_text")
		r.Succeeded(1, "ok")
		if err := store.Save(r); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	records, err := store.List(3)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 3 {
		t.Errorf("List(3) returned %d records", len(records))
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	record := NewRecord("x.pdf", "pdf", "auto", "all_text")
	record.Succeeded(1, "ok")
	if err := store.Save(record); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := store.Delete(record.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := store.Load(record.ID); err != ErrRecordNotFound {
		t.Errorf("Load() after delete error = %v, want ErrRecordNotFound", err)
	}
}

func TestSQLiteStore_Delete_NotFound(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	if err := store.Delete("nope"); err != ErrRecordNotFound {
		t.Errorf("Delete() error = %v, want ErrRecordNotFound", err)
	}
}

func TestSQLiteStore_Save_InvalidID(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	if err := store.Save(&Record{}); err != ErrInvalidID {
		t.Errorf("Save() error = %v, want ErrInvalidID", err)
	}
	if err := store.Save(nil); err == nil {
		t.Error("Save(nil) should error")
	}
}
