package storage

import (
	"path/filepath"
	"testing"

	"github.com/unbound-force/rolo/internal/book"
)

func TestSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook.db")
	store, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite error: %v", err)
	}

	want := sampleBook(t)
	if err := store.Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	assertBooksEqual(t, got, want)
}

func TestSQLite_MissingFileYieldsEmptyBook(t *testing.T) {
	store, err := NewSQLite(filepath.Join(t.TempDir(), "nope.db"))
	if err != nil {
		t.Fatal(err)
	}

	bk, err := store.Load()
	if err != nil {
		t.Fatalf("Load of a missing database must not error, got: %v", err)
	}
	if bk.Len() != 0 {
		t.Errorf("Len() = %d, want empty book", bk.Len())
	}
}

func TestSQLite_SaveReplacesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook.db")
	store, err := NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save(sampleBook(t)); err != nil {
		t.Fatal(err)
	}

	// Second save with a different book must fully replace the first.
	second := book.New()
	carol, err := book.NewRecord("Carol")
	if err != nil {
		t.Fatal(err)
	}
	if err := carol.AddPhone("5555555555"); err != nil {
		t.Fatal(err)
	}
	second.AddRecord(carol)
	if err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	assertBooksEqual(t, got, second)
}

func TestSQLite_EmptyPathRejected(t *testing.T) {
	if _, err := NewSQLite(""); err == nil {
		t.Error("NewSQLite with empty path succeeded")
	}
}
