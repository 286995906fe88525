package documents_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-filecms/internal/documents"
)

func newStore(t *testing.T) (*documents.Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	store, err := documents.NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store, dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	_, dir := newStore(t)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected store directory to exist: %v", err)
	}
	if _, err := documents.NewStore(" "); err == nil {
		t.Fatal("expected error for blank directory")
	}
}

func TestListReturnsSortedRegularFiles(t *testing.T) {
	store, dir := newStore(t)
	writeFile(t, dir, "changes.txt", "")
	writeFile(t, dir, "about.md", "")
	writeFile(t, dir, "notes.rtf", "")
	writeFile(t, dir, ".hidden.md", "")
	if err := os.Mkdir(filepath.Join(dir, "archive"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	names, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"about.md", "changes.txt", "notes.rtf"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	if err := store.Write(ctx, "history.txt", []byte("HISTORY")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := store.Write(ctx, "history.txt", []byte("new")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Read(ctx, "history.txt")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "new" {
		t.Fatalf("expected full replace, got %q", got)
	}
	if !store.Exists(ctx, "history.txt") {
		t.Fatal("expected document to exist")
	}
}

func TestCreateEmptyTruncates(t *testing.T) {
	store, dir := newStore(t)
	writeFile(t, dir, "about.md", "# existing")

	if err := store.CreateEmpty(context.Background(), "about.md"); err != nil {
		t.Fatalf("CreateEmpty: %v", err)
	}
	got, err := store.Read(context.Background(), "about.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty content, got %q", got)
	}
}

func TestReadMissingIsNotFound(t *testing.T) {
	store, dir := newStore(t)
	if err := os.Mkdir(filepath.Join(dir, "folder.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	for _, name := range []string{"notafile.txt", "folder.md"} {
		_, err := store.Read(context.Background(), name)
		if !errors.Is(err, documents.ErrNotFound) {
			t.Fatalf("Read(%q): expected ErrNotFound, got %v", name, err)
		}
		if !goerrors.IsNotFound(err) {
			t.Fatalf("Read(%q): expected not_found category, got %v", name, err)
		}
		if store.Exists(context.Background(), name) {
			t.Fatalf("Exists(%q) = true", name)
		}
	}
}

func TestDelete(t *testing.T) {
	store, dir := newStore(t)
	writeFile(t, dir, "hello.txt", "")

	if err := store.Delete(context.Background(), "hello.txt"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if store.Exists(context.Background(), "hello.txt") {
		t.Fatal("expected document to be removed")
	}
	if err := store.Delete(context.Background(), "hello.txt"); !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestTraversalNamesAreRejected(t *testing.T) {
	store, dir := newStore(t)
	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatalf("write outside file: %v", err)
	}
	ctx := context.Background()

	for _, name := range []string{"../secret.txt", "..", "", "a/b.txt", "a\\b.txt", "nul\x00.txt"} {
		if _, err := store.Read(ctx, name); !errors.Is(err, documents.ErrInvalidName) {
			t.Fatalf("Read(%q): expected ErrInvalidName, got %v", name, err)
		}
		if err := store.Write(ctx, name, []byte("x")); !errors.Is(err, documents.ErrInvalidName) {
			t.Fatalf("Write(%q): expected ErrInvalidName, got %v", name, err)
		}
		if err := store.Delete(ctx, name); !documents.IsMissing(err) {
			t.Fatalf("Delete(%q): expected missing error, got %v", name, err)
		}
	}

	if content, _ := os.ReadFile(outside); string(content) != "secret" {
		t.Fatalf("file outside the store was modified: %q", content)
	}
}

func TestCancelledContext(t *testing.T) {
	store, _ := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := store.Write(ctx, "a.txt", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
