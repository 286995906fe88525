package documents

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-filecms/internal/logging"
	"github.com/goliatone/go-filecms/pkg/interfaces"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Store keeps documents as regular files in a single flat directory. There is
// no locking: concurrent writes to one file resolve as last write wins.
type Store struct {
	dir    string
	logger interfaces.Logger
}

var _ interfaces.DocumentStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger overrides the logger used for document events.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore returns a Store rooted at dir, creating the directory when it is
// missing.
func NewStore(dir string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("documents: directory is required")
	}
	s := &Store{
		dir:    filepath.Clean(dir),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return nil, ioFailure(err, "mkdir", s.dir)
	}
	return s, nil
}

// Dir reports the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// List returns the names of all visible regular files, sorted by name.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, ioFailure(err, "list", s.dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !entry.Type().IsRegular() {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether name is a regular file in the store.
func (s *Store) Exists(ctx context.Context, name string) bool {
	if ctx.Err() != nil {
		return false
	}
	path, err := s.resolve(name)
	if err != nil {
		return false
	}
	return isRegular(path)
}

// Read returns the full content of a document.
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	if !isRegular(path) {
		return nil, notFound(name)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(name)
		}
		return nil, ioFailure(err, "read", name)
	}
	return content, nil
}

// Write creates the document or replaces its content entirely.
func (s *Store) Write(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return ioFailure(err, "write", name)
	}
	logging.WithDocument(s.logger, name).Debug("document.written", "bytes", len(content))
	return nil
}

// CreateEmpty writes an empty document, truncating any existing content.
func (s *Store) CreateEmpty(ctx context.Context, name string) error {
	return s.Write(ctx, name, nil)
}

// Delete removes a document.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if !isRegular(path) {
		return notFound(name)
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(name)
		}
		return ioFailure(err, "delete", name)
	}
	logging.WithDocument(s.logger, name).Debug("document.deleted")
	return nil
}

func (s *Store) resolve(name string) (string, error) {
	if !isPlainName(name) {
		return "", invalidName(name)
	}
	return filepath.Join(s.dir, name), nil
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
