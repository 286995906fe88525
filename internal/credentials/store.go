package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-filecms/internal/logging"
	"github.com/goliatone/go-filecms/pkg/interfaces"
)

const (
	textCodeUnreadable = "CREDENTIALS_UNREADABLE"
	textCodeMalformed  = "CREDENTIALS_MALFORMED"
)

// ErrPasswordRequired is returned by HashPassword for blank input.
var ErrPasswordRequired = errors.New("credentials: password is required")

// Store verifies usernames and passwords against a YAML file mapping each
// username to a bcrypt hash. The file is read on every call.
type Store struct {
	path   string
	logger interfaces.Logger
}

var _ interfaces.CredentialVerifier = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger overrides the logger used for verification events.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path reports the credential file location.
func (s *Store) Path() string {
	return s.path
}

// Verify reports whether password matches the stored hash for username.
// Unknown users and hash mismatches both yield false without an error; a
// missing or malformed file is an internal error.
func (s *Store) Verify(ctx context.Context, username, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	entries, err := s.load()
	if err != nil {
		s.logger.Error("credentials.load_failed", "path", s.path, "error", err)
		return false, err
	}

	hash, ok := entries[username]
	if !ok || username == "" {
		s.logger.Debug("credentials.unknown_user", "username", username)
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("credentials.hash_invalid", "username", username, "error", err)
		}
		return false, nil
	}
	return true, nil
}

func (s *Store) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "credential file unreadable").
			WithTextCode(textCodeUnreadable).
			WithMetadata(map[string]any{"path": s.path})
	}

	entries := map[string]string{}
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "credential file malformed").
			WithTextCode(textCodeMalformed).
			WithMetadata(map[string]any{"path": s.path})
	}
	return entries, nil
}

// HashPassword returns a bcrypt hash suitable for the credential file. A cost
// of zero selects bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrPasswordRequired
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("credentials: cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("credentials: hash password: %w", err)
	}
	return string(hash), nil
}

// Entry formats a single credential file line.
func Entry(username, hash string) string {
	return fmt.Sprintf("%s: %q", username, hash)
}
