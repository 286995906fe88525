package session

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/goliatone/go-filecms/internal/logging"
	"github.com/goliatone/go-filecms/internal/runtimeconfig"
	"github.com/goliatone/go-filecms/pkg/interfaces"
)

// MessageSignInRequired is flashed when an anonymous client hits a gated route.
const MessageSignInRequired = "You must be signed in to do that."

const (
	keyUsername = "username"
	keyFlash    = "flash"
)

// Manager loads and persists per-client session state on top of a
// gorilla/sessions store.
type Manager struct {
	store  sessions.Store
	name   string
	logger interfaces.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger overrides the logger used for session events.
func WithLogger(logger interfaces.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStore replaces the store built from configuration.
func WithStore(store sessions.Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// NewManager builds a Manager from cfg. Without a configured hash key a random
// one is generated, so sessions do not survive a restart.
func NewManager(cfg runtimeconfig.SessionConfig, opts ...Option) (*Manager, error) {
	m := &Manager{
		name:   strings.TrimSpace(cfg.Name),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.name == "" {
		return nil, runtimeconfig.ErrSessionNameRequired
	}
	if m.store != nil {
		return m, nil
	}

	keys := keyPairs(cfg, m.logger)
	options := cookieOptions(cfg)

	switch strings.ToLower(strings.TrimSpace(cfg.Store)) {
	case "", runtimeconfig.SessionStoreCookie:
		store := sessions.NewCookieStore(keys...)
		if cfg.MaxAge > 0 {
			store.MaxAge(cfg.MaxAge)
		}
		store.Options = options
		m.store = store
	case runtimeconfig.SessionStoreFilesystem:
		if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
			return nil, fmt.Errorf("session: create store directory: %w", err)
		}
		store := sessions.NewFilesystemStore(cfg.Dir, keys...)
		if cfg.MaxAge > 0 {
			store.MaxAge(cfg.MaxAge)
		}
		store.Options = options
		m.store = store
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrSessionStoreUnknown, cfg.Store)
	}
	return m, nil
}

func keyPairs(cfg runtimeconfig.SessionConfig, logger interfaces.Logger) [][]byte {
	hashKey := []byte(cfg.HashKey)
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(64)
		logger.Warn("session.hash_key.generated", "hint", "set session.hash_key to keep sessions across restarts")
	}
	if cfg.BlockKey == "" {
		return [][]byte{hashKey}
	}
	return [][]byte{hashKey, []byte(cfg.BlockKey)}
}

func cookieOptions(cfg runtimeconfig.SessionConfig) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Name reports the session cookie name.
func (m *Manager) Name() string {
	return m.name
}

// Load returns the session state for r. A cookie that cannot be decoded is
// discarded and an empty state is returned.
func (m *Manager) Load(r *http.Request) *State {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		logging.WithFields(m.logger, logging.ContextFields(r.Context())).
			Warn("session.decode_failed", "error", err)
		if sess == nil {
			sess = sessions.NewSession(m.store, m.name)
		}
		sess.Values = map[any]any{}
		sess.IsNew = true
	}

	state := &State{session: sess}
	if username, ok := sess.Values[keyUsername].(string); ok {
		state.username = username
	}
	return state
}

// Save writes state back to the client when it changed during the request.
// It must run before the response status is written.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, state *State) error {
	if state == nil || !state.dirty {
		return nil
	}
	if err := state.session.Save(r, w); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	state.dirty = false
	return nil
}

// RequireSignedIn reports whether state belongs to a signed in client. When
// it does not, the client is flashed, redirected to "/" and false is returned.
func (m *Manager) RequireSignedIn(w http.ResponseWriter, r *http.Request, state *State) bool {
	if state.IsSignedIn() {
		return true
	}
	state.SetFlash(MessageSignInRequired)
	if err := m.Save(w, r, state); err != nil {
		m.logger.Error("session.save_failed", "error", err)
	}
	logging.WithFields(m.logger, logging.ContextFields(r.Context())).
		Info("auth.required", "path", r.URL.Path)
	http.Redirect(w, r, "/", http.StatusFound)
	return false
}
