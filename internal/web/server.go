package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goliatone/go-filecms/internal/logging"
	"github.com/goliatone/go-filecms/internal/render"
	"github.com/goliatone/go-filecms/internal/session"
	"github.com/goliatone/go-filecms/pkg/interfaces"
)

var (
	ErrDocumentsRequired   = errors.New("web: document store is required")
	ErrCredentialsRequired = errors.New("web: credential verifier is required")
	ErrSessionsRequired    = errors.New("web: session manager is required")
)

// DocumentRenderer turns stored content into a response body.
type DocumentRenderer interface {
	Render(name string, content []byte) (render.Output, error)
}

// Server serves the document routes.
type Server struct {
	documents   interfaces.DocumentStore
	credentials interfaces.CredentialVerifier
	renderer    DocumentRenderer
	sessions    *session.Manager
	views       *views
	logger      interfaces.Logger
}

// Option mutates the Server configuration.
type Option func(*Server)

// WithDocuments wires the document store.
func WithDocuments(store interfaces.DocumentStore) Option {
	return func(s *Server) {
		if s != nil {
			s.documents = store
		}
	}
}

// WithCredentials wires the credential verifier used by sign in.
func WithCredentials(verifier interfaces.CredentialVerifier) Option {
	return func(s *Server) {
		if s != nil {
			s.credentials = verifier
		}
	}
}

// WithRenderer overrides the document renderer.
func WithRenderer(renderer DocumentRenderer) Option {
	return func(s *Server) {
		if s != nil && renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithSessions wires the session manager.
func WithSessions(manager *session.Manager) Option {
	return func(s *Server) {
		if s != nil {
			s.sessions = manager
		}
	}
}

// WithLogger sets the logger used for access and handler events.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Server) {
		if s != nil && logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a Server. Documents, credentials and sessions are required.
func New(opts ...Option) (*Server, error) {
	s := &Server{
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	switch {
	case s.documents == nil:
		return nil, ErrDocumentsRequired
	case s.credentials == nil:
		return nil, ErrCredentialsRequired
	case s.sessions == nil:
		return nil, ErrSessionsRequired
	}
	if s.renderer == nil {
		s.renderer = render.New(nil)
	}

	v, err := loadViews()
	if err != nil {
		return nil, err
	}
	s.views = v
	return s, nil
}

// Router returns a gorilla/mux router with every document route registered.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	s.Register(r)
	return r
}

// Register mounts the routes on r. Literal paths are registered ahead of the
// {filename} patterns so they take precedence.
func (s *Server) Register(r *mux.Router) {
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/new", s.handleNewForm).Methods(http.MethodGet)
	r.HandleFunc("/new", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/signin", s.handleSignInForm).Methods(http.MethodGet)
	r.HandleFunc("/signin", s.handleSignIn).Methods(http.MethodPost)
	r.HandleFunc("/signout", s.handleSignOut).Methods(http.MethodPost)
	r.HandleFunc("/{filename}/edit", s.handleEditForm).Methods(http.MethodGet)
	r.HandleFunc("/{filename}/edit", s.handleUpdate).Methods(http.MethodPost)
	r.HandleFunc("/{filename}/delete", s.handleDelete).Methods(http.MethodPost)
	r.HandleFunc("/{filename}", s.handleView).Methods(http.MethodGet)
}

// Handler returns the router wrapped in the request ID, access log and panic
// recovery middleware.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.Router()
	h = recoverPanics(s.logger)(h)
	h = accessLog(s.logger)(h)
	h = requestID(h)
	return h
}
