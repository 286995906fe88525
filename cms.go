package cms

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/goliatone/go-filecms/internal/credentials"
	"github.com/goliatone/go-filecms/internal/documents"
	"github.com/goliatone/go-filecms/internal/logging"
	"github.com/goliatone/go-filecms/internal/logging/gologger"
	"github.com/goliatone/go-filecms/internal/markdown"
	"github.com/goliatone/go-filecms/internal/render"
	"github.com/goliatone/go-filecms/internal/session"
	"github.com/goliatone/go-filecms/internal/web"
	"github.com/goliatone/go-filecms/pkg/interfaces"
)

// DocumentStore exports the document store contract.
type DocumentStore = interfaces.DocumentStore

// CredentialVerifier exports the credential verification contract.
type CredentialVerifier = interfaces.CredentialVerifier

// Module represents the top level CMS runtime façade.
type Module struct {
	cfg            Config
	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger
	documents      *documents.Store
	credentials    *credentials.Store
	sessions       *session.Manager
	server         *web.Server
}

type moduleOptions struct {
	loggerProvider interfaces.LoggerProvider
	parser         interfaces.MarkdownParser
}

// Option customises module construction.
type Option func(*moduleOptions)

// WithLoggerProvider replaces the provider selected by cfg.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		if provider != nil {
			o.loggerProvider = provider
		}
	}
}

// WithMarkdownParser replaces the goldmark parser built from cfg.Markdown.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(o *moduleOptions) {
		if parser != nil {
			o.parser = parser
		}
	}
}

// New validates cfg and wires the document store, credential store, session
// manager and HTTP server for the configured run mode.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := moduleOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	provider := options.loggerProvider
	if provider == nil {
		var err error
		provider, err = newLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
	}

	m := &Module{
		cfg:            cfg,
		loggerProvider: provider,
		logger:         logging.RootLogger(provider),
	}

	docs, err := documents.NewStore(cfg.DataDir(), documents.WithLogger(logging.DocumentsLogger(provider)))
	if err != nil {
		return nil, fmt.Errorf("filecms: document store: %w", err)
	}
	m.documents = docs

	authLogger := logging.AuthLogger(provider)
	m.credentials = credentials.NewStore(cfg.CredentialsPath(), credentials.WithLogger(authLogger))
	if _, err := os.Stat(m.credentials.Path()); err != nil {
		m.logger.Warn("credentials.file_missing", "path", m.credentials.Path(), "error", err)
	}

	m.sessions, err = session.NewManager(cfg.Session, session.WithLogger(authLogger))
	if err != nil {
		return nil, fmt.Errorf("filecms: sessions: %w", err)
	}

	for _, name := range cfg.Markdown.Extensions {
		if !markdown.KnownExtension(name) {
			m.logger.Warn("markdown.extension_unknown", "extension", name)
		}
	}
	parseOptions := interfaces.ParseOptions{
		Extensions:    cfg.Markdown.Extensions,
		HardWraps:     cfg.Markdown.HardWraps,
		Unsafe:        cfg.Markdown.Unsafe,
		AutoHeadingID: cfg.Markdown.AutoHeadingID,
		FrontMatter:   cfg.Markdown.FrontMatter,
	}
	renderer := render.New(markdown.NewService(options.parser, parseOptions))

	m.server, err = web.New(
		web.WithDocuments(m.documents),
		web.WithCredentials(m.credentials),
		web.WithRenderer(renderer),
		web.WithSessions(m.sessions),
		web.WithLogger(logging.HTTPLogger(provider)),
	)
	if err != nil {
		return nil, fmt.Errorf("filecms: http: %w", err)
	}

	m.logger.Info("module.ready",
		"mode", strings.ToLower(cfg.Mode),
		"data_dir", docs.Dir(),
		"credentials", m.credentials.Path(),
	)
	return m, nil
}

// Handler returns the HTTP handler serving every document route.
func (m *Module) Handler() http.Handler {
	return m.server.Handler()
}

// Documents returns the document store bound to the active run mode.
func (m *Module) Documents() DocumentStore {
	return m.documents
}

// Credentials returns the credential verifier.
func (m *Module) Credentials() CredentialVerifier {
	return m.credentials
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Logger returns the root module logger.
func (m *Module) Logger() interfaces.Logger {
	return m.logger
}

// LoggerProvider returns the provider module loggers are drawn from.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.loggerProvider
}

func newLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case LoggingProviderNone:
		return logging.NoOpProvider(), nil
	case LoggingProviderGoLogger, "":
		provider, err := gologger.NewProvider(cfg)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}
