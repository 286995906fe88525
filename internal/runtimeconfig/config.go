package runtimeconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	ModeProduction = "production"
	ModeTest       = "test"
)

const (
	SessionStoreCookie     = "cookie"
	SessionStoreFilesystem = "filesystem"
)

const (
	LoggingProviderGoLogger = "gologger"
	LoggingProviderNone     = "none"
)

var ErrModeInvalid = errors.New("filecms config: mode must be production or test")
var ErrServerAddrRequired = errors.New("filecms config: server address is required")
var ErrDataDirRequired = errors.New("filecms config: storage data directory is required")
var ErrCredentialsPathRequired = errors.New("filecms config: credentials path is required")
var ErrSessionNameRequired = errors.New("filecms config: session cookie name is required")
var ErrSessionStoreUnknown = errors.New("filecms config: session store is invalid")
var ErrSessionDirRequired = errors.New("filecms config: session directory is required for the filesystem store")
var ErrSessionHashKeyInvalid = errors.New("filecms config: session hash key must be at least 32 bytes")
var ErrSessionBlockKeyInvalid = errors.New("filecms config: session block key must be 16, 24 or 32 bytes")
var ErrLoggingProviderRequired = errors.New("filecms config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("filecms config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("filecms config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("filecms config: logging format is invalid")

// Config aggregates every runtime setting of the file CMS.
type Config struct {
	// Mode selects between the production and test document/credential
	// locations.
	Mode        string            `mapstructure:"mode"`
	Server      ServerConfig      `mapstructure:"server"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Session     SessionConfig     `mapstructure:"session"`
	Markdown    MarkdownConfig    `mapstructure:"markdown"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StorageConfig locates the document directory for each mode.
type StorageConfig struct {
	DataDir     string `mapstructure:"data_dir"`
	TestDataDir string `mapstructure:"test_data_dir"`
}

// CredentialsConfig locates the YAML credential file for each mode.
type CredentialsConfig struct {
	Path     string `mapstructure:"path"`
	TestPath string `mapstructure:"test_path"`
}

// SessionConfig controls the session cookie transport.
type SessionConfig struct {
	Name string `mapstructure:"name"`
	// Store is either "cookie" or "filesystem".
	Store string `mapstructure:"store"`
	// Dir is required by the filesystem store and ignored by the cookie store.
	Dir      string `mapstructure:"dir"`
	HashKey  string `mapstructure:"hash_key"`
	BlockKey string `mapstructure:"block_key"`
	// MaxAge in seconds; 0 keeps the cookie for the browser session.
	MaxAge int  `mapstructure:"max_age"`
	Secure bool `mapstructure:"secure"`
}

// MarkdownConfig mirrors interfaces.ParseOptions.
type MarkdownConfig struct {
	Extensions    []string `mapstructure:"extensions"`
	HardWraps     bool     `mapstructure:"hard_wraps"`
	Unsafe        bool     `mapstructure:"unsafe"`
	AutoHeadingID bool     `mapstructure:"auto_heading_id"`
	// FrontMatter strips a leading YAML/TOML block before conversion.
	FrontMatter bool `mapstructure:"front_matter"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// DefaultConfig returns the layout used by a checkout of the repository:
// documents under data/, credentials in users.yml and their test twins
// under test/.
func DefaultConfig() Config {
	return Config{
		Mode: ModeProduction,
		Server: ServerConfig{
			Addr:            ":4567",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			DataDir:     "data",
			TestDataDir: filepath.Join("test", "data"),
		},
		Credentials: CredentialsConfig{
			Path:     "users.yml",
			TestPath: filepath.Join("test", "users.yml"),
		},
		Session: SessionConfig{
			Name:  "filecms_session",
			Store: SessionStoreCookie,
		},
		Logging: LoggingConfig{
			Provider: LoggingProviderGoLogger,
			Level:    "info",
			Format:   "console",
		},
	}
}

// IsTest reports whether the test locations are active.
func (cfg Config) IsTest() bool {
	return normalize(cfg.Mode) == ModeTest
}

// DataDir resolves the document directory for the active mode.
func (cfg Config) DataDir() string {
	if cfg.IsTest() {
		return cfg.Storage.TestDataDir
	}
	return cfg.Storage.DataDir
}

// CredentialsPath resolves the credential file for the active mode.
func (cfg Config) CredentialsPath() string {
	if cfg.IsTest() {
		return cfg.Credentials.TestPath
	}
	return cfg.Credentials.Path
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch normalize(cfg.Mode) {
	case ModeProduction, ModeTest:
	default:
		return fmt.Errorf("%w: %q", ErrModeInvalid, cfg.Mode)
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return ErrServerAddrRequired
	}
	if strings.TrimSpace(cfg.DataDir()) == "" {
		return ErrDataDirRequired
	}
	if strings.TrimSpace(cfg.CredentialsPath()) == "" {
		return ErrCredentialsPathRequired
	}
	if err := cfg.Session.validate(); err != nil {
		return err
	}
	return cfg.Logging.validate()
}

func (s SessionConfig) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrSessionNameRequired
	}
	switch normalize(s.Store) {
	case SessionStoreCookie, "":
	case SessionStoreFilesystem:
		if strings.TrimSpace(s.Dir) == "" {
			return ErrSessionDirRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrSessionStoreUnknown, s.Store)
	}
	if s.HashKey != "" && len(s.HashKey) < 32 {
		return ErrSessionHashKeyInvalid
	}
	switch len(s.BlockKey) {
	case 0, 16, 24, 32:
	default:
		return ErrSessionBlockKeyInvalid
	}
	return nil
}

func (l LoggingConfig) validate() error {
	provider := normalize(l.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if provider != LoggingProviderGoLogger && provider != LoggingProviderNone {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(l.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == LoggingProviderGoLogger {
		if format := strings.TrimSpace(l.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
