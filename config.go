package cms

import "github.com/goliatone/go-filecms/internal/runtimeconfig"

const (
	ModeProduction = runtimeconfig.ModeProduction
	ModeTest       = runtimeconfig.ModeTest

	LoggingProviderGoLogger = runtimeconfig.LoggingProviderGoLogger
	LoggingProviderNone     = runtimeconfig.LoggingProviderNone
)

var (
	ErrModeInvalid             = runtimeconfig.ErrModeInvalid
	ErrServerAddrRequired      = runtimeconfig.ErrServerAddrRequired
	ErrDataDirRequired         = runtimeconfig.ErrDataDirRequired
	ErrCredentialsPathRequired = runtimeconfig.ErrCredentialsPathRequired
	ErrSessionNameRequired     = runtimeconfig.ErrSessionNameRequired
	ErrSessionStoreUnknown     = runtimeconfig.ErrSessionStoreUnknown
	ErrSessionDirRequired      = runtimeconfig.ErrSessionDirRequired
	ErrSessionHashKeyInvalid   = runtimeconfig.ErrSessionHashKeyInvalid
	ErrSessionBlockKeyInvalid  = runtimeconfig.ErrSessionBlockKeyInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	ServerConfig      = runtimeconfig.ServerConfig
	StorageConfig     = runtimeconfig.StorageConfig
	CredentialsConfig = runtimeconfig.CredentialsConfig
	SessionConfig     = runtimeconfig.SessionConfig
	MarkdownConfig    = runtimeconfig.MarkdownConfig
	LoggingConfig     = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the repository layout defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads configuration from path (optional), FILECMS_* environment
// variables and defaults.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
