package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FILECMS_MODE=test or
// FILECMS_STORAGE_DATA_DIR=/srv/docs.
const EnvPrefix = "FILECMS"

// Load builds a Config from defaults, an optional config file and the
// environment, in increasing order of precedence. An empty path looks for
// filecms.yaml in the working directory and tolerates its absence.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("filecms")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("filecms config: read %s: %w", describe(path), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("filecms config: decode: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("mode", cfg.Mode)
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("storage.data_dir", cfg.Storage.DataDir)
	v.SetDefault("storage.test_data_dir", cfg.Storage.TestDataDir)
	v.SetDefault("credentials.path", cfg.Credentials.Path)
	v.SetDefault("credentials.test_path", cfg.Credentials.TestPath)
	v.SetDefault("session.name", cfg.Session.Name)
	v.SetDefault("session.store", cfg.Session.Store)
	v.SetDefault("session.dir", cfg.Session.Dir)
	v.SetDefault("session.hash_key", cfg.Session.HashKey)
	v.SetDefault("session.block_key", cfg.Session.BlockKey)
	v.SetDefault("session.max_age", cfg.Session.MaxAge)
	v.SetDefault("session.secure", cfg.Session.Secure)
	v.SetDefault("markdown.extensions", cfg.Markdown.Extensions)
	v.SetDefault("markdown.hard_wraps", cfg.Markdown.HardWraps)
	v.SetDefault("markdown.unsafe", cfg.Markdown.Unsafe)
	v.SetDefault("markdown.auto_heading_id", cfg.Markdown.AutoHeadingID)
	v.SetDefault("markdown.front_matter", cfg.Markdown.FrontMatter)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)
}

func describe(path string) string {
	if path == "" {
		return "filecms.yaml"
	}
	return path
}
