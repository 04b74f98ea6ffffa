package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Ingest   IngestConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// IngestConfig holds statement-import settings.
type IngestConfig struct {
	FormatsPath string `mapstructure:"formats_path"`
	BrowseDir   string `mapstructure:"browse_dir"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string
}

// Load reads configuration from file and env. Env var overrides use prefix
// BSWIZARD_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "bswizard", "bswizard.db"))
	v.SetDefault("ingest.formats_path", filepath.Join(home, ".config", "bswizard", "formats.toml"))
	v.SetDefault("ingest.browse_dir", home)
	v.SetDefault("ui.date_format", "02/01/2006")
	v.SetDefault("ui.timezone", "Local")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BSWIZARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "bswizard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BSWIZARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
