package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "WFLINT"

// ConfigPathEnv names the environment variable that points at a config file.
const ConfigPathEnv = EnvPrefix + "_CONFIG_PATH"

// LocalConfigFile is picked up from the working directory when present.
const LocalConfigFile = ".wflint.yaml"

// Loader handles configuration loading with Viper.
//
// Use [NewLoader] to create an instance. Defaults from [DefaultConfig] are
// registered with Viper so every key can be overridden from the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new [Loader] with defaults and environment binding.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())

	return &Loader{v: v}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("discovery.pattern", cfg.Discovery.Pattern)
	v.SetDefault("discovery.ignore", cfg.Discovery.Ignore)
	v.SetDefault("output.color", cfg.Output.Color)
	v.SetDefault("output.summary", cfg.Output.Summary)
	v.SetDefault("log.level", cfg.Log.Level)
}

// Load resolves the configuration file (if any) and returns the merged [Config].
//
// WFLINT_CONFIG_PATH wins over ./.wflint.yaml. A missing local file is not
// an error; a missing file named by WFLINT_CONFIG_PATH is.
func (l *Loader) Load() (*Config, error) {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return l.LoadFromFile(p)
	}

	if _, err := os.Stat(LocalConfigFile); err == nil {
		return l.LoadFromFile(LocalConfigFile)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", LocalConfigFile, err)
	}

	return l.unmarshal()
}

// LoadFromFile reads configuration from the given path. The format is taken
// from the file extension (yaml, yml, json, toml).
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// MustLoad loads configuration and panics on error.
func MustLoad() *Config {
	cfg, err := NewLoader().Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
