package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/socfin/societyctl/internal/errors"
)

// Env variables recognized by the CLI. Environment always wins over the
// config file so scripts can point at another backend without editing it.
const (
	EnvAPIURL = "SOCIETYCTL_API_URL"
	EnvHome   = "SOCIETYCTL_HOME"
)

// DefaultAPIURL is used when neither the env nor the config file sets one
const DefaultAPIURL = "http://localhost:8000"

// ConfigFileName is the YAML config file inside the societyctl home directory
const ConfigFileName = "config.yaml"

// Config holds client configuration
type Config struct {
	// APIURL is the backend base URL. The /api prefix is appended by the client.
	APIURL string `yaml:"api_url"`

	// Home is the directory holding credentials, society selection, and config
	Home string `yaml:"-"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFormat is the log output format (text, json)
	LogFormat string `yaml:"log_format"`
}

// DefaultHome returns the default societyctl home directory (~/.societyctl)
func DefaultHome() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".societyctl"
	}
	return filepath.Join(userHome, ".societyctl")
}

// Load reads configuration from <home>/config.yaml and applies env overrides.
// A missing config file is not an error; defaults apply.
func Load(home string) (*Config, error) {
	if home == "" {
		home = DefaultHome()
	}

	cfg := &Config{
		APIURL:    DefaultAPIURL,
		Home:      home,
		LogLevel:  "warn",
		LogFormat: "text",
	}

	path := filepath.Join(home, ConfigFileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewConfigInvalidError(path, err)
		}
		cfg.Home = home
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read config file", err)
	}

	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.APIURL = url
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	return cfg, nil
}

// Save writes the configuration to <home>/config.yaml
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Home, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create home directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to marshal config", err)
	}

	path := filepath.Join(c.Home, ConfigFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to write config file", err)
	}
	return nil
}

// CredentialsPath returns the path of the persisted session credentials
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.Home, "credentials.json")
}

// SocietyPath returns the path of the persisted society selection
func (c *Config) SocietyPath() string {
	return filepath.Join(c.Home, "society.json")
}
