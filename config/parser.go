// Package config contains the backupctl configuration file.
package config

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/vaultline/backupsdk/internal/hujsonx"
)

// ConfigVersion is the current version of the configuration file.
const ConfigVersion = 1

// DefaultPath returns the default config file path inside the given home directory.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "backupctl", "config.hujson")
}

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	c.path = path
	return c, err
}

// ParseConfig returns config from human JSON bytes, which may contain
// comments and trailing commas.
func ParseConfig(b []byte) (*Config, error) {
	var c Config

	if err := hujsonx.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}

	return &c, nil
}

// Config is the content of the backupctl configuration file. Every field
// is OPTIONAL because flags and environment variables override it.
type Config struct {
	Comment string `json:"_,omitempty"`
	Version int64  `json:"_version"`

	// Server is the server address (e.g., https://backup.example.com/).
	Server string `json:"server,omitempty"`

	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	Advanced Advanced `json:"advanced"`

	mutex sync.Mutex
	path  string
}

// Advanced settings
type Advanced struct {
	// LogBody logs the scrubbed request and response bodies.
	LogBody bool `json:"log_body"`

	// UserAgent overrides the default user-agent.
	UserAgent string `json:"user_agent,omitempty"`
}

// New returns a new config that [*Config.Write] saves to path.
func New(path string) *Config {
	return &Config{Version: ConfigVersion, path: path}
}

// Path returns the path of the config file.
func (c *Config) Path() string {
	return c.path
}

// Write the config file in json to the path
func (c *Config) Write() error {
	c.Lock()
	defer c.Unlock()
	if c.path == "" {
		return errors.New("config file path is empty")
	}
	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing config JSON")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return errors.Wrap(err, "creating config dir")
	}
	// the file contains a password
	if err := os.WriteFile(c.path, append(configJSON, '\n'), 0600); err != nil {
		return errors.Wrap(err, "writing config JSON")
	}
	return nil
}

// Lock acquires the write mutex
func (c *Config) Lock() {
	c.mutex.Lock()
}

// Unlock releases the write mutex
func (c *Config) Unlock() {
	c.mutex.Unlock()
}

// Validate the config file
func (c *Config) Validate() error {
	if c.Version > ConfigVersion {
		return errors.Errorf("unsupported config version: %d", c.Version)
	}
	if c.Server != "" {
		URL, err := url.Parse(c.Server)
		if err != nil {
			return errors.Wrap(err, "invalid server")
		}
		if URL.Scheme != "http" && URL.Scheme != "https" {
			return errors.Errorf("invalid server scheme: %q", URL.Scheme)
		}
	}
	return nil
}
