package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI settings. Environment variables seed the flag defaults.
type Config struct {
	ServerURL string `env:"IOTA_SERVER" envDefault:"http://localhost:8080"`
	Token     string `env:"IOTA_TOKEN"`
	TokenFile string `env:"IOTA_TOKEN_FILE"`
	Output    string `env:"IOTA_OUTPUT" envDefault:"text"`
	Verbose   bool   `env:"IOTA_VERBOSE"`
}

// LoadConfig reads the environment, defaulting the token file to
// ~/.iota/token
func LoadConfig() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if c.TokenFile == "" {
		c.TokenFile = defaultTokenFile()
	}
	return c, nil
}

// Validate checks settings that flags may have changed
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q: use text or json", c.Output)
	}
	if c.ServerURL == "" {
		return errors.New("server URL is required")
	}
	return nil
}

// LoadToken loads the game token from file if not already set
func (c *Config) LoadToken() error {
	if c.Token != "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read token file: %w", err)
	}

	c.Token = strings.TrimSpace(string(data))
	return nil
}

// SaveToken records the token and writes it to the token file, readable
// only by the current user
func (c *Config) SaveToken(token string) error {
	c.Token = token

	if err := os.MkdirAll(filepath.Dir(c.TokenFile), 0o700); err != nil {
		return err
	}
	return os.WriteFile(c.TokenFile, []byte(token+"\n"), 0o600)
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".iota", "token")
	}
	return filepath.Join(home, ".iota", "token")
}
