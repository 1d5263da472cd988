package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = 8080
	defaultAPIURL    = "http://localhost:8000"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	configFile = "config.json"
)

// Load reads config from dir (or creates defaults). dir defaults to ~/.w3play.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".w3play")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	return cfg, nil
}

// ApplyEnv overrides Port and APIURL from PORT and API_URL when set.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPort); v != "" {
		if err := c.SetPort(v); err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
	}
	if v := getenv(EnvAPIURL); v != "" {
		if err := c.SetAPIURL(v); err != nil {
			return fmt.Errorf("%s: %w", EnvAPIURL, err)
		}
	}
	return nil
}

// LoadDotEnv exports the variables in path into the process environment
// without overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// SetPort parses and stores a TCP port.
func (c *Config) SetPort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid port %q", s)
	}
	c.Port = p
	return nil
}

// SetAPIURL stores the upstream calldata API origin. Only http and https are accepted.
func (c *Config) SetAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid API URL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API URL %q: want http(s)://host[:port]", raw)
	}
	c.APIURL = raw
	return nil
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		Port:      defaultPort,
		APIURL:    defaultAPIURL,
		Demo:      true,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		configDir: dir,
	}
}
