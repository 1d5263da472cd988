package config

import "time"

// Environment variables read on top of config.json.
const (
	EnvConfigDir = "W3PLAY_CONFIG_DIR"
	EnvPort      = "PORT"
	EnvAPIURL    = "API_URL"
)

// DotEnvFile is read from the working directory, if present, before the
// environment overrides are applied. Variables already set win.
const DotEnvFile = ".env"

// Timeouts for the proxy server.
const (
	ReadHeaderTimeout = 10 * time.Second
	ShutdownTimeout   = 5 * time.Second
)
