package config

// Config holds all w3play configuration.
type Config struct {
	Port      int    `json:"port"`
	APIURL    string `json:"api_url"`
	StaticDir string `json:"static_dir,omitempty"` // empty = embedded web assets
	Demo      bool   `json:"demo"`                // simulate API responses in the playground
	LogLevel  string `json:"log_level"`           // "debug" | "info" | "warn" | "error"
	LogFormat string `json:"log_format"`          // "text" | "json"

	// internal: config dir path used for Save()
	configDir string
}
