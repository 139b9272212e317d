package config

import "os"

// Config carries every connection parameter the backends need. It is loaded
// once at process start and passed by reference; nothing here mutates after
// Load returns.
type Config struct {
	DatabaseURL    string
	StorageDir     string
	StorageBaseURL string
	SessionSecret  string
	FrontendURL    string
	Port           string
	LogLevel       string
}

// Load reads the configuration from the environment. Defaults match local
// development; DATABASE_URL has no default because IsConfigured keys off it.
func Load() *Config {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		StorageDir:     os.Getenv("STORAGE_DIR"),
		StorageBaseURL: os.Getenv("STORAGE_BASE_URL"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		Port:           os.Getenv("PORT"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = "./uploads"
	}
	if cfg.StorageBaseURL == "" {
		cfg.StorageBaseURL = "/uploads"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:3000"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

// IsConfigured reports whether the minimal connection parameters are
// present. It is safe to call before anything else and never fails; when it
// returns false every backend accessor degrades instead of dialing.
func (c *Config) IsConfigured() bool {
	return c.DatabaseURL != ""
}
