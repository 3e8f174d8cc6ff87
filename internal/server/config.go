package server

import (
	"os"

	"github.com/example/adytum/internal/mentor"
)

// Config represents the configuration for the HTTP server
type Config struct {
	// Port the API listens on
	Port string
	// Origins allowed to call the API (the web client)
	AllowOrigins []string
	// Gemini model the mentor speaks through
	GeminiModel string
}

// DefaultConfig returns the default server configuration
func DefaultConfig() *Config {
	return &Config{
		Port: "8080",
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		GeminiModel: mentor.DefaultModel,
	}
}

// FromEnv returns the default configuration overridden by environment
// variables
func FromEnv() *Config {
	config := DefaultConfig()
	if port := os.Getenv("PORT"); port != "" {
		config.Port = port
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.GeminiModel = model
	}
	return config
}
