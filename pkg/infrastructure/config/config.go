// Package config reads the diagnostic settings of breadsim from the
// environment. None of them affect simulation results.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvLogLevel  = "BREADSIM_LOG_LEVEL"
	EnvLogFormat = "BREADSIM_LOG_FORMAT"
)

type Config struct {
	LogLevel  string
	LogFormat string
	// DotEnvLoaded reports whether a .env file was found
	DotEnvLoaded bool
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load(files ...string) Config {
	loaded := godotenv.Load(files...) == nil

	return Config{
		LogLevel:     getenvDefault(EnvLogLevel, "warn"),
		LogFormat:    getenvDefault(EnvLogFormat, "text"),
		DotEnvLoaded: loaded,
	}
}

func getenvDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
