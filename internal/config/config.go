// Package config loads environment configuration and owns the process
// logger. A .env file is honored in development; real deployments set
// the variables directly.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)
	logg.SetLevel(parseLevel(os.Getenv("LOG_LEVEL")))
}

// Load reads a .env file if one exists. Missing files are not an error.
func Load() {
	_ = godotenv.Load()
	logg.SetLevel(parseLevel(os.Getenv("LOG_LEVEL")))
}

// Logger returns the shared process logger.
func Logger() *logrus.Logger {
	return logg
}

// GetEnv returns the value of key or fallback when unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
