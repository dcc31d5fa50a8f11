package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment variables read at startup.
const (
	EnvLogLevel = "TAYRICS_LOG_LEVEL"

	DefaultLogLevel = log.InfoLevel
)

// Environment holds process-level options that exist before any window.
type Environment struct {
	LogLevel log.Level
}

// LoadEnvironment reads the optional .env files, then the process environment.
// A missing .env file is not an error; an unparsable one is.
func LoadEnvironment(files ...string) (Environment, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Environment{LogLevel: DefaultLogLevel}, err
	}
	return EnvironmentFrom(os.Getenv), nil
}

// EnvironmentFrom builds an Environment from a lookup function.
func EnvironmentFrom(getenv func(string) string) Environment {
	env := Environment{LogLevel: DefaultLogLevel}

	if raw := strings.TrimSpace(getenv(EnvLogLevel)); raw != "" {
		if level, err := log.ParseLevel(raw); err == nil {
			env.LogLevel = level
		} else {
			log.Warnf("ignoring %s=%q: %v", EnvLogLevel, raw, err)
		}
	}
	return env
}
