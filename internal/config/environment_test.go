package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestEnvironmentFrom(t *testing.T) {
	tests := []struct {
		value    string
		expected log.Level
	}{
		{"", DefaultLogLevel},
		{"debug", log.DebugLevel},
		{" WARN ", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"chatty", DefaultLogLevel},
	}

	for _, test := range tests {
		env := EnvironmentFrom(func(key string) string {
			if key == EnvLogLevel {
				return test.value
			}
			return ""
		})
		if env.LogLevel != test.expected {
			t.Errorf("EnvironmentFrom(%q) level = %v, expected %v", test.value, env.LogLevel, test.expected)
		}
	}
}

func TestLoadEnvironment_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvLogLevel+"=trace\n"), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)

	env, err := LoadEnvironment(path)
	if err != nil {
		t.Fatalf("LoadEnvironment failed: %v", err)
	}
	if env.LogLevel != log.TraceLevel {
		t.Errorf("Expected trace level from env file, got %v", env.LogLevel)
	}
}

func TestLoadEnvironment_MissingFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")

	env, err := LoadEnvironment(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("A missing env file should not fail: %v", err)
	}
	if env.LogLevel != log.ErrorLevel {
		t.Errorf("Expected error level from process environment, got %v", env.LogLevel)
	}
}

func TestConfigureLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)
	defer log.SetOutput(os.Stderr)

	var buf strings.Builder
	ConfigureLogging(Environment{LogLevel: log.WarnLevel}, &buf)

	log.WithField("module", "test").Info("hidden")
	log.WithField("module", "test").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Info entries should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "[test]") {
		t.Errorf("Expected warn entry with module field, got %q", out)
	}
}
