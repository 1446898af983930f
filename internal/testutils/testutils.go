package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitlance/web/internal/config"
	"github.com/bitlance/web/internal/logging"
	"github.com/joho/godotenv"
)

// SessionSecret signs the session cookies created in tests.
const SessionSecret = "a-very-secret-key-for-testing-!"

// ConfigForTests loads the .env.test file, applies overrides, and returns a
// valid config.Provider.
func ConfigForTests(t *testing.T, overrides map[string]string) config.Provider {
	t.Helper()

	// Find the project root by looking for go.mod to reliably locate .env.test.
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for key, value := range overrides {
		env[key] = value
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	logging.New()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}
	return cfg
}
