package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func noDotEnv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(noDotEnv(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Attempts != 6 {
		t.Fatalf("expected 6 attempts, got %d", cfg.Attempts)
	}
	if cfg.HintsAfterGameOver || cfg.Daily {
		t.Fatal("expected optional modes off by default")
	}
	if cfg.LogLevel != "info" || cfg.LogFile != "wordle.log" {
		t.Fatalf("unexpected log defaults %q %q", cfg.LogLevel, cfg.LogFile)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WORDLE_ATTEMPTS", "4")
	t.Setenv("WORDLE_SEED", "99")
	t.Setenv("WORDLE_HINTS_AFTER_GAME_OVER", "true")
	cfg, err := Load(noDotEnv(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Attempts != 4 || cfg.Seed != 99 || !cfg.HintsAfterGameOver {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

// unsetForTest removes key for the duration of the test.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDotEnvFile(t *testing.T) {
	unsetForTest(t, "DAILY_SALT")
	unsetForTest(t, "WORDLE_DAILY")
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("DAILY_SALT=from_file\nWORDLE_DAILY=true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DailySalt != "from_file" || !cfg.Daily {
		t.Fatalf("expected values from .env, got %+v", cfg)
	}
}

func TestEnvironmentWinsOverDotEnv(t *testing.T) {
	t.Setenv("DAILY_SALT", "from_env")
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("DAILY_SALT=from_file\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DailySalt != "from_env" {
		t.Fatalf("expected environment value, got %q", cfg.DailySalt)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("WORDLE_ATTEMPTS", "many")
	_, err := Load(noDotEnv(t))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", Config{Attempts: 6}, true},
		{"zero attempts", Config{Attempts: 0}, false},
		{"loopback", Config{Attempts: 6, DebugAddr: "127.0.0.1:6060"}, true},
		{"localhost", Config{Attempts: 6, DebugAddr: "localhost:6060"}, true},
		{"public", Config{Attempts: 6, DebugAddr: "0.0.0.0:6060"}, false},
		{"no port", Config{Attempts: 6, DebugAddr: "127.0.0.1"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if (err == nil) != c.ok {
				t.Fatalf("expected ok=%v, got %v", c.ok, err)
			}
		})
	}
}
