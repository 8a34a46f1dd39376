// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DATABASE_TYPE", "DATABASE_PATH", "DATABASE_URL", "WINNER_INTERVAL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabasePath != "cats.db" {
		t.Errorf("expected cats.db, got %s", cfg.DatabasePath)
	}
	if cfg.WinnerInterval != time.Minute {
		t.Errorf("expected 1m interval, got %s", cfg.WinnerInterval)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/votes.db")
	t.Setenv("WINNER_INTERVAL", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/votes.db" {
		t.Errorf("expected /tmp/votes.db, got %s", cfg.DatabasePath)
	}
	if cfg.WinnerInterval != 30*time.Second {
		t.Errorf("expected 30s interval, got %s", cfg.WinnerInterval)
	}
	level, _ := cfg.SlogLevel()
	if level != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", level)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-db", "test.db", "-winner-interval", "0"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "test.db" {
		t.Errorf("expected test.db, got %s", cfg.DatabasePath)
	}
	if cfg.WinnerInterval != 0 {
		t.Errorf("expected disabled interval, got %s", cfg.WinnerInterval)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad port env", env: map[string]string{"PORT": "abc"}},
		{name: "postgres without url", args: []string{"-t", "postgres"}},
		{name: "unknown database type", args: []string{"-t", "mysql"}},
		{name: "bad interval", args: []string{"-winner-interval", "soon"}},
		{name: "negative interval", args: []string{"-winner-interval", "-1m"}},
		{name: "bad log level", args: []string{"-log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseFlags_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://cats@localhost/cats")

	cfg, err := ParseFlags([]string{"-t", "postgres"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseURL != "postgres://cats@localhost/cats" {
		t.Errorf("expected DATABASE_URL to be used, got %s", cfg.DatabaseURL)
	}
}
