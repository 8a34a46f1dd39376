package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           int
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	WinnerInterval time.Duration
	LogLevel       string
}

// ParseFlags validates flags, falling back to environment variables and
// then to defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var interval string

	fs := flag.NewFlagSet("cat-vote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.DatabasePath, "db", "", "SQLite database file")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres only)")
	fs.StringVar(&interval, "winner-interval", "", "How often to record the monthly winner (0 disables)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	switch cfg.DatabaseType {
	case "sqlite":
		if cfg.DatabasePath == "" {
			cfg.DatabasePath = os.Getenv("DATABASE_PATH")
		}
		if cfg.DatabasePath == "" {
			cfg.DatabasePath = "cats.db"
		}
	case "postgres":
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if interval == "" {
		interval = os.Getenv("WINNER_INTERVAL")
	}
	if interval == "" {
		cfg.WinnerInterval = time.Minute
	} else {
		d, err := time.ParseDuration(interval)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid winner interval %q", interval)
		}
		cfg.WinnerInterval = d
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
