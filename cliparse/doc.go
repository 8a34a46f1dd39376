// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabasePath: SQLite file (default: cats.db)
  - DatabaseURL: PostgreSQL connection string (required for postgres)
  - WinnerInterval: how often the monthly winner is recorded (default: 1m, 0 disables)
  - LogLevel: debug, info, warn, error (default: info)

# CLI Flags

	-p                Server port
	-t                Database type
	-db               SQLite database file
	-d                Database URL
	-winner-interval  Winner recording interval
	-log-level        Log level

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_TYPE   → -t
	DATABASE_PATH   → -db
	DATABASE_URL    → -d
	WINNER_INTERVAL → -winner-interval
	LOG_LEVEL       → -log-level

CLI flags take precedence over environment variables. main loads a .env
file (godotenv) before parsing, so its values act as environment variables.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(db.Dialect(cfg.DatabaseType), cfg.DatabasePath)
	// ...
	handler := router.NewRouter(store)
*/
package cliparse
