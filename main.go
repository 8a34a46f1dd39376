package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/cat-vote/cliparse"
	"github.com/danielhkuo/cat-vote/db"
	"github.com/danielhkuo/cat-vote/router"
	"github.com/danielhkuo/cat-vote/winner"
)

func main() {
	var err error

	// Load .env if present; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	dialect := db.Dialect(cfg.DatabaseType)
	source := cfg.DatabasePath
	if dialect == db.DialectPostgres {
		source = cfg.DatabaseURL
	}

	// Connect to the store
	dbConn, err := db.Open(dialect, source)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", dialect)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables) before any route is served
	if err := db.CreateSchema(dbConn, dialect); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", dialect)

	store := db.NewStore(dbConn, dialect)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Keep monthly_winners current
	go winner.NewRecorder(store, cfg.WinnerInterval).Run(ctx)

	server := http.Server{
		Handler:      router.NewRouter(store),
		Addr:         ":" + strconv.Itoa(cfg.Port),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
