// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Cat Vote API server.

Cat Vote shows cat pictures, takes upvotes and downvotes, and names a
winner for each calendar month.

# Starting the Server

With defaults (SQLite file cats.db, port 3000):

	go run .

Or with flags:

	go run . -p 8080 -db /var/lib/catvote/cats.db

A .env file in the working directory is loaded first. The server exits at
startup if the store cannot be opened or its schema created.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_PATH (-db): SQLite file (default: cats.db)
  - DATABASE_URL (-d): Postgres connection string
  - WINNER_INTERVAL (-winner-interval): monthly winner recording interval (default: 1m)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)

# Architecture

  - handlers: HTTP request handlers (cats, votes, winner, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, request validation
  - models: Request/response types
  - db: Connection, schema and queries
  - winner: Background recording of the monthly winner
  - client: Client data layer used by the catvote terminal app
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
