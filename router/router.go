// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/cat-vote/db"
	"github.com/danielhkuo/cat-vote/handlers"
	"github.com/danielhkuo/cat-vote/middleware"
)

func NewRouter(store *db.Store) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	catHandler := handlers.NewCatHandler(store)
	voteHandler := handlers.NewVoteHandler(store)
	winnerHandler := handlers.NewWinnerHandler(store)
	adminHandler := handlers.NewAdminHandler(store)

	// Health checks
	mux.HandleFunc("GET /api/health", adminHandler.Health)
	mux.HandleFunc("GET /api/ready", middleware.WithLogging(adminHandler.Ready))

	// Cats and scores
	mux.HandleFunc("GET /api/cats", middleware.WithLogging(catHandler.ListCats))
	mux.HandleFunc("POST /api/cats", middleware.WithLogging(catHandler.SeedCats))

	// Voting
	mux.HandleFunc("POST /api/votes", middleware.WithLogging(voteHandler.SubmitVote))
	mux.HandleFunc("GET /api/winner", middleware.WithLogging(winnerHandler.GetCurrentWinner))

	// Maintenance
	mux.HandleFunc("POST /api/clear", middleware.WithLogging(adminHandler.ClearAll))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cat-vote API v1"))
	})

	return middleware.CORS(mux)
}
