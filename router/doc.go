// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Cat Vote API.

# Route Registration

NewRouter returns the configured handler, wrapped in CORS:

	handler := router.NewRouter(store)

# Endpoints

Health:

	GET /api/health - Liveness, never touches the store
	GET /api/ready  - Store ping

Cats:

	GET  /api/cats - Cats with upvote/downvote totals
	POST /api/cats - Seed cats from the image source

Voting:

	POST /api/votes  - Cast an upvote or downvote
	GET  /api/winner - Current month's recorded winner, or null

Maintenance:

	POST /api/clear - Delete all votes, winners and cats

# Handler Initialization

The router creates handler instances with the store injected:

	catHandler := handlers.NewCatHandler(store)
	voteHandler := handlers.NewVoteHandler(store)
	winnerHandler := handlers.NewWinnerHandler(store)
	adminHandler := handlers.NewAdminHandler(store)
*/
package router
