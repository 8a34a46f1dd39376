// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Cat Vote API.

# Handler Types

Each handler is a struct holding the store:

  - CatHandler: Cat listing with vote totals, seeding from the image source
  - VoteHandler: Upvotes and downvotes
  - WinnerHandler: Current month's recorded winner
  - AdminHandler: Clear, liveness and readiness

Handlers are created via constructor functions that accept *db.Store:

	catHandler := handlers.NewCatHandler(store)

# Errors

Request validation failures answer 400 with the validation message. A vote
for a cat that does not exist answers 404 "Cat not found". Storage failures
are logged and answer 500 "Database error" with no further detail.

# Scores

Vote totals are never stored; ListCats computes them on every read, most
upvoted first with ties broken by id.
*/
package handlers
