// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the Cat Vote API.

# Request Types

Each endpoint that accepts a body has one request type. Fields carry
validate tags checked by middleware.ParseJSONBody before any handler logic:

  - SubmitVoteRequest: cat_id (> 0) and vote_type (upvote or downvote)
  - SeedCatsRequest: a non-empty list of SeedCat{id, url}

Unknown fields are rejected.

# Response Types

  - SubmitVoteResponse, ClearResponse: success flag and message
  - SeedCatsResponse: success flag and number of cats actually inserted
  - HealthResponse: {"status": "ok"}
  - ErrorResponse: HTTP status text and a short message

# Domain Types

  - Cat: stored cat with optional external_id
  - CatScore: cat plus upvote and downvote totals (derived, never stored)
  - Winner: the leading cat for the current month

# Vote Types

	VoteUp   = "upvote"
	VoteDown = "downvote"
*/
package models
