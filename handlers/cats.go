// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/cat-vote/db"
	"github.com/danielhkuo/cat-vote/middleware"
	"github.com/danielhkuo/cat-vote/models"
)

type CatHandler struct {
	store *db.Store
}

func NewCatHandler(store *db.Store) *CatHandler {
	return &CatHandler{store: store}
}

// ListCats handles GET /api/cats
// Returns every cat with its vote totals, most upvoted first
func (h *CatHandler) ListCats(w http.ResponseWriter, r *http.Request) {
	cats, err := h.store.ListCatScores(r.Context())
	if err != nil {
		slog.Error("failed to list cats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, cats)
}

// SeedCats handles POST /api/cats
// Inserts cats from the external image source; known external ids are skipped
func (h *CatHandler) SeedCats(w http.ResponseWriter, r *http.Request) {
	var req models.SeedCatsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	inserted, err := h.store.SeedCats(r.Context(), req.Cats)
	if err != nil {
		slog.Error("failed to seed cats", "error", err, "inserted", inserted)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("cats seeded", "received", len(req.Cats), "inserted", inserted)

	middleware.JSONResponse(w, http.StatusCreated, models.SeedCatsResponse{
		Success:  true,
		Inserted: inserted,
	})
}
