// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/cat-vote/db"
	"github.com/danielhkuo/cat-vote/middleware"
)

type WinnerHandler struct {
	store *db.Store
}

func NewWinnerHandler(store *db.Store) *WinnerHandler {
	return &WinnerHandler{store: store}
}

// GetCurrentWinner handles GET /api/winner
// Returns the recorded winner for the current month, or null
func (h *WinnerHandler) GetCurrentWinner(w http.ResponseWriter, r *http.Request) {
	winner, err := h.store.CurrentWinner(r.Context())
	if err != nil {
		slog.Error("failed to query winner", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, winner)
}
