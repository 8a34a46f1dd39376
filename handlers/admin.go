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

type AdminHandler struct {
	store *db.Store
}

func NewAdminHandler(store *db.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// ClearAll handles POST /api/clear
// Irreversibly removes every vote, winner and cat
func (h *AdminHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearAll(r.Context()); err != nil {
		slog.Error("failed to clear data", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Warn("all data cleared", "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.ClearResponse{
		Success: true,
		Message: "All data cleared",
	})
}

// Health handles GET /api/health
// Liveness only; never touches the store
func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// Ready handles GET /api/ready
// Reports whether the store answers a ping
func (h *AdminHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Error("store not ready", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
