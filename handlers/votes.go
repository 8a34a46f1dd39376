// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/cat-vote/db"
	"github.com/danielhkuo/cat-vote/middleware"
	"github.com/danielhkuo/cat-vote/models"
)

type VoteHandler struct {
	store *db.Store
}

func NewVoteHandler(store *db.Store) *VoteHandler {
	return &VoteHandler{store: store}
}

// SubmitVote handles POST /api/votes
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.store.InsertVote(r.Context(), req.CatID, req.VoteType)
	if errors.Is(err, db.ErrCatNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Cat not found")
		return
	}
	if err != nil {
		slog.Error("failed to insert vote", "error", err, "cat_id", req.CatID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote recorded", "cat_id", req.CatID, "vote_type", req.VoteType)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		Success: true,
		Message: "Vote recorded successfully",
	})
}
