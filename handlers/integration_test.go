// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/cat-vote/models"
	"github.com/danielhkuo/cat-vote/testutil"
	"github.com/danielhkuo/cat-vote/winner"
)

// TestFullVotingWorkflow tests the complete end-to-end workflow:
// 1. Seed a cat
// 2. List it with no votes
// 3. Upvote it
// 4. See the new totals
// 5. Record and read the monthly winner
// 6. Clear everything
func TestFullVotingWorkflow(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)

	catHandler := NewCatHandler(store)
	voteHandler := NewVoteHandler(store)
	winnerHandler := NewWinnerHandler(store)
	adminHandler := NewAdminHandler(store)

	// Step 1: Seed
	w := httptest.NewRecorder()
	catHandler.SeedCats(w, testutil.MakeRequest("POST", "/api/cats", models.SeedCatsRequest{
		Cats: []models.SeedCat{{ID: "c1", URL: "http://x/1.jpg"}},
	}, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Seed failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 2: List
	w = httptest.NewRecorder()
	catHandler.ListCats(w, testutil.MakeRequest("GET", "/api/cats", nil, nil))
	var cats []models.CatScore
	testutil.AssertJSON(t, w, &cats)

	expected := models.CatScore{ID: 1, ImageURL: "http://x/1.jpg", Upvotes: 0, Downvotes: 0}
	if len(cats) != 1 || cats[0] != expected {
		t.Fatalf("Step 2 - Expected [%+v], got %+v", expected, cats)
	}

	// Step 3: Upvote
	w = httptest.NewRecorder()
	voteHandler.SubmitVote(w, testutil.MakeRequest("POST", "/api/votes",
		models.SubmitVoteRequest{CatID: 1, VoteType: models.VoteUp}, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 3 - Vote failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 4: Totals
	w = httptest.NewRecorder()
	catHandler.ListCats(w, testutil.MakeRequest("GET", "/api/cats", nil, nil))
	cats = nil
	testutil.AssertJSON(t, w, &cats)
	if len(cats) != 1 || cats[0].Upvotes != 1 || cats[0].Downvotes != 0 {
		t.Fatalf("Step 4 - Expected 1/0, got %+v", cats)
	}

	// Step 5: Winner
	w = httptest.NewRecorder()
	winnerHandler.GetCurrentWinner(w, testutil.MakeRequest("GET", "/api/winner", nil, nil))
	if body := w.Body.String(); body != "null\n" {
		t.Fatalf("Step 5 - Expected null before recording, got %s", body)
	}

	if _, err := winner.NewRecorder(store, 0).RecordCurrent(context.Background()); err != nil {
		t.Fatalf("Step 5 - RecordCurrent failed: %v", err)
	}

	w = httptest.NewRecorder()
	winnerHandler.GetCurrentWinner(w, testutil.MakeRequest("GET", "/api/winner", nil, nil))
	var win models.Winner
	testutil.AssertJSON(t, w, &win)
	if win.ID != 1 || win.UpvoteCount != 1 {
		t.Fatalf("Step 5 - Expected cat 1 with 1 upvote, got %+v", win)
	}

	// Step 6: Clear
	w = httptest.NewRecorder()
	adminHandler.ClearAll(w, testutil.MakeRequest("POST", "/api/clear", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	catHandler.ListCats(w, testutil.MakeRequest("GET", "/api/cats", nil, nil))
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("Step 6 - Expected empty list, got %s", body)
	}
}
