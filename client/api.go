// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/danielhkuo/cat-vote/models"
)

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Message)
}

// API is a typed client for the cat vote HTTP API.
type API struct {
	baseURL string
	http    *http.Client
}

// NewAPI returns a client rooted at baseURL (e.g. http://localhost:3000/api).
// A nil httpClient uses http.DefaultClient.
func NewAPI(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (a *API) ListCats(ctx context.Context) ([]models.CatScore, error) {
	var cats []models.CatScore
	if err := a.do(ctx, http.MethodGet, "/cats", nil, &cats); err != nil {
		return nil, fmt.Errorf("list cats: %w", err)
	}
	return cats, nil
}

// CurrentWinner returns nil when no winner is recorded for this month.
func (a *API) CurrentWinner(ctx context.Context) (*models.Winner, error) {
	var w *models.Winner
	if err := a.do(ctx, http.MethodGet, "/winner", nil, &w); err != nil {
		return nil, fmt.Errorf("get winner: %w", err)
	}
	return w, nil
}

func (a *API) SubmitVote(ctx context.Context, catID int64, voteType string) error {
	req := models.SubmitVoteRequest{CatID: catID, VoteType: voteType}
	if err := a.do(ctx, http.MethodPost, "/votes", req, nil); err != nil {
		return fmt.Errorf("submit vote: %w", err)
	}
	return nil
}

// SeedCats returns how many of cats the server actually inserted.
func (a *API) SeedCats(ctx context.Context, cats []models.SeedCat) (int, error) {
	var resp models.SeedCatsResponse
	if err := a.do(ctx, http.MethodPost, "/cats", models.SeedCatsRequest{Cats: cats}, &resp); err != nil {
		return 0, fmt.Errorf("seed cats: %w", err)
	}
	return resp.Inserted, nil
}

func (a *API) Clear(ctx context.Context) error {
	if err := a.do(ctx, http.MethodPost, "/clear", nil, nil); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

func (a *API) Health(ctx context.Context) error {
	var resp models.HealthResponse
	if err := a.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	if resp.Status != "ok" {
		return fmt.Errorf("health: unexpected status %q", resp.Status)
	}
	return nil
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr models.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
