// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danielhkuo/cat-vote/models"
)

// DefaultCatSourceURL is TheCatAPI's image search endpoint.
const DefaultCatSourceURL = "https://api.thecatapi.com/v1/images/search"

// ErrUpstream wraps every failure of the external image source.
var ErrUpstream = errors.New("cat image source unavailable")

// CatSource fetches cat images from an external service that answers with
// [{"id": ..., "url": ...}].
type CatSource struct {
	url    string
	apiKey string
	limit  int
	http   *http.Client
}

// NewCatSource builds a source for endpoint. An empty endpoint uses
// DefaultCatSourceURL; limit < 1 means 10.
func NewCatSource(endpoint, apiKey string, limit int, httpClient *http.Client) *CatSource {
	if endpoint == "" {
		endpoint = DefaultCatSourceURL
	}
	if limit < 1 {
		limit = 10
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CatSource{url: endpoint, apiKey: apiKey, limit: limit, http: httpClient}
}

// Fetch returns up to limit cats. Records without an id or url are dropped.
func (s *CatSource) Fetch(ctx context.Context) ([]models.SeedCat, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: bad url: %v", ErrUpstream, err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(s.limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if s.apiKey != "" {
		req.Header.Set("x-api-key", s.apiKey)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	// The source sends extra fields (width, height, breeds); only id and url matter.
	var records []struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}

	cats := make([]models.SeedCat, 0, len(records))
	for _, r := range records {
		if r.ID == "" || r.URL == "" {
			continue
		}
		cats = append(cats, models.SeedCat{ID: r.ID, URL: r.URL})
	}
	return cats, nil
}
