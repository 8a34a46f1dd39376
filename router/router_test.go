// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/cat-vote/middleware"
	"github.com/danielhkuo/cat-vote/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	store, conn := testutil.SetupTestStore(t)
	mux := NewRouter(store)

	// Health must answer even with the database gone
	conn.Close()

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if body := strings.TrimSpace(w.Body.String()); body != `{"status":"ok"}` {
		t.Errorf(`Expected body {"status":"ok"}, got '%s'`, body)
	}
}

func TestRootEndpoint(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	mux := NewRouter(store)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "cat-vote API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	mux := NewRouter(store)

	testCases := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{"GET", "/api/health", http.StatusOK},
		{"GET", "/api/ready", http.StatusOK},
		{"GET", "/api/cats", http.StatusOK},
		{"POST", "/api/cats", http.StatusBadRequest},
		{"POST", "/api/votes", http.StatusBadRequest},
		{"GET", "/api/winner", http.StatusOK},
		{"POST", "/api/clear", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d. Body: %s", tc.expectedStatus, tc.method, tc.path, w.Code, w.Body.String())
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	mux := NewRouter(store)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/api/health"},
		{"DELETE", "/api/cats"},
		{"GET", "/api/votes"},
		{"POST", "/api/winner"},
		{"GET", "/api/clear"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	mux := NewRouter(store)

	req := httptest.NewRequest("GET", "/api/dogs", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	mux := NewRouter(store)

	req := httptest.NewRequest("OPTIONS", "/api/votes", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8081" {
		t.Errorf("Expected origin to be echoed, got %q", got)
	}
}

func TestRequestIDOnLoggedRoutes(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	mux := NewRouter(store)

	req := httptest.NewRequest("GET", "/api/cats", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.RequestIDHeader); got != "trace-123" {
		t.Errorf("Expected request id to be echoed, got %q", got)
	}
}
