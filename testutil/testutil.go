// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/cat-vote/db"
)

// TestNow is the fixed clock used by stores built with SetupTestStore.
var TestNow = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
// It is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DialectSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a store over a fresh database, with its clock
// pinned to TestNow.
func SetupTestStore(t *testing.T) (*db.Store, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	store := db.NewStore(conn, db.DialectSQLite)
	store.SetClock(func() time.Time { return TestNow })
	return store, conn
}

// CreateTestCat inserts a cat and returns its generated ID
func CreateTestCat(t *testing.T, conn *sql.DB, externalID, imageURL string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO cats (image_url, external_id, created_at)
		VALUES (?, ?, ?)
	`, imageURL, externalID, TestNow.Format(db.TimeLayout))
	if err != nil {
		t.Fatalf("Failed to create test cat: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test cat id: %v", err)
	}
	return id
}

// CreateTestVote inserts a vote for catID cast at the given time
func CreateTestVote(t *testing.T, conn *sql.DB, catID int64, voteType string, at time.Time) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO votes (cat_id, vote_type, created_at)
		VALUES (?, ?, ?)
	`, catID, voteType, at.UTC().Format(db.TimeLayout))
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CreateTestWinner inserts a monthly_winners row directly
func CreateTestWinner(t *testing.T, conn *sql.DB, catID int64, monthYear string, upvotes int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO monthly_winners (cat_id, month_year, upvote_count, created_at)
		VALUES (?, ?, ?, ?)
	`, catID, monthYear, upvotes, TestNow.Format(db.TimeLayout))
	if err != nil {
		t.Fatalf("Failed to create test winner: %v", err)
	}
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
