// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/cat-vote/models"
)

// ErrCatNotFound is returned when a vote references a cat that does not exist.
var ErrCatNotFound = errors.New("cat not found")

// TimeLayout is how timestamps are written to every table. It matches
// SQLite's CURRENT_TIMESTAMP so stored values compare as text.
const TimeLayout = "2006-01-02 15:04:05"

// PeriodLayout formats the month_year key of monthly_winners.
const PeriodLayout = "2006-01"

// Store wraps the database handle with every query the API needs.
type Store struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect, now: time.Now}
}

// SetClock replaces the time source used for vote timestamps and the
// current period.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the store's current time in UTC.
func (s *Store) Now() time.Time {
	return s.now().UTC()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// rebind rewrites ? placeholders to $n for Postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ListCatScores returns every cat with its vote totals, most upvoted first.
// Ties fall back to id order so results are reproducible.
func (s *Store) ListCatScores(ctx context.Context) ([]models.CatScore, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.image_url,
		       COALESCE(SUM(CASE WHEN v.vote_type = 'upvote' THEN 1 ELSE 0 END), 0) AS upvotes,
		       COALESCE(SUM(CASE WHEN v.vote_type = 'downvote' THEN 1 ELSE 0 END), 0) AS downvotes
		FROM cats c
		LEFT JOIN votes v ON v.cat_id = c.id
		GROUP BY c.id, c.image_url
		ORDER BY upvotes DESC, c.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cat scores: %w", err)
	}
	defer rows.Close()

	cats := []models.CatScore{}
	for rows.Next() {
		var c models.CatScore
		if err := rows.Scan(&c.ID, &c.ImageURL, &c.Upvotes, &c.Downvotes); err != nil {
			return nil, fmt.Errorf("failed to scan cat score: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cat scores: %w", err)
	}

	return cats, nil
}

func (s *Store) CountCats(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cats`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cats: %w", err)
	}
	return n, nil
}

// InsertVote records one vote. A cat_id with no matching cat fails on the
// foreign key and returns ErrCatNotFound.
func (s *Store) InsertVote(ctx context.Context, catID int64, voteType string) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO votes (cat_id, vote_type, created_at)
		VALUES (?, ?, ?)
	`), catID, voteType, s.Now().Format(TimeLayout))
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCatNotFound
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// SeedCats inserts cats keyed by their external id, skipping ones already
// present. Each row is independent: a failed insert is logged and the batch
// continues. Returns how many rows were actually created, and an error only
// when every row failed.
func (s *Store) SeedCats(ctx context.Context, cats []models.SeedCat) (int, error) {
	query := s.rebind(`
		INSERT INTO cats (image_url, external_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (external_id) DO NOTHING
	`)
	now := s.Now().Format(TimeLayout)

	var (
		inserted int
		failed   int
		lastErr  error
	)
	for _, cat := range cats {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		res, err := s.db.ExecContext(ctx, query, cat.URL, cat.ID, now)
		if err != nil {
			slog.Warn("failed to seed cat", "external_id", cat.ID, "error", err)
			failed++
			lastErr = err
			continue
		}
		n, err := res.RowsAffected()
		if err != nil {
			slog.Warn("failed to read seed result", "external_id", cat.ID, "error", err)
			failed++
			lastErr = err
			continue
		}
		inserted += int(n)
	}

	if len(cats) > 0 && failed == len(cats) {
		return 0, fmt.Errorf("failed to seed cats: %w", lastErr)
	}
	return inserted, nil
}

// ClearAll deletes votes, winners, then cats. The three statements are not
// wrapped in a transaction.
func (s *Store) ClearAll(ctx context.Context) error {
	for _, table := range []string{"votes", "monthly_winners", "cats"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// CurrentWinner returns the recorded winner with the most upvotes for the
// current month, or nil when none has been recorded.
func (s *Store) CurrentWinner(ctx context.Context) (*models.Winner, error) {
	period := s.Now().Format(PeriodLayout)

	var w models.Winner
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT c.id, c.image_url, mw.upvote_count
		FROM monthly_winners mw
		JOIN cats c ON c.id = mw.cat_id
		WHERE mw.month_year = ?
		ORDER BY mw.upvote_count DESC, mw.id ASC
		LIMIT 1
	`), period).Scan(&w.ID, &w.ImageURL, &w.UpvoteCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query winner for %s: %w", period, err)
	}

	return &w, nil
}

// LeaderForPeriod returns the cat with the most upvotes cast in
// [start, end), lowest id first on ties, or nil when there were none.
func (s *Store) LeaderForPeriod(ctx context.Context, start, end time.Time) (*models.Winner, error) {
	var w models.Winner
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT c.id, c.image_url, COUNT(v.id) AS upvotes
		FROM votes v
		JOIN cats c ON c.id = v.cat_id
		WHERE v.vote_type = 'upvote'
		  AND v.created_at >= ? AND v.created_at < ?
		GROUP BY c.id, c.image_url
		ORDER BY upvotes DESC, c.id ASC
		LIMIT 1
	`), start.UTC().Format(TimeLayout), end.UTC().Format(TimeLayout)).Scan(&w.ID, &w.ImageURL, &w.UpvoteCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query period leader: %w", err)
	}

	return &w, nil
}

// RecordWinner replaces whatever is stored for monthYear with a single row.
func (s *Store) RecordWinner(ctx context.Context, monthYear string, catID int64, upvotes int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.rebind(`
		DELETE FROM monthly_winners WHERE month_year = ?
	`), monthYear); err != nil {
		return fmt.Errorf("failed to delete winners for %s: %w", monthYear, err)
	}

	if _, err := tx.ExecContext(ctx, s.rebind(`
		INSERT INTO monthly_winners (cat_id, month_year, upvote_count, created_at)
		VALUES (?, ?, ?, ?)
	`), catID, monthYear, upvotes, s.Now().Format(TimeLayout)); err != nil {
		if isForeignKeyViolation(err) {
			return ErrCatNotFound
		}
		return fmt.Errorf("failed to insert winner for %s: %w", monthYear, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit winner for %s: %w", monthYear, err)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
			return true
		}
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "FOREIGN KEY")
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}

	return false
}
