// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package winner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/cat-vote/db"
	"github.com/danielhkuo/cat-vote/models"
)

// Recorder writes the current month's leading cat into monthly_winners.
type Recorder struct {
	store    *db.Store
	interval time.Duration
}

func NewRecorder(store *db.Store, interval time.Duration) *Recorder {
	return &Recorder{store: store, interval: interval}
}

// MonthBounds returns the YYYY-MM key for t and the UTC half-open range
// [start, end) covering that calendar month.
func MonthBounds(t time.Time) (key string, start, end time.Time) {
	t = t.UTC()
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start.Format(db.PeriodLayout), start, end
}

// RecordCurrent computes the leader for the store's current month and
// records it. Returns nil without writing when the month has no upvotes.
func (r *Recorder) RecordCurrent(ctx context.Context) (*models.Winner, error) {
	key, start, end := MonthBounds(r.store.Now())

	leader, err := r.store.LeaderForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if leader == nil {
		return nil, nil
	}

	if err := r.store.RecordWinner(ctx, key, leader.ID, leader.UpvoteCount); err != nil {
		return nil, fmt.Errorf("failed to record winner for %s: %w", key, err)
	}

	slog.Debug("monthly winner recorded", "month_year", key, "cat_id", leader.ID, "upvotes", leader.UpvoteCount)
	return leader, nil
}

// Run records once, then again every interval until ctx is cancelled.
// Failures are logged and the loop keeps going.
func (r *Recorder) Run(ctx context.Context) {
	if r.interval <= 0 {
		slog.Info("winner recorder disabled")
		return
	}

	r.tick(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Recorder) tick(ctx context.Context) {
	if _, err := r.RecordCurrent(ctx); err != nil && ctx.Err() == nil {
		slog.Error("failed to record monthly winner", "error", err)
	}
}
