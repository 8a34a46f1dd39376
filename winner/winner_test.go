// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package winner_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/cat-vote/models"
	"github.com/danielhkuo/cat-vote/testutil"
	"github.com/danielhkuo/cat-vote/winner"
)

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		at        time.Time
		wantKey   string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid month",
			at:        time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC),
			wantKey:   "2025-03",
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december rolls the year",
			at:        time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
			wantKey:   "2024-12",
			wantStart: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "converted to UTC first",
			at:        time.Date(2025, time.May, 1, 1, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
			wantKey:   "2025-04",
			wantStart: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, start, end := winner.MonthBounds(tt.at)
			assert.Equal(t, tt.wantKey, key)
			assert.True(t, tt.wantStart.Equal(start), "start: want %v, got %v", tt.wantStart, start)
			assert.True(t, tt.wantEnd.Equal(end), "end: want %v, got %v", tt.wantEnd, end)
		})
	}
}

func TestRecordCurrentNoVotes(t *testing.T) {
	store, conn := testutil.SetupTestStore(t)
	testutil.CreateTestCat(t, conn, "a", "http://x/a.jpg")

	got, err := winner.NewRecorder(store, time.Minute).RecordCurrent(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, testutil.CountRows(t, conn, "monthly_winners"))
}

func TestRecordCurrent(t *testing.T) {
	store, conn := testutil.SetupTestStore(t)
	ctx := context.Background()
	rec := winner.NewRecorder(store, time.Minute)

	a := testutil.CreateTestCat(t, conn, "a", "http://x/a.jpg")
	b := testutil.CreateTestCat(t, conn, "b", "http://x/b.jpg")

	lastMonth := testutil.TestNow.AddDate(0, -1, 0)
	for i := 0; i < 4; i++ {
		testutil.CreateTestVote(t, conn, a, models.VoteUp, lastMonth)
	}
	testutil.CreateTestVote(t, conn, a, models.VoteUp, testutil.TestNow)
	testutil.CreateTestVote(t, conn, b, models.VoteUp, testutil.TestNow)
	testutil.CreateTestVote(t, conn, b, models.VoteUp, testutil.TestNow)

	got, err := rec.RecordCurrent(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.Winner{ID: b, ImageURL: "http://x/b.jpg", UpvoteCount: 2}, *got)

	current, err := store.CurrentWinner(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, *got, *current)

	// The lead changes; the month keeps a single row
	for i := 0; i < 3; i++ {
		testutil.CreateTestVote(t, conn, a, models.VoteUp, testutil.TestNow)
	}

	got, err = rec.RecordCurrent(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a, got.ID)
	assert.Equal(t, 4, got.UpvoteCount)
	assert.Equal(t, 1, testutil.CountRows(t, conn, "monthly_winners"))
}

func TestRecordCurrentTieGoesToLowestID(t *testing.T) {
	store, conn := testutil.SetupTestStore(t)

	a := testutil.CreateTestCat(t, conn, "a", "http://x/a.jpg")
	b := testutil.CreateTestCat(t, conn, "b", "http://x/b.jpg")
	testutil.CreateTestVote(t, conn, b, models.VoteUp, testutil.TestNow)
	testutil.CreateTestVote(t, conn, a, models.VoteUp, testutil.TestNow)

	got, err := winner.NewRecorder(store, time.Minute).RecordCurrent(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a, got.ID)
}

func TestRunRecordsImmediately(t *testing.T) {
	store, conn := testutil.SetupTestStore(t)

	a := testutil.CreateTestCat(t, conn, "a", "http://x/a.jpg")
	testutil.CreateTestVote(t, conn, a, models.VoteUp, testutil.TestNow)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		winner.NewRecorder(store, time.Hour).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		w, err := store.CurrentWinner(context.Background())
		return err == nil && w != nil && w.ID == a
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunDisabled(t *testing.T) {
	store, conn := testutil.SetupTestStore(t)

	a := testutil.CreateTestCat(t, conn, "a", "http://x/a.jpg")
	testutil.CreateTestVote(t, conn, a, models.VoteUp, testutil.TestNow)

	// Returns at once without recording
	winner.NewRecorder(store, 0).Run(context.Background())

	assert.Equal(t, 0, testutil.CountRows(t, conn, "monthly_winners"))
}
