// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/cat-vote/models"
)

// Backend is the part of the API the provider drives.
type Backend interface {
	ListCats(ctx context.Context) ([]models.CatScore, error)
	CurrentWinner(ctx context.Context) (*models.Winner, error)
	SubmitVote(ctx context.Context, catID int64, voteType string) error
	SeedCats(ctx context.Context, cats []models.SeedCat) (int, error)
}

// Source supplies cats when the store is empty.
type Source interface {
	Fetch(ctx context.Context) ([]models.SeedCat, error)
}

// Phase is where the provider is in its current fetch cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// User-facing error strings. Details go to the log.
const (
	MsgFetchCats   = "Failed to fetch cats"
	MsgLoadSource  = "Failed to load cats from the image source"
	MsgFetchWinner = "Failed to fetch winner"
	MsgSubmitVote  = "Failed to submit vote"
)

// State is a snapshot of what the screens render.
type State struct {
	Cats    []models.CatScore
	Winner  *models.Winner
	Loading bool
	Phase   Phase
	Error   string
}

// Provider owns the client-side copy of cats and winner. Everything in it
// is derived from the latest API responses and refetched after each vote.
type Provider struct {
	api    Backend
	source Source

	mu    sync.Mutex
	state State
}

// NewProvider wires a provider to api. source may be nil, in which case an
// empty store stays empty.
func NewProvider(api Backend, source Source) *Provider {
	return &Provider{api: api, source: source}
}

// State returns a copy of the current state.
func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.state
	s.Cats = append([]models.CatScore(nil), p.state.Cats...)
	if p.state.Winner != nil {
		w := *p.state.Winner
		s.Winner = &w
	}
	return s
}

func (p *Provider) update(fn func(s *State)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.state)
}

func (p *Provider) fail(msg string, err error) error {
	slog.Error(msg, "error", err)
	p.update(func(s *State) {
		s.Loading = false
		s.Phase = PhaseError
		s.Error = msg
	})
	return err
}

// FetchCats loads the cat list. When the API has no cats it fetches once
// from the image source, seeds them, and reads the list again. There is no
// retry: a source failure leaves the provider in PhaseError.
func (p *Provider) FetchCats(ctx context.Context) error {
	p.update(func(s *State) {
		s.Loading = true
		s.Phase = PhaseLoading
		s.Error = ""
	})

	cats, err := p.api.ListCats(ctx)
	if err != nil {
		return p.fail(MsgFetchCats, err)
	}

	if len(cats) == 0 && p.source != nil {
		seed, err := p.source.Fetch(ctx)
		if err != nil {
			return p.fail(MsgLoadSource, err)
		}

		if len(seed) > 0 {
			inserted, err := p.api.SeedCats(ctx, seed)
			if err != nil {
				return p.fail(MsgFetchCats, err)
			}
			slog.Info("seeded empty store", "fetched", len(seed), "inserted", inserted)
		}

		cats, err = p.api.ListCats(ctx)
		if err != nil {
			return p.fail(MsgFetchCats, err)
		}
	}

	p.update(func(s *State) {
		s.Cats = cats
		s.Loading = false
		s.Phase = PhaseSuccess
	})
	return nil
}

// FetchWinner loads the current month's winner, which may be nil.
func (p *Provider) FetchWinner(ctx context.Context) error {
	w, err := p.api.CurrentWinner(ctx)
	if err != nil {
		return p.fail(MsgFetchWinner, err)
	}

	p.update(func(s *State) {
		s.Winner = w
	})
	return nil
}

// SubmitVote casts a vote, then refetches both cats and winner. Only a
// failed write skips the refresh; a failed refetch leaves the other one
// running.
func (p *Provider) SubmitVote(ctx context.Context, catID int64, voteType string) error {
	if err := p.api.SubmitVote(ctx, catID, voteType); err != nil {
		return p.fail(MsgSubmitVote, err)
	}

	catsErr := p.FetchCats(ctx)
	winnerErr := p.FetchWinner(ctx)
	return errors.Join(catsErr, winnerErr)
}
