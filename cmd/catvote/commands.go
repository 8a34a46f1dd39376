// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/cat-vote/client"
	"github.com/danielhkuo/cat-vote/models"
)

type options struct {
	apiURL    string
	sourceURL string
	sourceKey string
	seedCount int
	timeout   time.Duration
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "catvote",
		Short:         "Vote on cats from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api", envOr("CATVOTE_API_URL", "http://localhost:3000/api"), "Cat Vote API base URL")
	flags.StringVar(&opts.sourceURL, "source", envOr("CAT_API_URL", client.DefaultCatSourceURL), "Cat image source URL")
	flags.StringVar(&opts.sourceKey, "source-key", os.Getenv("CAT_API_KEY"), "Cat image source API key")
	flags.IntVar(&opts.seedCount, "seed-count", envIntOr("CAT_SEED_COUNT", 10), "Cats to fetch when the store is empty")
	flags.DurationVar(&opts.timeout, "timeout", envDurationOr("CLIENT_TIMEOUT", 10*time.Second), "HTTP timeout")

	root.AddCommand(
		newCatsCmd(opts),
		newWinnerCmd(opts),
		newVoteCmd(opts),
		newClearCmd(opts),
	)

	return root
}

func (o *options) httpClient() *http.Client {
	return &http.Client{Timeout: o.timeout}
}

func (o *options) api() *client.API {
	return client.NewAPI(o.apiURL, o.httpClient())
}

func (o *options) provider() *client.Provider {
	source := client.NewCatSource(o.sourceURL, o.sourceKey, o.seedCount, o.httpClient())
	return client.NewProvider(o.api(), source)
}

func newCatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cats",
		Short: "List cats with their votes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := opts.provider()
			if err := p.FetchCats(cmd.Context()); err != nil {
				return stateError(p)
			}
			renderCats(cmd.OutOrStdout(), p.State())
			return nil
		},
	}
}

func newWinnerCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "winner",
		Short: "Show this month's winner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := opts.provider()
			if err := p.FetchWinner(cmd.Context()); err != nil {
				return stateError(p)
			}
			renderWinner(cmd.OutOrStdout(), p.State())
			return nil
		},
	}
}

func newVoteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <cat-id> <up|down>",
		Short: "Upvote or downvote a cat",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || catID < 1 {
				return fmt.Errorf("invalid cat id %q", args[0])
			}

			var voteType string
			switch args[1] {
			case "up", models.VoteUp:
				voteType = models.VoteUp
			case "down", models.VoteDown:
				voteType = models.VoteDown
			default:
				return fmt.Errorf("vote must be up or down, got %q", args[1])
			}

			p := opts.provider()
			if err := p.SubmitVote(cmd.Context(), catID, voteType); err != nil {
				return stateError(p)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recorded %s for cat %d\n\n", voteType, catID)
			renderCats(out, p.State())
			fmt.Fprintln(out)
			renderWinner(out, p.State())
			return nil
		},
	}
}

func newClearCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every cat, vote and winner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear without --yes")
			}
			if err := opts.api().Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")

	return cmd
}

func stateError(p *client.Provider) error {
	return errors.New(p.State().Error)
}

func renderCats(w io.Writer, s client.State) {
	if len(s.Cats) == 0 {
		fmt.Fprintln(w, "No cats yet")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUP\tDOWN\tIMAGE")
	for _, c := range s.Cats {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", c.ID, c.Upvotes, c.Downvotes, c.ImageURL)
	}
	tw.Flush()
}

func renderWinner(w io.Writer, s client.State) {
	if s.Winner == nil {
		fmt.Fprintln(w, "No winner yet this month")
		return
	}
	fmt.Fprintf(w, "Winner: cat %d with %d upvotes\n%s\n", s.Winner.ID, s.Winner.UpvoteCount, s.Winner.ImageURL)
}
