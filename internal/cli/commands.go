package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cinematch/internal/domain"
	"cinematch/internal/logger"
	"cinematch/internal/poster"
	"cinematch/internal/suggest"
)

func newSuggestCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query...>",
		Short: "Print catalog titles matching a query",
		Long: `Prints up to the configured number of catalog titles containing the
query, case-insensitively. The matched part is marked with [brackets].`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.loader.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if res.Cause != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "backend unavailable, using sample movies")
			}

			engine := suggest.Engine{MinQuery: a.cfg.Suggest.MinQuery, MaxResults: a.cfg.Suggest.MaxResults}
			printSuggestions(cmd.OutOrStdout(), engine.Suggest(strings.Join(args, " "), res.Catalog.View()))
			return nil
		},
	}
}

func printSuggestions(w io.Writer, items []suggest.Suggestion) {
	for i, s := range items {
		prefix, match, suffix := s.Parts()
		fmt.Fprintf(w, "%d. %s[%s]%s\n", i+1, prefix, match, suffix)
	}
}

func newRecommendCommand(opts *options) *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "recommend <movie...>",
		Short: "Print movies similar to the given one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			movie := strings.TrimSpace(strings.Join(args, " "))
			if movie == "" {
				return errors.New("please enter a movie title")
			}

			res, err := a.loader.Recommend(cmd.Context(), movie)
			if err != nil {
				return err
			}
			if res.Fallback {
				fmt.Fprintln(cmd.ErrOrStderr(), "backend unavailable, showing sample recommendations")
			}

			var cards []poster.Card
			if probe {
				cards = poster.NewProber(nil, logger.New("poster")).Resolve(cmd.Context(), res.Recommendations)
			} else {
				cards = poster.Cards(res.Recommendations)
			}
			printCards(cmd.OutOrStdout(), res.Movie, cards)
			return nil
		},
	}
	cmd.Flags().BoolVar(&probe, "probe", false, "check that each poster loads and mark the ones that do not")
	return cmd
}

func printCards(w io.Writer, movie string, cards []poster.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No recommendations found. Please try another movie.")
		return
	}
	fmt.Fprintf(w, "Because you like %s:\n", movie)
	for i, c := range cards {
		image := c.Image
		if c.Placeholder {
			image = "(no poster)"
		}
		fmt.Fprintf(w, "%2d. %-40s %s  %s\n", i+1, c.Title, c.SimilarityLabel(), image)
	}
}

func newMoviesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "movies",
		Short: "Print the movie catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.loader.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, title := range res.Catalog.View() {
				fmt.Fprintln(out, title)
			}
			source := string(domain.SourceRemote)
			if res.Catalog.IsFallback() {
				source = fmt.Sprintf("%s (%v)", domain.SourceFallback, res.Cause)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d movies, source: %s\n", res.Catalog.Len(), source)
			return nil
		},
	}
}
