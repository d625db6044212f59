package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/mastery"
	"github.com/owenfaulkner29/jargon/internal/store"
	"github.com/owenfaulkner29/jargon/internal/viewer"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		st, err := openStore(cmd, rt)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.EventRepo()
		summaries, err := mastery.Summarize(ctx, repo, rt.decks.Counts())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-16s  %5s  %5s  %8s  %4s  %6s  %4s\n",
			"DECK", "CARDS", "RATED", "MASTERED", "EASY", "MEDIUM", "HARD")
		fmt.Fprintln(out, strings.Repeat("─", 62))
		for _, s := range summaries {
			fmt.Fprintf(out, "%-16s  %5d  %5d  %8d  %4d  %6d  %4d\n",
				s.Deck.DisplayName(), s.Cards, s.Rated, s.Mastered,
				s.Ratings[viewer.Easy], s.Ratings[viewer.Medium], s.Ratings[viewer.Hard])
		}

		limit, _ := cmd.Flags().GetInt("sessions")
		if limit <= 0 {
			return nil
		}
		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nRecent sessions (%d)\n", len(sessions))
		for _, s := range sessions {
			label := s.Deck
			if n := deck.Name(s.Deck); n.Valid() {
				label = n.DisplayName()
			}
			fmt.Fprintf(out, "  %s  %-16s  %3d cards  %3d ratings  %d:%02d\n",
				s.Timestamp.Local().Format("2006-01-02 15:04"), label,
				s.CardsViewed, s.Ratings, s.DurationSecs/60, s.DurationSecs%60)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 5, "Number of recent study sessions to list (0 hides them)")
}
