package mastery

import (
	"context"
	"fmt"

	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/store"
	"github.com/owenfaulkner29/jargon/internal/viewer"
)

// DeckSummary aggregates the stored ratings of one deck.
type DeckSummary struct {
	Deck     deck.Name
	Cards    int                       // cards in the deck
	Rated    int                       // distinct cards rated at least once
	Mastered int                       // cards whose latest rating is easy
	Ratings  map[viewer.Difficulty]int // all ratings by difficulty
}

// Coverage returns the fraction of cards rated at least once.
func (s DeckSummary) Coverage() float64 {
	if s.Cards == 0 {
		return 0
	}
	return float64(s.Rated) / float64(s.Cards)
}

// TotalRatings returns the number of ratings across all difficulties.
func (s DeckSummary) TotalRatings() int {
	n := 0
	for _, c := range s.Ratings {
		n += c
	}
	return n
}

// Summarize builds one DeckSummary per deck, in deck.Names order. cards maps
// each deck to its size; ratings for indexes beyond that size (left over
// from an older deck file) are still counted in Ratings but not in Rated.
func Summarize(ctx context.Context, repo store.EventRepo, cards map[deck.Name]int) ([]DeckSummary, error) {
	counts, err := repo.MasteryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	tracker := NewTracker(repo, nil)
	if err := tracker.Load(ctx); err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	summaries := make([]DeckSummary, 0, len(deck.Names()))
	for _, name := range deck.Names() {
		s := DeckSummary{
			Deck:    name,
			Cards:   cards[name],
			Ratings: make(map[viewer.Difficulty]int),
		}
		for _, c := range counts {
			if c.Deck == string(name) {
				s.Ratings[viewer.Difficulty(c.Difficulty)] += c.Count
			}
		}
		for i := 0; i < s.Cards; i++ {
			d, ok := tracker.Rating(name, i)
			if !ok {
				continue
			}
			s.Rated++
			if d == viewer.Easy {
				s.Mastered++
			}
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
