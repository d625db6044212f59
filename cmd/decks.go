package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/owenfaulkner29/jargon/internal/deck"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks, or the cards of one deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		name, _ := cmd.Flags().GetString("deck")
		if name == "" {
			counts := rt.decks.Counts()
			fmt.Fprintf(out, "%-10s  %-16s  %s\n", "NAME", "TITLE", "CARDS")
			for _, n := range deck.Names() {
				fmt.Fprintf(out, "%-10s  %-16s  %5d\n", n, n.DisplayName(), counts[n])
			}
			return nil
		}

		dn, err := deck.ParseName(name)
		if err != nil {
			return err
		}
		d, err := rt.decks.Deck(dn)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s %s\n", dn.Icon(), dn.DisplayName())
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for i, c := range d.Cards {
			fmt.Fprintf(out, "%3d. %s  [%s]\n", i+1, c.Front, c.Category)
			fmt.Fprintf(out, "     %s: %s\n", dn.BackLabel(), c.Back)
			if c.Example != "" {
				fmt.Fprintf(out, "     %q\n", c.Example)
			}
		}
		fmt.Fprintf(out, "\n%d %ss\n", d.Len(), dn.Noun())
		return nil
	},
}

func init() {
	decksCmd.Flags().String("deck", "", "Print the cards of this deck (terms or acronyms)")
}
