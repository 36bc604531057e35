package report

import (
	"fmt"
	"io"
	"prisoners-dilemma/internal/domain"
	"text/tabwriter"
)

// Write renders the leaderboard followed by each slot's record against the
// reference slot. names is indexed by slot.
func Write(w io.Writer, names []string, standings []domain.Standing, records []domain.Record) error {
	if len(standings) != len(names) || len(records) != len(names) {
		return fmt.Errorf("failed to write report: %d names, %d standings, %d records", len(names), len(standings), len(records))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)

	fmt.Fprintln(tw, "Tournament Results")
	for i, s := range standings {
		fmt.Fprintf(tw, "%d.\t%s:\t%.4f points.\n", i+1, names[s.Slot], s.Score)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Player\tWins\tLosses\tTies\tTotal Matches\n")
	for slot, r := range records {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", names[slot], r.Wins(), r.Losses, r.Ties, r.Played)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}
