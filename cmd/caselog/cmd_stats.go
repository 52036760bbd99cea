package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd prints the summary counts.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show logbook statistics",
	Long: `Shows totals for the logbook. "This week" is a rolling 7-day lookback
from now, not a calendar week.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := app.Logbook.Stats()
	if err != nil {
		return err
	}
	fmt.Println(statsStrip(st))
	fmt.Printf("\nTotal cases:  %d\nComplete:     %d\nTo finish:    %d\nThis week:    %d\n",
		st.Total, st.Complete, st.Incomplete, st.ThisWeek)
	return nil
}
