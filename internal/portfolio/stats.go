package portfolio

import (
	"fmt"
	"time"

	"caselog/internal/record"
)

// FilterMode selects a subset of the collection for display or export.
type FilterMode string

const (
	FilterAll        FilterMode = "all"
	FilterComplete   FilterMode = "complete"
	FilterIncomplete FilterMode = "incomplete"
)

// ParseFilterMode validates a user-supplied filter name.
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(s) {
	case FilterAll, FilterComplete, FilterIncomplete:
		return FilterMode(s), nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, complete or incomplete)", s)
}

// Stats summarizes the collection. ThisWeek is a rolling 7-day lookback
// from the moment of the call, not a calendar week, so the same
// collection answers differently at different times.
type Stats struct {
	Total      int
	Complete   int
	Incomplete int
	ThisWeek   int
}

// Stats computes the summary counts. A record whose date does not parse
// is a data-entry invariant violation and aborts the computation.
func (lb *Logbook) Stats() (Stats, error) {
	return ComputeStats(lb.cases, lb.now())
}

// ComputeStats is the pure form of Stats, taking the reference instant
// explicitly.
func ComputeStats(cases []record.Case, now time.Time) (Stats, error) {
	st := Stats{Total: len(cases)}
	weekAgo := now.Add(-7 * 24 * time.Hour)
	for _, c := range cases {
		if c.Completed {
			st.Complete++
		}
		d, err := time.Parse(record.DateLayout, c.Date)
		if err != nil {
			return Stats{}, fmt.Errorf("case %d has unparseable date %q: %w", c.ID, c.Date, err)
		}
		if !d.Before(weekAgo) {
			st.ThisWeek++
		}
	}
	st.Incomplete = st.Total - st.Complete
	return st, nil
}

// Filter returns the matching subset in stored order.
func (lb *Logbook) Filter(mode FilterMode) []record.Case {
	return FilterCases(lb.cases, mode)
}

// FilterCases filters an arbitrary slice, preserving relative order.
func FilterCases(cases []record.Case, mode FilterMode) []record.Case {
	switch mode {
	case FilterComplete:
		out := make([]record.Case, 0, len(cases))
		for _, c := range cases {
			if c.Completed {
				out = append(out, c)
			}
		}
		return out
	case FilterIncomplete:
		out := make([]record.Case, 0, len(cases))
		for _, c := range cases {
			if !c.Completed {
				out = append(out, c)
			}
		}
		return out
	default:
		return append([]record.Case(nil), cases...)
	}
}
