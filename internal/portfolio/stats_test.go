package portfolio

import (
	"testing"
	"time"

	"caselog/internal/record"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	cases := []record.Case{
		{ID: 1, Date: "2024-01-10", Completed: false},
		{ID: 2, Date: "2024-01-15", Completed: true},
	}

	st, err := ComputeStats(cases, now)
	if err != nil {
		t.Fatalf("ComputeStats failed: %v", err)
	}
	if st.Total != 2 || st.Complete != 1 || st.Incomplete != 1 {
		t.Errorf("unexpected counts: %+v", st)
	}
	// 2024-01-10 is 6 days back, inside the rolling window; both qualify.
	if st.ThisWeek != 2 {
		t.Errorf("expected thisWeek=2, got %d", st.ThisWeek)
	}
}

func TestComputeStats_RollingWindowBoundary(t *testing.T) {
	// Window start is exactly now-7d. A date at midnight seven days ago
	// is before noon-7d, so it falls outside.
	now := time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)
	cases := []record.Case{
		{ID: 1, Date: "2024-01-10"},
		{ID: 2, Date: "2024-01-11"},
	}
	st, err := ComputeStats(cases, now)
	if err != nil {
		t.Fatalf("ComputeStats failed: %v", err)
	}
	if st.ThisWeek != 1 {
		t.Errorf("expected only 2024-01-11 inside the window, got %d", st.ThisWeek)
	}
}

func TestComputeStats_CompletePlusIncompleteEqualsTotal(t *testing.T) {
	now := time.Now()
	today := now.Format(record.DateLayout)
	for n := 0; n < 5; n++ {
		cases := make([]record.Case, n)
		for i := range cases {
			cases[i] = record.Case{ID: int64(i), Date: today, Completed: i%2 == 0}
		}
		st, err := ComputeStats(cases, now)
		if err != nil {
			t.Fatalf("ComputeStats failed: %v", err)
		}
		if st.Complete+st.Incomplete != st.Total {
			t.Errorf("n=%d: complete(%d)+incomplete(%d) != total(%d)",
				n, st.Complete, st.Incomplete, st.Total)
		}
	}
}

func TestComputeStats_BadDateIsFatal(t *testing.T) {
	_, err := ComputeStats([]record.Case{{ID: 1, Date: "next tuesday"}}, time.Now())
	if err == nil {
		t.Error("unparseable date must abort stats")
	}
}

func TestFilterCases(t *testing.T) {
	cases := []record.Case{
		{ID: 1, Completed: false},
		{ID: 2, Completed: true},
		{ID: 3, Completed: false},
		{ID: 4, Completed: true},
	}

	complete := FilterCases(cases, FilterComplete)
	incomplete := FilterCases(cases, FilterIncomplete)
	all := FilterCases(cases, FilterAll)

	if len(all) != 4 {
		t.Errorf("all: expected 4, got %d", len(all))
	}
	if len(complete) != 2 || complete[0].ID != 2 || complete[1].ID != 4 {
		t.Errorf("complete subset wrong: %+v", complete)
	}
	if len(incomplete) != 2 || incomplete[0].ID != 1 || incomplete[1].ID != 3 {
		t.Errorf("incomplete subset wrong: %+v", incomplete)
	}

	// The two subsets partition the collection.
	seen := map[int64]bool{}
	for _, c := range complete {
		seen[c.ID] = true
	}
	for _, c := range incomplete {
		if seen[c.ID] {
			t.Errorf("id %d in both subsets", c.ID)
		}
		seen[c.ID] = true
	}
	if len(seen) != len(cases) {
		t.Errorf("union has %d ids, want %d", len(seen), len(cases))
	}
}

func TestParseFilterMode(t *testing.T) {
	for _, ok := range []string{"all", "complete", "incomplete"} {
		if _, err := ParseFilterMode(ok); err != nil {
			t.Errorf("ParseFilterMode(%q) failed: %v", ok, err)
		}
	}
	if _, err := ParseFilterMode("done"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
