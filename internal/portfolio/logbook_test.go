package portfolio

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"caselog/internal/record"
	"caselog/internal/store"
)

func testLogbook(t *testing.T) *Logbook {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "cases.json"))
	lb, err := Open(s, zap.NewNop())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return lb
}

// advance returns a clock that ticks one millisecond per call so every
// Add gets a distinct id.
func advance(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func TestAdd_AssignsIDAndPersists(t *testing.T) {
	lb := testLogbook(t)
	lb.now = advance(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	added, err := lb.Add(record.Case{Date: "2024-01-15", Procedure: "Spinal"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.ID == 0 {
		t.Error("expected a fresh identifier")
	}

	// Reopen from disk to prove the write happened.
	lb2, err := Open(lb.store, zap.NewNop())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, err := lb2.Get(added.ID)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got.Procedure != "Spinal" {
		t.Errorf("expected persisted procedure Spinal, got %q", got.Procedure)
	}
}

func TestAdd_RequiresDate(t *testing.T) {
	lb := testLogbook(t)
	if _, err := lb.Add(record.Case{Procedure: "Spinal"}); err == nil {
		t.Error("expected error for missing date")
	}
}

func TestAdd_RejectsUnparseableDate(t *testing.T) {
	lb := testLogbook(t)
	lb.now = advance(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	// A bad date admitted here would make Stats fail for the whole
	// collection from then on.
	for _, bad := range []string{"Jan 5th 2024", "2024-1-5", "05/01/2024", "2024-13-01"} {
		if _, err := lb.Add(record.Case{Date: bad}); err == nil {
			t.Errorf("Add(%q) should reject the date", bad)
		}
	}
	if len(lb.Cases()) != 0 {
		t.Fatalf("rejected records must not be stored, got %d", len(lb.Cases()))
	}

	if _, err := lb.Add(record.Case{Date: "2024-01-15"}); err != nil {
		t.Fatalf("valid date refused: %v", err)
	}
	if _, err := lb.Stats(); err != nil {
		t.Errorf("Stats must stay computable: %v", err)
	}
}

func TestUpdate_RejectsUnparseableDate(t *testing.T) {
	lb := testLogbook(t)
	lb.now = advance(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	added, err := lb.Add(record.Case{Date: "2024-01-15"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := lb.Update(added.ID, record.Case{Date: "next tuesday"}); err == nil {
		t.Error("Update must reject an unparseable date")
	}
	got, err := lb.Get(added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Date != "2024-01-15" {
		t.Errorf("stored date changed to %q", got.Date)
	}
}

func TestAdd_SameMillisecondIDsStayDistinct(t *testing.T) {
	lb := testLogbook(t)
	frozen := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	lb.now = func() time.Time { return frozen }

	a, err := lb.Add(record.Case{Date: "2024-01-15", Procedure: "A"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	b, err := lb.Add(record.Case{Date: "2024-01-15", Procedure: "B"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if a.ID == b.ID {
		t.Fatal("same-millisecond additions must get distinct ids")
	}

	gotA, err := lb.Get(a.ID)
	if err != nil {
		t.Fatalf("Get(a) failed: %v", err)
	}
	gotB, err := lb.Get(b.ID)
	if err != nil {
		t.Fatalf("Get(b) failed: %v", err)
	}
	if gotA.Procedure != "A" || gotB.Procedure != "B" {
		t.Errorf("index points at the wrong records: %q, %q", gotA.Procedure, gotB.Procedure)
	}

	dup, err := lb.Duplicate(a.ID)
	if err != nil {
		t.Fatalf("Duplicate failed: %v", err)
	}
	if dup.ID == a.ID || dup.ID == b.ID {
		t.Error("duplicate under a frozen clock must still get a fresh id")
	}
}

func TestUpdate_PreservesIDReplacesFields(t *testing.T) {
	lb := testLogbook(t)
	lb.now = advance(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	added, err := lb.Add(record.Case{Date: "2024-01-15", Procedure: "Spinal", Notes: "old"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	repl := record.Case{
		ID:        999999, // must be overridden by the target id
		Date:      "2024-01-16",
		Procedure: "Epidural",
		Completed: true,
	}
	if err := lb.Update(added.ID, repl); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := lb.Get(added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	want := repl
	want.ID = added.ID
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("update mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	lb := testLogbook(t)
	err := lb.Update(42, record.Case{Date: "2024-01-16"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	lb := testLogbook(t)
	lb.now = advance(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	a, _ := lb.Add(record.Case{Date: "2024-01-10", Procedure: "A"})
	b, _ := lb.Add(record.Case{Date: "2024-01-11", Procedure: "B"})
	c, _ := lb.Add(record.Case{Date: "2024-01-12", Procedure: "C"})

	if err := lb.Delete(b.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(lb.Cases()) != 2 {
		t.Fatalf("expected 2 cases after delete, got %d", len(lb.Cases()))
	}
	want := []record.Case{a, c}
	if diff := cmp.Diff(want, lb.Cases()); diff != "" {
		t.Errorf("survivors changed (-want +got):\n%s", diff)
	}
	if err := lb.Delete(b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should report not found, got %v", err)
	}
}

func TestToggleFlags(t *testing.T) {
	lb := testLogbook(t)
	lb.now = advance(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	added, _ := lb.Add(record.Case{Date: "2024-01-15"})

	if err := lb.ToggleCompleted(added.ID); err != nil {
		t.Fatalf("ToggleCompleted failed: %v", err)
	}
	got, _ := lb.Get(added.ID)
	if !got.Completed {
		t.Error("completed flag should now be true")
	}

	if err := lb.ToggleExported(added.ID); err != nil {
		t.Fatalf("ToggleExported failed: %v", err)
	}
	got, _ = lb.Get(added.ID)
	if !got.Exported {
		t.Error("exported flag should now be true")
	}

	if err := lb.ToggleCompleted(added.ID); err != nil {
		t.Fatalf("ToggleCompleted failed: %v", err)
	}
	got, _ = lb.Get(added.ID)
	if got.Completed {
		t.Error("completed flag should be back to false")
	}

	if err := lb.ToggleCompleted(12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestDuplicate(t *testing.T) {
	lb := testLogbook(t)
	lb.now = advance(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	orig, _ := lb.Add(record.Case{
		Date:      "2024-01-15",
		Procedure: "Spinal",
		Completed: true,
		Exported:  true,
		LinkedTo:  []string{"EPA3 - Safe Conduct of Anaesthesia"},
	})

	dup, err := lb.Duplicate(orig.ID)
	if err != nil {
		t.Fatalf("Duplicate failed: %v", err)
	}
	if dup.ID == orig.ID {
		t.Error("duplicate must get a fresh id")
	}
	if dup.Date != "2024-03-01" {
		t.Errorf("expected today's date, got %s", dup.Date)
	}
	if dup.Completed || dup.Exported {
		t.Error("duplicate must clear status flags")
	}
	if dup.Procedure != "Spinal" {
		t.Errorf("expected procedure carried over, got %q", dup.Procedure)
	}
	if len(lb.Cases()) != 2 {
		t.Errorf("expected 2 cases, got %d", len(lb.Cases()))
	}
}

func TestSortedForDisplay(t *testing.T) {
	in := []record.Case{
		{ID: 1, Date: "2024-01-10"},
		{ID: 2, Date: "2024-01-15"},
		{ID: 3, Date: "2024-01-12"},
	}
	got := SortedForDisplay(in)
	wantOrder := []int64{2, 3, 1}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
	// Stored order untouched.
	if in[0].ID != 1 || in[1].ID != 2 || in[2].ID != 3 {
		t.Error("input order must not be mutated")
	}
}
