// Package portfolio owns the in-memory case collection for a session
// and every lifecycle operation on it. Each mutation persists the full
// collection through the store; the collection is the single live copy.
package portfolio

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"caselog/internal/record"
)

// ErrNotFound reports an identifier with no matching record. The
// original behaviour was a silent list-scan no-op; the keyed index makes
// the condition explicit and leaves the caller to decide how loudly to
// report it.
var ErrNotFound = errors.New("case not found")

// Persister is the slice of the store the logbook needs.
type Persister interface {
	Load() ([]record.Case, error)
	Save([]record.Case) error
}

// Logbook holds the session's collection plus an id index. Stored order
// is append order; display order is computed at read time and never
// written back.
type Logbook struct {
	store  Persister
	logger *zap.Logger
	cases  []record.Case
	byID   map[int64]int // id -> index into cases
	now    func() time.Time
}

// Open loads the persisted collection into a new logbook.
func Open(store Persister, logger *zap.Logger) (*Logbook, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cases, err := store.Load()
	if err != nil {
		return nil, err
	}
	lb := &Logbook{
		store:  store,
		logger: logger,
		cases:  cases,
		now:    time.Now,
	}
	lb.reindex()
	logger.Info("logbook opened", zap.Int("cases", len(cases)))
	return lb, nil
}

func (lb *Logbook) reindex() {
	lb.byID = make(map[int64]int, len(lb.cases))
	for i, c := range lb.cases {
		// First occurrence wins, matching the original lookup order
		// should duplicate ids ever slip in.
		if _, ok := lb.byID[c.ID]; !ok {
			lb.byID[c.ID] = i
		}
	}
}

// Cases returns the collection in stored order. Callers must not mutate
// the returned slice.
func (lb *Logbook) Cases() []record.Case {
	return lb.cases
}

// Get returns the record with the given identifier.
func (lb *Logbook) Get(id int64) (record.Case, error) {
	i, ok := lb.byID[id]
	if !ok {
		return record.Case{}, fmt.Errorf("case %d: %w", id, ErrNotFound)
	}
	return lb.cases[i], nil
}

// Add assigns a fresh identifier, appends and persists. The date must
// parse as YYYY-MM-DD: stats and sorting treat a bad date as fatal, so
// it can never be allowed into the collection.
func (lb *Logbook) Add(c record.Case) (record.Case, error) {
	if err := validDate(c.Date); err != nil {
		return record.Case{}, err
	}
	c.ID = lb.claimID(record.NewID(lb.now()))
	lb.cases = append(lb.cases, c)
	lb.byID[c.ID] = len(lb.cases) - 1
	if err := lb.persist(); err != nil {
		return record.Case{}, err
	}
	lb.logger.Info("case added",
		zap.Int64("id", c.ID),
		zap.String("type", c.AssessmentType),
		zap.String("date", c.Date))
	return c, nil
}

// Update replaces every field of the identified record except the
// identifier itself, then persists.
func (lb *Logbook) Update(id int64, c record.Case) error {
	if err := validDate(c.Date); err != nil {
		return err
	}
	i, ok := lb.byID[id]
	if !ok {
		return fmt.Errorf("update case %d: %w", id, ErrNotFound)
	}
	c.ID = id
	lb.cases[i] = c
	if err := lb.persist(); err != nil {
		return err
	}
	lb.logger.Info("case updated", zap.Int64("id", id))
	return nil
}

// Delete removes the identified record and persists the remainder.
func (lb *Logbook) Delete(id int64) error {
	i, ok := lb.byID[id]
	if !ok {
		return fmt.Errorf("delete case %d: %w", id, ErrNotFound)
	}
	lb.cases = append(lb.cases[:i], lb.cases[i+1:]...)
	lb.reindex()
	if err := lb.persist(); err != nil {
		return err
	}
	lb.logger.Info("case deleted", zap.Int64("id", id))
	return nil
}

// ToggleCompleted inverts the completion flag and persists.
func (lb *Logbook) ToggleCompleted(id int64) error {
	return lb.toggle(id, "completed", func(c *record.Case) {
		c.Completed = !c.Completed
	})
}

// ToggleExported inverts the exported flag and persists.
func (lb *Logbook) ToggleExported(id int64) error {
	return lb.toggle(id, "exported", func(c *record.Case) {
		c.Exported = !c.Exported
	})
}

func (lb *Logbook) toggle(id int64, flag string, flip func(*record.Case)) error {
	i, ok := lb.byID[id]
	if !ok {
		return fmt.Errorf("toggle case %d: %w", id, ErrNotFound)
	}
	flip(&lb.cases[i])
	if err := lb.persist(); err != nil {
		return err
	}
	lb.logger.Info("case flag toggled", zap.Int64("id", id), zap.String("flag", flag))
	return nil
}

// Duplicate copies the identified record with a fresh id, today's date
// and cleared flags, appends and persists. Returns the new record.
func (lb *Logbook) Duplicate(id int64) (record.Case, error) {
	i, ok := lb.byID[id]
	if !ok {
		return record.Case{}, fmt.Errorf("duplicate case %d: %w", id, ErrNotFound)
	}
	dup := lb.cases[i].Duplicate(lb.now())
	dup.ID = lb.claimID(dup.ID)
	lb.cases = append(lb.cases, dup)
	lb.byID[dup.ID] = len(lb.cases) - 1
	if err := lb.persist(); err != nil {
		return record.Case{}, err
	}
	lb.logger.Info("case duplicated", zap.Int64("from", id), zap.Int64("id", dup.ID))
	return dup, nil
}

// claimID bumps id past any identifier already in the index. Two
// records created inside the same millisecond would otherwise collide
// on the timestamp id and shadow each other in lookups.
func (lb *Logbook) claimID(id int64) int64 {
	for {
		if _, taken := lb.byID[id]; !taken {
			return id
		}
		id++
	}
}

func validDate(date string) error {
	if date == "" {
		return errors.New("case date is required")
	}
	if _, err := time.Parse(record.DateLayout, date); err != nil {
		return fmt.Errorf("case date must be YYYY-MM-DD, got %q", date)
	}
	return nil
}

func (lb *Logbook) persist() error {
	if err := lb.store.Save(lb.cases); err != nil {
		lb.logger.Error("persist failed", zap.Error(err))
		return fmt.Errorf("failed to persist cases: %w", err)
	}
	return nil
}

// SortedForDisplay returns a copy of cases sorted by date descending.
// ISO dates compare lexicographically, so string order is date order.
// The input order is left untouched.
func SortedForDisplay(cases []record.Case) []record.Case {
	out := append([]record.Case(nil), cases...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
