package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"caselog/internal/record"
)

func TestLoad_MissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "cases.json"))
	cases, err := s.Load()
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if len(cases) != 0 {
		t.Errorf("expected empty collection, got %d cases", len(cases))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "cases.json"))

	want := []record.Case{
		{
			ID:        1,
			Date:      "2024-01-10",
			Procedure: "Spinal",
			CBDScores: map[string]string{"Communication": "Excellent"},
			LinkedTo:  []string{"EPA3 - Safe Conduct of Anaesthesia"},
		},
		{ID: 2, Date: "2024-01-15", Completed: true},
	}

	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_HumanReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	s := New(path)
	if err := s.Save([]record.Case{{ID: 1, Date: "2024-01-10"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("document should be indented for manual inspection")
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "cases.json"))
	if err := s.Save([]record.Case{{ID: 1, Date: "2024-01-10"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "cases.json" {
		t.Errorf("expected only cases.json in data dir, got %v", entries)
	}
}

func TestSave_NilCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	s := New(path)
	if err := s.Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("nil collection should persist as an empty list, got %q", data)
	}
}

func TestLoad_MalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := New(path).Load(); err == nil {
		t.Error("malformed document must surface a parse error")
	}
}
