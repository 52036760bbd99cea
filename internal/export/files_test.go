package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"caselog/internal/record"
)

func TestBundleFileName(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	if got := BundleFileName(now); got != "cases_export_20240115.txt" {
		t.Errorf("unexpected bundle name %q", got)
	}
}

func TestSingleFileName(t *testing.T) {
	c := record.Case{Date: "2024-01-10", Procedure: "Emergency laparotomy"}
	if got := SingleFileName(c); got != "case_2024-01-10_Emergency_laparotomy.txt" {
		t.Errorf("unexpected single name %q", got)
	}
	empty := record.Case{Date: "2024-01-10"}
	if got := SingleFileName(empty); got != "case_2024-01-10_case.txt" {
		t.Errorf("unexpected fallback name %q", got)
	}
}

func TestWriteBundle(t *testing.T) {
	dir := t.TempDir()
	cases := []record.Case{{Date: "2024-01-10", Procedure: "Spinal"}}
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	path, err := WriteBundle(dir, cases, now)
	if err != nil {
		t.Fatalf("WriteBundle failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != FormatAll(cases) {
		t.Error("bundle content must equal FormatAll output")
	}
}

func TestWriteEach(t *testing.T) {
	dir := t.TempDir()
	cases := []record.Case{
		{Date: "2024-01-10", Procedure: "Spinal"},
		{Date: "2024-01-11", Procedure: "Epidural"},
		{Date: "2024-01-12", Procedure: "Arterial Line"},
	}

	paths, err := WriteEach(context.Background(), dir, cases)
	if err != nil {
		t.Fatalf("WriteEach failed: %v", err)
	}
	if len(paths) != len(cases) {
		t.Fatalf("expected %d paths, got %d", len(cases), len(paths))
	}
	for i, p := range paths {
		if filepath.Base(p) != SingleFileName(cases[i]) {
			t.Errorf("path %d: expected %s, got %s", i, SingleFileName(cases[i]), filepath.Base(p))
		}
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %s failed: %v", p, err)
		}
		if string(data) != Format(cases[i]) {
			t.Errorf("file %s content mismatch", p)
		}
	}
}

func TestWriteEach_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := WriteEach(ctx, t.TempDir(), []record.Case{{Date: "2024-01-10"}}); err == nil {
		t.Error("expected error from cancelled context")
	}
}
