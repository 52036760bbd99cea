package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"caselog/internal/record"
)

// BundleFileName names the artifact for an export-all/filtered action,
// stamped with the current date.
func BundleFileName(now time.Time) string {
	return fmt.Sprintf("cases_export_%s.txt", now.Format("20060102"))
}

// SingleFileName names the artifact for a single-record export, from the
// record's date and procedure.
func SingleFileName(c record.Case) string {
	procedure := c.Procedure
	if procedure == "" {
		procedure = "case"
	}
	return fmt.Sprintf("case_%s_%s.txt", c.Date, strings.ReplaceAll(procedure, " ", "_"))
}

// WriteBundle writes all given records into one artifact under dir and
// returns its path.
func WriteBundle(dir string, cases []record.Case, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, BundleFileName(now))
	if err := os.WriteFile(path, []byte(FormatAll(cases)), 0644); err != nil {
		return "", fmt.Errorf("failed to write export bundle: %w", err)
	}
	return path, nil
}

// WriteSingle writes one record's artifact under dir and returns its path.
func WriteSingle(dir string, c record.Case) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, SingleFileName(c))
	if err := os.WriteFile(path, []byte(Format(c)), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

// WriteEach writes one artifact per record, fanning the file writes out
// across a small worker pool. Returns the written paths in record order.
func WriteEach(ctx context.Context, dir string, cases []record.Case) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	paths := make([]string, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, SingleFileName(c))
			if err := os.WriteFile(path, []byte(Format(c)), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
