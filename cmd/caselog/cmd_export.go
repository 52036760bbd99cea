package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"caselog/internal/export"
	"caselog/internal/portfolio"
)

var exportFlags struct {
	filter string
	id     int64
	split  bool
	out    string
	mark   bool
	stdout bool
}

// exportCmd writes clipboard-ready text artifacts.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export cases as formatted text files",
	Long: `Writes the formatted text artifacts for pasting into the learning
platform.

By default all cases (after --filter) go into one dated bundle file
under the export directory. --split writes one file per case instead.
--id exports a single case. --stdout prints to the terminal for direct
copying. --mark flips each exported case's exported flag afterwards.`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.filter, "filter", "all", "all, complete or incomplete")
	f.Int64Var(&exportFlags.id, "id", 0, "export a single case by id")
	f.BoolVar(&exportFlags.split, "split", false, "one file per case")
	f.StringVar(&exportFlags.out, "out", "", "output directory (default from config)")
	f.BoolVar(&exportFlags.mark, "mark", false, "set the exported flag on exported cases")
	f.BoolVar(&exportFlags.stdout, "stdout", false, "print to stdout instead of writing files")
}

func runExport(cmd *cobra.Command, args []string) error {
	dir := exportFlags.out
	if dir == "" {
		dir = app.Config.ExportPath()
	}

	if exportFlags.id != 0 {
		c, err := app.Logbook.Get(exportFlags.id)
		if err != nil {
			return err
		}
		if exportFlags.stdout {
			fmt.Println(export.Format(c))
		} else {
			path, err := export.WriteSingle(dir, c)
			if err != nil {
				return err
			}
			fmt.Println("Wrote", path)
		}
		return markExported(c.ID)
	}

	mode, err := portfolio.ParseFilterMode(exportFlags.filter)
	if err != nil {
		return err
	}
	cases := portfolio.SortedForDisplay(app.Logbook.Filter(mode))
	if len(cases) == 0 {
		fmt.Println(hintStyle.Render("Nothing to export."))
		return nil
	}

	switch {
	case exportFlags.stdout:
		fmt.Println(export.FormatAll(cases))
	case exportFlags.split:
		paths, err := export.WriteEach(cmd.Context(), dir, cases)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d files under %s\n", len(paths), dir)
	default:
		path, err := export.WriteBundle(dir, cases, time.Now())
		if err != nil {
			return err
		}
		fmt.Println("Wrote", path)
	}

	if exportFlags.mark {
		var ids []string
		for _, c := range cases {
			if !c.Exported {
				if err := app.Logbook.ToggleExported(c.ID); err != nil {
					return err
				}
				ids = append(ids, fmt.Sprint(c.ID))
			}
		}
		if len(ids) > 0 {
			fmt.Println(hintStyle.Render("Marked exported: " + strings.Join(ids, ", ")))
		}
	}
	return nil
}

func markExported(id int64) error {
	if !exportFlags.mark {
		return nil
	}
	c, err := app.Logbook.Get(id)
	if err != nil {
		return err
	}
	if c.Exported {
		return nil
	}
	return app.Logbook.ToggleExported(id)
}
