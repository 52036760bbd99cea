package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completeCmd toggles a case's completion flag.
var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Toggle a case's completion flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleByID(args[0], app.Logbook.ToggleCompleted, "completion")
	},
}

// exportedCmd toggles a case's exported flag.
var exportedCmd = &cobra.Command{
	Use:   "exported <id>",
	Short: "Toggle a case's exported flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleByID(args[0], app.Logbook.ToggleExported, "exported")
	},
}

// duplicateCmd copies a case with a fresh id and today's date.
var duplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Duplicate a case",
	Long: `Copies all fields of the case into a new record with a fresh id,
today's date, and cleared completion/exported flags. Useful for
near-identical list days.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		dup, err := app.Logbook.Duplicate(id)
		if err != nil {
			return err
		}
		fmt.Printf("Case duplicated as %d. Edit it with 'caselog log --edit %d'.\n", dup.ID, dup.ID)
		return nil
	},
}

// deleteCmd removes a case permanently.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := app.Logbook.Delete(id); err != nil {
			return err
		}
		fmt.Printf("Case %d deleted.\n", id)
		return nil
	},
}

func toggleByID(arg string, toggle func(int64) error, flag string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := toggle(id); err != nil {
		return err
	}
	c, err := app.Logbook.Get(id)
	if err != nil {
		return err
	}
	state := map[string]bool{
		"completion": c.Completed,
		"exported":   c.Exported,
	}[flag]
	fmt.Printf("Case %d %s flag is now %v.\n", id, flag, state)
	return nil
}
