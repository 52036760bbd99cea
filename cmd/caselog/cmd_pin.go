package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pinCmd manages the local login gate.
var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Manage the login PIN",
	Long: `Manages the 4-digit PIN guarding the logbook. The PIN is a local
convenience lock stored next to the data file, not a security
mechanism.`,
}

// pinSetCmd sets or replaces the PIN.
var pinSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set or replace the PIN",
	RunE:  runPinSet,
}

func init() {
	pinCmd.AddCommand(pinSetCmd)
}

func runPinSet(cmd *cobra.Command, args []string) error {
	// Replacing an existing PIN requires knowing the current one.
	if app.Gate.Configured() {
		current, err := promptLine("Current PIN: ")
		if err != nil {
			return err
		}
		if _, err := app.Gate.Verify(current); err != nil {
			return err
		}
	}

	pin, err := promptLine("New PIN (4 digits): ")
	if err != nil {
		return err
	}
	confirm, err := promptLine("Repeat PIN: ")
	if err != nil {
		return err
	}
	if pin != confirm {
		return fmt.Errorf("PINs do not match")
	}
	if err := app.Gate.SetPIN(pin); err != nil {
		return err
	}
	fmt.Println("PIN saved.")
	return nil
}
