// Package auth implements the local login gate: a single 4-digit PIN
// stored in a companion file next to the case document. It is a
// convenience lock for a single-user tool, not a security mechanism.
// The PIN is stored as plain text and sessions last only for the
// current process.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrBadPIN rejects anything that is not exactly four digits.
	ErrBadPIN = errors.New("PIN must be exactly 4 digits")
	// ErrWrongPIN reports a failed login attempt.
	ErrWrongPIN = errors.New("incorrect PIN")
	// ErrNoPIN means no PIN has been set yet (first-run setup applies).
	ErrNoPIN = errors.New("no PIN configured")
)

// Gate reads and writes the PIN file.
type Gate struct {
	path string
}

// NewGate binds the gate to the companion file path.
func NewGate(path string) *Gate {
	return &Gate{path: path}
}

// Configured reports whether a PIN file exists. Presence decides
// whether the shell shows first-run setup or the login prompt.
func (g *Gate) Configured() bool {
	_, err := os.Stat(g.path)
	return err == nil
}

// SetPIN validates and stores the PIN.
func (g *Gate) SetPIN(pin string) error {
	if !validPIN(pin) {
		return ErrBadPIN
	}
	if err := os.WriteFile(g.path, []byte(pin), 0600); err != nil {
		return fmt.Errorf("failed to write PIN file: %w", err)
	}
	return nil
}

// Verify checks the supplied PIN against the stored one and returns a
// session on success.
func (g *Gate) Verify(pin string) (*Session, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoPIN
		}
		return nil, fmt.Errorf("failed to read PIN file: %w", err)
	}
	if strings.TrimSpace(string(data)) != pin {
		return nil, ErrWrongPIN
	}
	return newSession(), nil
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
