package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"caselog/internal/auth"
	"caselog/internal/config"
	"caselog/internal/logging"
)

var (
	// Global flags
	cfgPath string
	dataDir string
	apiKey  string
	pinFlag string

	logger *zap.Logger
	app    *App
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "caselog",
	Short: "caselog - portfolio case logger for anaesthetic trainees",
	Long: `caselog is a local, single-user logbook for clinical cases and
workplace-based assessments (CBD, CEX, DOPS, ACAT, SLE).

Cases are stored in a single JSON document under the data directory.
Formatted exports are byte-stable so they can be pasted straight into
the learning platform's reflection fields.

Run 'caselog log' to open the interactive entry form.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		app, err = newApp(cfg, logger)
		if err != nil {
			return err
		}

		if err := login(cmd); err != nil {
			return err
		}
		app.maybeNag(time.Now())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// login runs the PIN gate: first-run setup when no PIN file exists,
// otherwise a login check. The resulting session holds the API key for
// the rest of the process.
func login(cmd *cobra.Command) error {
	// `pin set` manages the gate itself.
	if cmd.Name() == "set" && cmd.Parent() != nil && cmd.Parent().Name() == "pin" {
		app.Session = auth.DisarmedSession()
		return nil
	}

	if !app.Gate.Configured() {
		fmt.Println("First run: choose a 4-digit PIN to protect your logbook.")
		pin, err := promptLine("New PIN: ")
		if err != nil {
			return err
		}
		if err := app.Gate.SetPIN(pin); err != nil {
			return err
		}
		fmt.Println("PIN saved.")
	}

	pin := pinFlag
	if pin == "" {
		var err error
		pin, err = promptLine("PIN: ")
		if err != nil {
			return err
		}
	}
	sess, err := app.Gate.Verify(pin)
	if err != nil {
		if errors.Is(err, auth.ErrWrongPIN) {
			return errors.New("incorrect PIN")
		}
		return err
	}
	app.Session = sess

	key := apiKey
	if key == "" {
		key = config.APIKeyFromEnv()
	}
	sess.SetAPIKey(key)

	app.Logger.Info("session started", zap.String("session", sess.ID))
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parseID converts a command argument into a record identifier.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid case id %q", arg)
	}
	return id, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".caselog", "config.yaml")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "generative-text API key (kept in memory only)")
	rootCmd.PersistentFlags().StringVar(&pinFlag, "pin", "", "PIN for non-interactive use")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(exportedCmd)
	rootCmd.AddCommand(duplicateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(assistCmd)
	rootCmd.AddCommand(pinCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
