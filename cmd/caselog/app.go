package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"caselog/internal/assist"
	"caselog/internal/auth"
	"caselog/internal/config"
	"caselog/internal/portfolio"
	"caselog/internal/store"
)

// App is the single owner of session state: configuration, the open
// logbook, the login gate and the authenticated session. Commands
// receive it through the interaction boundary instead of reaching for
// globals.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Logbook *portfolio.Logbook
	Gate    *auth.Gate
	Session *auth.Session
}

// newApp opens the logbook against the already-loaded configuration.
// The login gate is checked separately so the PIN setup command can run
// before a PIN exists.
func newApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}

	lb, err := portfolio.Open(store.New(cfg.CasesPath()), logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Logbook: lb,
		Gate:    auth.NewGate(cfg.PINPath()),
	}, nil
}

// AssistClient builds the generative-text client from the session
// credential and configured endpoint settings.
func (a *App) AssistClient() *assist.Client {
	cfg := assist.DefaultConfig(a.Session.APIKey())
	cfg.BaseURL = a.Config.Assist.BaseURL
	cfg.Model = a.Config.Assist.Model
	cfg.MaxTokens = a.Config.Assist.MaxTokens
	if d, err := time.ParseDuration(a.Config.Assist.Timeout); err == nil {
		cfg.Timeout = d
	}
	return assist.NewClient(cfg, a.Logger)
}

// maybeNag prints the evening logging reminder. A plain time-of-day
// check per interaction, nothing scheduled.
func (a *App) maybeNag(now time.Time) {
	if !auth.NagDue(now) {
		return
	}
	today := now.Format("2006-01-02")
	for _, c := range a.Logbook.Cases() {
		if c.Date == today {
			return
		}
	}
	fmt.Println(hintStyle.Render("Evening reminder: no cases logged today yet. 'caselog log' while it's fresh."))
}
