// ABOUTME: Root cobra command and shared application wiring
// ABOUTME: Loads config, opens the store and builds the auth engine per invocation

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/epicevents/crm/internal/auth"
	"github.com/epicevents/crm/internal/config"
	"github.com/epicevents/crm/internal/service"
	"github.com/epicevents/crm/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "epicevents",
	Short:         "EpicEvents CRM command tool",
	Long:          "Role-based CRM for employees, clients, contracts and events.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Unrecoverable errors (store connectivity,
// broken config) exit non-zero; recoverable conditions are rendered as
// messages by the commands themselves and exit cleanly.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the wired collaborators behind every command.
type app struct {
	cfg    *config.Config
	store  *store.SQLiteStore
	engine *auth.Engine

	employees *service.EmployeeService
	clients   *service.ClientService
	contracts *service.ContractService
	events    *service.EventService
}

// newApp loads configuration, configures logging and opens the store.
// The caller must Close the returned app.
func newApp() (*app, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, err
	}

	setupLogging(cfg.Logging)

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	codec := auth.NewTokenCodec([]byte(cfg.Auth.JWTSecret))
	sessions := auth.NewSessionStore(cfg.Session.Path)
	engine := auth.NewEngine(st, codec, sessions, cfg.Auth.TokenTTL)

	return &app{
		cfg:       cfg,
		store:     st,
		engine:    engine,
		employees: service.NewEmployeeService(engine, st),
		clients:   service.NewClientService(engine, st),
		contracts: service.NewContractService(engine, st),
		events:    service.NewEventService(engine, st),
	}, nil
}

// Close releases the store.
func (a *app) Close() {
	_ = a.store.Close()
}

// setupLogging installs the default slog handler per config.
func setupLogging(cfg config.LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// renderErr maps recoverable conditions to short user-facing messages and
// swallows them so the command exits cleanly. Anything unrecognized (store
// connectivity above all) propagates and aborts with a non-zero exit.
func renderErr(err error) error {
	red := color.New(color.FgRed)

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		red.Println("You are not logged in. Run 'epicevents login' first.")
	case errors.Is(err, auth.ErrTokenExpired):
		red.Println("Your session has expired, please log in again.")
	case errors.Is(err, auth.ErrTokenInvalid):
		red.Println("Invalid session token, please log in again.")
	case errors.Is(err, service.ErrPermissionDenied):
		red.Println("You do not have permission to perform this action.")
	case errors.Is(err, service.ErrNotOwner):
		red.Println("You can only modify records assigned to you.")
	case errors.Is(err, service.ErrContractNotSigned):
		red.Println("This contract is not signed yet.")
	case errors.Is(err, service.ErrWrongDepartment):
		red.Println("That employee is in the wrong department for this operation.")
	case errors.Is(err, store.ErrDuplicateEmail):
		red.Println("A record with this email already exists.")
	case errors.Is(err, store.ErrEmployeeNotFound),
		errors.Is(err, store.ErrClientNotFound),
		errors.Is(err, store.ErrContractNotFound),
		errors.Is(err, store.ErrEventNotFound):
		red.Printf("%v.\n", capitalize(err))
	default:
		return err
	}
	return nil
}

func capitalize(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// parseAmount converts a decimal amount string like "1000.50" to cents.
func parseAmount(s string) (int64, error) {
	whole, frac, found := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	var cents int64
	if found {
		if len(frac) > 2 {
			return 0, fmt.Errorf("invalid amount %q: more than two decimal places", s)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}

	if units < 0 {
		return units*100 - cents, nil
	}
	return units*100 + cents, nil
}

// formatAmount renders cents as a decimal amount string.
func formatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
