package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/client"
	"github.com/Kauesamartino/WorksafeApp/internal/config"
	"github.com/Kauesamartino/WorksafeApp/internal/session"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
	"github.com/Kauesamartino/WorksafeApp/internal/theme"
	"github.com/spf13/cobra"
)

// env is what every command runs against. It is filled in by the root
// command before any subcommand runs.
type env struct {
	cfg    *config.Config
	logger *internal.ZapLogger
	kv     storage.KeyValueStore
	tokens *session.TokenStore
	client *client.Client
	out    io.Writer
}

func (e *env) open(ctx context.Context) error {
	e.cfg = config.Load()
	logger, err := internal.NewLogger(e.cfg.LogLevel, e.cfg.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	e.logger = logger
	kv, err := storage.NewKeyValueStore(ctx, e.cfg, logger)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	e.kv = kv
	e.tokens = session.NewTokenStore(kv, logger)
	e.client = client.NewFromConfig(e.cfg, e.tokens, nil, logger)
	return nil
}

func (e *env) close() {
	if e.kv != nil {
		if err := e.kv.Close(); err != nil {
			e.logger.Errorf("close session store: %v", err)
		}
	}
	if e.logger != nil {
		_ = e.logger.Sync()
	}
}

var errNotLoggedIn = errors.New("not logged in: run `worksafe login` first")

// requireSession fails early with a login hint instead of a 401 round trip.
func (e *env) requireSession(ctx context.Context) error {
	if !e.tokens.Session(ctx).Active() {
		return errNotLoggedIn
	}
	return nil
}

func main() {
	e := &env{out: os.Stdout}
	rootCmd := &cobra.Command{
		Use:           "worksafe",
		Short:         "WorkSafe wellness client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.open(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			e.close()
		},
	}

	rootCmd.AddCommand(
		newLoginCmd(e),
		newLogoutCmd(e),
		newWhoamiCmd(e),
		newRegisterCmd(e),
		newCEPCmd(e),
		newAssessmentsCmd(e),
		newRecommendationsCmd(e),
		newAlertsCmd(e),
		newWearablesCmd(e),
		newDashboardCmd(e),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// PersistentPostRun is skipped when RunE fails
		e.close()
		fmt.Fprintln(os.Stderr, theme.Error.Render(internal.UserMessage(err)))
		os.Exit(1)
	}
}
