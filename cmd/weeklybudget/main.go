package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"weeklybudget/internal/backend"
	"weeklybudget/internal/cli"
	"weeklybudget/internal/config"
	"weeklybudget/internal/core"
	"weeklybudget/internal/ledger"
	applog "weeklybudget/internal/log"
)

var version = "dev"

// app is what every command works with once the root command has loaded
// configuration and opened the store.
type app struct {
	cfg     *config.Config
	logger  *applog.Logger
	ledger  *ledger.Ledger
	backend *backend.BackendResult
}

func (a *app) close() {
	if a == nil || a.backend == nil || a.backend.Cleanup == nil {
		return
	}
	if err := a.backend.Cleanup(); err != nil {
		a.logger.Error("Failed to release backend", applog.FieldError, err)
	}
	a.backend = nil
}

func newRootCmd(a *app) *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "weeklybudget",
		Short: "Weekly budget ledger",
		Long: `weeklybudget tracks spending against a weekly limit.

Weeks run Monday to Sunday. The first command after a week ends archives
the finished week and starts a fresh one.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envFile != "" {
				cli.LoadEnvFile(envFile)
			} else {
				cli.LoadEnvFile()
			}
			return a.setup(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "environment file to load (default: .env)")

	root.AddCommand(
		statusCmd(a),
		onboardCmd(a),
		limitCmd(a),
		expenseCmd(a),
		incomeCmd(a),
		weeksCmd(a),
		weekCmd(a),
		categoriesCmd(a),
		listenCmd(a),
	)
	return root
}

// setup loads configuration and wires the backend into a ledger.
func (a *app) setup(ctx context.Context) error {
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cli.SetupLogger(cfg)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return err
	}
	result, err := backend.NewFactory(a.logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", backendCfg.Type, err)
	}
	a.backend = result

	a.ledger = ledger.New(result.Store, ledger.Options{
		Logger:   a.logger,
		Location: loc,
		Notifier: result.Notifier,
	})
	a.logger.Debug("Ledger ready",
		applog.FieldBackend, backendCfg.Type.String(),
		"timezone", loc.String(),
		"notifications", result.Notifier != nil)
	return nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	a := &app{logger: applog.Discard()}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)
	return root.ExecuteContext(applog.WithRunID(ctx, uuid.NewString()))
}

// errorMessage hides storage details behind the ledger's user message while
// letting configuration and usage errors through as they are.
func errorMessage(err error) string {
	if _, ok := ledger.KindOf(err); ok {
		return ledger.UserMessage(err)
	}
	for _, target := range []error{core.ErrInvalidAmount, core.ErrInvalidCategory, core.ErrInvalidLimit, core.ErrDescriptionTooLong} {
		if errors.Is(err, target) {
			return ledger.UserMessage(err)
		}
	}
	return err.Error()
}

func main() {
	ctx, cancel := cli.ShutdownContext(context.Background(), applog.Discard())
	err := run(ctx, os.Args[1:], os.Stdout)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(errorMessage(err)))
		os.Exit(1)
	}
}
