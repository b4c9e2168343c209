package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/bet_tracker/internal/core/services"
	"github.com/SscSPs/bet_tracker/internal/platform/config"
	"github.com/SscSPs/bet_tracker/internal/repositories/local"
)

// localUserID owns every record of a local document.
const localUserID = "local"

func main() {
	var (
		file    = flag.String("file", "ledger.json", "Ledger document path")
		tz      = flag.String("tz", "", "Time zone defining local calendar days (default LEDGER_TIMEZONE, else UTC)")
		verbose = flag.Bool("v", false, "Verbose logging")
	)
	flag.Usage = func() { usage(os.Stderr) }
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	args := flag.Args()
	if len(args) == 0 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.LoadCLIConfig(*tz)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	app, err := newApp(context.Background(), *file, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := app.dispatch(args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// newApp opens the document and wires the ledger services over it. A document
// that was migrated or partially cleared gets its injections re-derived.
func newApp(ctx context.Context, path string, cfg *config.CLIConfig) (*app, error) {
	loc := cfg.LedgerLocation
	store, err := local.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	ledgerSvc := services.NewLedgerService(store, store, store, store, services.WithLedgerLocation(loc))
	a := &app{
		ctx:     ctx,
		cfg:     cfg,
		out:     os.Stdout,
		ledger:  ledgerSvc,
		entries: services.NewBetEntryService(store, ledgerSvc, services.WithEntryLocation(loc)),
		tips:    services.NewTipExpenseService(store, ledgerSvc),
	}

	report := store.Report()
	for _, cleared := range report.Cleared {
		slog.Warn("Discarded invalid section", slog.String("section", cleared.Section), slog.String("error", cleared.Err.Error()))
	}
	if report.NeedsRecompute() {
		slog.Info("Re-deriving capital injections", slog.Int("from_version", report.FromVersion))
		if _, err := ledgerSvc.Recompute(ctx, localUserID); err != nil {
			return nil, fmt.Errorf("recompute injections: %w", err)
		}
	}
	return a, nil
}
