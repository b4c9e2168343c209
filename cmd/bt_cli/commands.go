package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/SscSPs/bet_tracker/internal/platform/config"
	"github.com/SscSPs/bet_tracker/internal/utils"
	"github.com/shopspring/decimal"
)

type app struct {
	ctx     context.Context
	cfg     *config.CLIConfig
	out     io.Writer
	ledger  portssvc.LedgerSvcFacade
	entries portssvc.BetEntrySvcFacade
	tips    portssvc.TipExpenseSvcFacade
}

func usage(w io.Writer) {
	fmt.Fprint(w, `bt_cli [flags] <command> [args]

Global Flags:
  -file   ledger document path (default ledger.json)
  -tz     time zone defining local calendar days (env: LEDGER_TIMEZONE)
  -v      verbose logging

Commands:
  import <csv>                  import bets, skipping duplicates and invalid rows
  export [csv]                  export bets as CSV (stdout when no file)
  bet add -date D -bet N -win N [-notes S]
                                log one bet (date is RFC 3339 or a local YYYY-MM-DD[ HH:MM])
  bet edit <id> -date D -bet N -win N [-notes S]
                                replace every field of a bet
  bet delete <id>               delete a bet
  bet list [-limit N]           list bets, newest first
  tip add -date D -amount N [-provider S] [-notes S]
                                record a tip expense
  tip delete <id>               delete a tip expense
  tip list                      list tip expenses
  baseline [amount|clear]       show, set or clear the starting baseline
  summary [flags]               balance series and statistics
      -window all|ytd|last-n-days|custom  -days N  -from YYYY-MM-DD  -to YYYY-MM-DD
      -granularity per-bet|per-day        -points (include the series)
  streaks                       win and loss streak analysis
  injections                    list derived capital injections
  token -user ID [-ttl 24h]     mint an API access token signed with JWT_SECRET (env or .env)
`)
}

func (a *app) dispatch(args []string) error {
	switch args[0] {
	case "import":
		return a.importCmd(args[1:])
	case "export":
		return a.exportCmd(args[1:])
	case "bet":
		return a.betCmd(args[1:])
	case "tip":
		return a.tipCmd(args[1:])
	case "baseline":
		return a.baselineCmd(args[1:])
	case "summary":
		return a.summaryCmd(args[1:])
	case "streaks":
		return a.streaksCmd()
	case "injections":
		return a.injectionsCmd()
	case "token":
		return a.tokenCmd(args[1:])
	case "help", "-h", "--help":
		usage(a.out)
		return nil
	default:
		usage(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (a *app) importCmd(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: bt_cli import <csv>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := a.entries.ImportBetEntries(a.ctx, localUserID, nil, f)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, result.Summary())
	for _, row := range result.InvalidRows {
		fmt.Fprintf(a.out, "  line %d: %s\n", row.Line, row.Reason)
	}
	return nil
}

func (a *app) exportCmd(args []string) error {
	if len(args) > 1 {
		return errors.New("usage: bt_cli export [csv]")
	}
	w := a.out
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return a.entries.ExportBetEntries(a.ctx, localUserID, nil, w)
}

func (a *app) baselineCmd(args []string) error {
	switch {
	case len(args) == 0:
		baseline, err := a.ledger.GetBaseline(a.ctx, localUserID)
		if err != nil {
			return err
		}
		return a.write(dto.ToBaselineResponse(baseline))
	case len(args) == 1 && strings.EqualFold(args[0], "clear"):
		baseline, err := a.ledger.SetBaseline(a.ctx, localUserID, nil)
		if err != nil {
			return err
		}
		return a.write(dto.ToBaselineResponse(baseline))
	case len(args) == 1:
		amount, err := decimal.NewFromString(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}
		baseline, err := a.ledger.SetBaseline(a.ctx, localUserID, &amount)
		if err != nil {
			return err
		}
		return a.write(dto.ToBaselineResponse(baseline))
	default:
		return errors.New("usage: bt_cli baseline [amount|clear]")
	}
}

func (a *app) summaryCmd(args []string) error {
	fs := flag.NewFlagSet("bt_cli summary", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	params := dto.LedgerQueryParams{}
	fs.StringVar(&params.Window, "window", "all", "all|ytd|last-n-days|custom")
	fs.IntVar(&params.Days, "days", 0, "days for last-n-days")
	fs.StringVar(&params.From, "from", "", "first local day of a custom window")
	fs.StringVar(&params.To, "to", "", "last local day of a custom window, inclusive")
	fs.StringVar(&params.Granularity, "granularity", "per-bet", "per-bet|per-day")
	withPoints := fs.Bool("points", false, "include the balance series")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view, err := a.ledger.GetLedgerView(a.ctx, localUserID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrBaselineNotSet) {
			return errors.New("no baseline configured: run `bt_cli baseline <amount>` first")
		}
		return err
	}
	if !*withPoints {
		return a.write(view.Summary)
	}
	return a.write(view)
}

func (a *app) streaksCmd() error {
	report, err := a.ledger.GetStreaks(a.ctx, localUserID, nil)
	if err != nil {
		return err
	}
	return a.write(report)
}

func (a *app) injectionsCmd() error {
	injections, err := a.ledger.ListCapitalInjections(a.ctx, localUserID)
	if err != nil {
		return err
	}
	return a.write(dto.ToListCapitalInjectionsResponse(injections))
}

func (a *app) tokenCmd(args []string) error {
	fs := flag.NewFlagSet("bt_cli token", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	userID := fs.String("user", "", "subject of the token")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	secret, err := a.cfg.SigningSecret()
	if err != nil {
		return err
	}
	now := time.Now()
	token, err := utils.GenerateJWT(strings.TrimSpace(*userID), secret, *ttl, now)
	if err != nil {
		return err
	}
	return a.write(map[string]any{"token": token, "expiresAt": now.Add(*ttl).UTC()})
}

func (a *app) write(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}
