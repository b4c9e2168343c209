package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/SscSPs/bet_tracker/internal/core/csvio"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

func (a *app) betCmd(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: bt_cli bet add|edit|delete|list")
	}
	switch args[0] {
	case "add":
		req, err := a.parseBetFlags("bt_cli bet add", args[1:])
		if err != nil {
			return err
		}
		entry, err := a.entries.CreateBetEntry(a.ctx, localUserID, req)
		if err != nil {
			return err
		}
		return a.write(dto.ToBetEntryResponse(entry))
	case "edit":
		if len(args) < 2 {
			return errors.New("usage: bt_cli bet edit <id> -date D -bet N -win N [-notes S]")
		}
		req, err := a.parseBetFlags("bt_cli bet edit", args[2:])
		if err != nil {
			return err
		}
		entry, err := a.entries.UpdateBetEntry(a.ctx, localUserID, args[1], dto.UpdateBetEntryRequest(req))
		if err != nil {
			return err
		}
		return a.write(dto.ToBetEntryResponse(entry))
	case "delete":
		if len(args) != 2 {
			return errors.New("usage: bt_cli bet delete <id>")
		}
		if err := a.entries.DeleteBetEntry(a.ctx, localUserID, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "deleted bet %s\n", args[1])
		return nil
	case "list":
		fs := flag.NewFlagSet("bt_cli bet list", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		params := dto.ListBetEntriesParams{}
		fs.IntVar(&params.Limit, "limit", 50, "page size")
		fs.StringVar(&params.NextToken, "next", "", "token of the next page")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		page, err := a.entries.ListBetEntries(a.ctx, localUserID, params)
		if err != nil {
			return err
		}
		return a.write(page)
	default:
		return fmt.Errorf("unknown bet command: %s", args[0])
	}
}

func (a *app) tipCmd(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: bt_cli tip add|delete|list")
	}
	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("bt_cli tip add", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		date := fs.String("date", "", "when the tip was paid")
		amount := fs.String("amount", "", "amount paid")
		provider := fs.String("provider", "", "who was paid")
		notes := fs.String("notes", "", "free text")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		req := dto.CreateTipExpenseRequest{Provider: *provider, Notes: *notes}
		var err error
		if req.Date, err = csvio.ParseDate(*date, a.cfg.LedgerLocation); err != nil {
			return err
		}
		if req.Amount, err = parseAmount("amount", *amount); err != nil {
			return err
		}
		expense, err := a.tips.CreateTipExpense(a.ctx, localUserID, req)
		if err != nil {
			return err
		}
		return a.write(dto.ToTipExpenseResponse(expense))
	case "delete":
		if len(args) != 2 {
			return errors.New("usage: bt_cli tip delete <id>")
		}
		if err := a.tips.DeleteTipExpense(a.ctx, localUserID, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "deleted tip expense %s\n", args[1])
		return nil
	case "list":
		expenses, err := a.tips.ListTipExpenses(a.ctx, localUserID)
		if err != nil {
			return err
		}
		return a.write(dto.ToTipExpenseResponses(expenses))
	default:
		return fmt.Errorf("unknown tip command: %s", args[0])
	}
}

func (a *app) parseBetFlags(name string, args []string) (dto.CreateBetEntryRequest, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	date := fs.String("date", "", "when the bet was placed")
	bet := fs.String("bet", "", "amount wagered")
	win := fs.String("win", "0", "amount returned, 0 when lost")
	req := dto.CreateBetEntryRequest{}
	fs.StringVar(&req.Notes, "notes", "", "free text")
	fs.StringVar(&req.Sport, "sport", "", "sport")
	fs.StringVar(&req.League, "league", "", "league")
	fs.StringVar(&req.BetType, "type", "", "bet type")
	if err := fs.Parse(args); err != nil {
		return req, err
	}

	var err error
	if req.Date, err = csvio.ParseDate(*date, a.cfg.LedgerLocation); err != nil {
		return req, err
	}
	if req.BetAmount, err = parseAmount("bet", *bet); err != nil {
		return req, err
	}
	if req.WinningAmount, err = parseAmount("win", *win); err != nil {
		return req, err
	}
	return req, nil
}

func parseAmount(name, raw string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid -%s %q: %w", name, raw, err)
	}
	return &d, nil
}
