package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/bet_tracker/internal/models"
	"github.com/SscSPs/bet_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBetEntryRepository struct {
	BaseRepository
}

// newPgxBetEntryRepository creates a new repository for bet entries.
func newPgxBetEntryRepository(pool *pgxpool.Pool) portsrepo.BetEntryRepositoryWithTx {
	return &PgxBetEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BetEntryRepositoryWithTx = (*PgxBetEntryRepository)(nil)

const fullBetEntrySelectQuery = `
SELECT
	e.entry_id, e.user_id, e.bet_date, e.bet_amount, e.winning_amount, e.net,
	e.notes, e.sport, e.league, e.bet_type, e.bankroll_id,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
FROM bet_entries e
`

// chronologicalBetEntryOrder replays same-timestamp entries in insertion order.
const chronologicalBetEntryOrder = ` ORDER BY e.bet_date, e.seq`

const insertBetEntryQuery = `
	INSERT INTO bet_entries (
		entry_id, user_id, bet_date, bet_amount, winning_amount, net,
		notes, sport, league, bet_type, bankroll_id,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
`

func betEntryInsertArgs(m models.BetEntry) []any {
	return []any{
		m.EntryID, m.UserID, m.BetDate, m.BetAmount, m.WinningAmount, m.Net,
		m.Notes, m.Sport, m.League, m.BetType, m.BankrollID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func (r *PgxBetEntryRepository) getBetEntries(ctx context.Context, filterQuery string, args ...any) ([]domain.BetEntry, error) {
	query := fullBetEntrySelectQuery + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bet entries", err)
	}
	defer rows.Close()
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BetEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.BetEntry{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect bet entry rows", err)
	}
	return mapping.ToDomainBetEntrySlice(entries), nil
}

func (r *PgxBetEntryRepository) FindBetEntryByID(ctx context.Context, userID, entryID string) (*domain.BetEntry, error) {
	entries, err := r.getBetEntries(ctx, `WHERE e.user_id = $1 AND e.entry_id = $2`, userID, entryID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &entries[0], nil
}

// ListBetEntries pages newest first on the (bet_date, entry_id) keyset.
func (r *PgxBetEntryRepository) ListBetEntries(ctx context.Context, userID string, params portsrepo.ListBetEntriesParams) ([]domain.BetEntry, error) {
	args := []any{userID}
	filter := `WHERE e.user_id = $1`
	if params.BankrollID != nil {
		args = append(args, *params.BankrollID)
		filter += fmt.Sprintf(` AND e.bankroll_id = $%d`, len(args))
	}
	if params.After != nil {
		args = append(args, params.After.Date.UTC(), params.After.EntryID)
		filter += fmt.Sprintf(` AND (e.bet_date, e.entry_id) < ($%d, $%d)`, len(args)-1, len(args))
	}
	filter += ` ORDER BY e.bet_date DESC, e.entry_id DESC`
	if params.Limit > 0 {
		args = append(args, params.Limit)
		filter += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	return r.getBetEntries(ctx, filter, args...)
}

func (r *PgxBetEntryRepository) ListAllBetEntries(ctx context.Context, userID string, bankrollID *string) ([]domain.BetEntry, error) {
	if bankrollID != nil {
		return r.getBetEntries(ctx, `WHERE e.user_id = $1 AND e.bankroll_id = $2`+chronologicalBetEntryOrder, userID, *bankrollID)
	}
	return r.getBetEntries(ctx, `WHERE e.user_id = $1`+chronologicalBetEntryOrder, userID)
}

func (r *PgxBetEntryRepository) SaveBetEntry(ctx context.Context, entry domain.BetEntry) error {
	m := mapping.ToModelBetEntry(entry)
	if _, err := r.Pool.Exec(ctx, insertBetEntryQuery, betEntryInsertArgs(m)...); err != nil {
		return mapWriteError(err, "bet entry "+entry.EntryID)
	}
	return nil
}

// SaveBetEntries inserts all entries in one transaction; either every row lands or none.
func (r *PgxBetEntryRepository) SaveBetEntries(ctx context.Context, entries []domain.BetEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(insertBetEntryQuery, betEntryInsertArgs(mapping.ToModelBetEntry(entry))...)
	}
	br := tx.SendBatch(ctx, batch)
	for _, entry := range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return mapWriteError(err, "bet entry "+entry.EntryID)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close bet entry batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBetEntryRepository) UpdateBetEntry(ctx context.Context, entry domain.BetEntry) error {
	m := mapping.ToModelBetEntry(entry)
	query := `
		UPDATE bet_entries
		SET bet_date = $3, bet_amount = $4, winning_amount = $5, net = $6,
			notes = $7, sport = $8, league = $9, bet_type = $10, bankroll_id = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE user_id = $1 AND entry_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.EntryID,
		m.BetDate, m.BetAmount, m.WinningAmount, m.Net,
		m.Notes, m.Sport, m.League, m.BetType, m.BankrollID,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "bet entry "+entry.EntryID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBetEntryRepository) DeleteBetEntry(ctx context.Context, userID, entryID string) error {
	query := `DELETE FROM bet_entries WHERE user_id = $1 AND entry_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete bet entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
