package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/bet_tracker/internal/models"
	"github.com/SscSPs/bet_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankrollRepository struct {
	BaseRepository
}

func newPgxBankrollRepository(pool *pgxpool.Pool) portsrepo.BankrollRepositoryFacade {
	return &PgxBankrollRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BankrollRepositoryFacade = (*PgxBankrollRepository)(nil)

const fullBankrollSelectQuery = `
SELECT
	b.bankroll_id, b.user_id, b.name, b.color, b.description, b.baseline, b.is_default,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
FROM bankrolls b
`

func (r *PgxBankrollRepository) getBankrolls(ctx context.Context, filterQuery string, args ...any) ([]domain.Bankroll, error) {
	rows, err := r.Pool.Query(ctx, fullBankrollSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bankrolls", err)
	}
	defer rows.Close()
	bankrolls, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Bankroll])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Bankroll{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect bankroll rows", err)
	}
	return mapping.ToDomainBankrollSlice(bankrolls), nil
}

func (r *PgxBankrollRepository) FindBankrollByID(ctx context.Context, userID, bankrollID string) (*domain.Bankroll, error) {
	bankrolls, err := r.getBankrolls(ctx, `WHERE b.user_id = $1 AND b.bankroll_id = $2`, userID, bankrollID)
	if err != nil {
		return nil, err
	}
	if len(bankrolls) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &bankrolls[0], nil
}

func (r *PgxBankrollRepository) ListBankrolls(ctx context.Context, userID string) ([]domain.Bankroll, error) {
	return r.getBankrolls(ctx, `WHERE b.user_id = $1 ORDER BY b.created_at, b.bankroll_id`, userID)
}

// SaveBankroll inserts the bankroll. A new default clears the flag on the user's other bankrolls.
func (r *PgxBankrollRepository) SaveBankroll(ctx context.Context, bankroll domain.Bankroll) error {
	m := mapping.ToModelBankroll(bankroll)
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if m.IsDefault {
		if _, err := tx.Exec(ctx, `UPDATE bankrolls SET is_default = FALSE WHERE user_id = $1 AND is_default;`, m.UserID); err != nil {
			return apperrors.NewAppError(500, "failed to reset default bankroll", err)
		}
	}

	query := `
		INSERT INTO bankrolls (
			bankroll_id, user_id, name, color, description, baseline, is_default,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		m.BankrollID, m.UserID, m.Name, m.Color, m.Description, m.Baseline, m.IsDefault,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "bankroll "+bankroll.Name)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBankrollRepository) DeleteBankroll(ctx context.Context, userID, bankrollID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM bankrolls WHERE user_id = $1 AND bankroll_id = $2;`, userID, bankrollID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete bankroll "+bankrollID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
