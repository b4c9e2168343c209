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

type PgxBaselineRepository struct {
	BaseRepository
}

func newPgxBaselineRepository(pool *pgxpool.Pool) portsrepo.BaselineRepositoryFacade {
	return &PgxBaselineRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BaselineRepositoryFacade = (*PgxBaselineRepository)(nil)

func (r *PgxBaselineRepository) FindBaseline(ctx context.Context, userID string) (*domain.Baseline, error) {
	query := `SELECT user_id, baseline, last_updated_at FROM ledger_settings WHERE user_id = $1;`
	var m models.LedgerSettings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&m.UserID, &m.Baseline, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find baseline for user "+userID, err)
	}
	baseline := mapping.ToDomainBaseline(m)
	return &baseline, nil
}

// SaveBaseline upserts the settings row; a NULL baseline means cleared.
func (r *PgxBaselineRepository) SaveBaseline(ctx context.Context, baseline domain.Baseline) error {
	m := mapping.ToModelLedgerSettings(baseline)
	query := `
		INSERT INTO ledger_settings (user_id, baseline, last_updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET baseline = EXCLUDED.baseline, last_updated_at = EXCLUDED.last_updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, m.UserID, m.Baseline, m.LastUpdatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to save baseline for user "+baseline.UserID, err)
	}
	return nil
}
