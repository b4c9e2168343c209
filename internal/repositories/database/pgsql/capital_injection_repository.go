package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/bet_tracker/internal/models"
	"github.com/SscSPs/bet_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCapitalInjectionRepository struct {
	BaseRepository
}

func newPgxCapitalInjectionRepository(pool *pgxpool.Pool) portsrepo.CapitalInjectionRepositoryFacade {
	return &PgxCapitalInjectionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CapitalInjectionRepositoryFacade = (*PgxCapitalInjectionRepository)(nil)

func (r *PgxCapitalInjectionRepository) ListCapitalInjections(ctx context.Context, userID string) ([]domain.CapitalInjection, error) {
	query := `
		SELECT injection_id, user_id, injection_date, amount, notes, trigger_event_id, source, created_at
		FROM capital_injections
		WHERE user_id = $1
		ORDER BY injection_date, injection_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query capital injections", err)
	}
	defer rows.Close()
	injections, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CapitalInjection])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CapitalInjection{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect capital injection rows", err)
	}
	return mapping.ToDomainCapitalInjectionSlice(injections), nil
}

// ReplaceCapitalInjections swaps the user's whole projection in a single transaction.
func (r *PgxCapitalInjectionRepository) ReplaceCapitalInjections(ctx context.Context, userID string, injections []domain.CapitalInjection) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM capital_injections WHERE user_id = $1;`, userID); err != nil {
		return apperrors.NewAppError(500, "failed to clear capital injections", err)
	}

	if len(injections) > 0 {
		query := `
			INSERT INTO capital_injections (
				injection_id, user_id, injection_date, amount, notes, trigger_event_id, source, created_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`
		now := time.Now().UTC()
		batch := &pgx.Batch{}
		for _, inj := range injections {
			inj.UserID = userID
			m := mapping.ToModelCapitalInjection(inj, now)
			batch.Queue(query, m.InjectionID, m.UserID, m.InjectionDate, m.Amount, m.Notes, m.TriggerEventID, m.Source, m.CreatedAt)
		}
		br := tx.SendBatch(ctx, batch)
		for range injections {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return apperrors.NewAppError(500, "failed to insert capital injection", err)
			}
		}
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to close capital injection batch", err)
		}
	}

	return r.Commit(ctx, tx)
}
