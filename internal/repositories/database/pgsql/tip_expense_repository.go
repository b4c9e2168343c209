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

type PgxTipExpenseRepository struct {
	BaseRepository
}

func newPgxTipExpenseRepository(pool *pgxpool.Pool) portsrepo.TipExpenseRepositoryFacade {
	return &PgxTipExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TipExpenseRepositoryFacade = (*PgxTipExpenseRepository)(nil)

const fullTipExpenseSelectQuery = `
SELECT
	t.expense_id, t.user_id, t.expense_date, t.amount, t.provider, t.notes,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM tip_expenses t
`

func (r *PgxTipExpenseRepository) getTipExpenses(ctx context.Context, filterQuery string, args ...any) ([]domain.TipExpense, error) {
	query := fullTipExpenseSelectQuery + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tip expenses", err)
	}
	defer rows.Close()
	expenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TipExpense])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.TipExpense{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect tip expense rows", err)
	}
	return mapping.ToDomainTipExpenseSlice(expenses), nil
}

func (r *PgxTipExpenseRepository) FindTipExpenseByID(ctx context.Context, userID, expenseID string) (*domain.TipExpense, error) {
	expenses, err := r.getTipExpenses(ctx, `WHERE t.user_id = $1 AND t.expense_id = $2`, userID, expenseID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &expenses[0], nil
}

// chronologicalTipExpenseOrder replays same-timestamp expenses in insertion order.
const chronologicalTipExpenseOrder = ` ORDER BY t.expense_date, t.seq`

func (r *PgxTipExpenseRepository) ListTipExpenses(ctx context.Context, userID string) ([]domain.TipExpense, error) {
	return r.getTipExpenses(ctx, `WHERE t.user_id = $1`+chronologicalTipExpenseOrder, userID)
}

func (r *PgxTipExpenseRepository) SaveTipExpense(ctx context.Context, expense domain.TipExpense) error {
	m := mapping.ToModelTipExpense(expense)
	query := `
		INSERT INTO tip_expenses (
			expense_id, user_id, expense_date, amount, provider, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.UserID, m.ExpenseDate, m.Amount, m.Provider, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "tip expense "+expense.ExpenseID)
	}
	return nil
}

func (r *PgxTipExpenseRepository) UpdateTipExpense(ctx context.Context, expense domain.TipExpense) error {
	m := mapping.ToModelTipExpense(expense)
	query := `
		UPDATE tip_expenses
		SET expense_date = $3, amount = $4, provider = $5, notes = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE user_id = $1 AND expense_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.ExpenseID,
		m.ExpenseDate, m.Amount, m.Provider, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "tip expense "+expense.ExpenseID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTipExpenseRepository) DeleteTipExpense(ctx context.Context, userID, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM tip_expenses WHERE user_id = $1 AND expense_id = $2;`, userID, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete tip expense "+expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
