package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

// rollbackTx stubs the one pgx.Tx method Rollback touches.
type rollbackTx struct {
	pgx.Tx
	err error
}

func (t rollbackTx) Rollback(context.Context) error { return t.err }

func TestBaseRepository_Rollback(t *testing.T) {
	r := &BaseRepository{}
	ctx := context.Background()

	assert.NoError(t, r.Rollback(ctx, rollbackTx{}))
	assert.NoError(t, r.Rollback(ctx, rollbackTx{err: pgx.ErrTxClosed}), "rollback after commit")
	assert.NoError(t, r.Rollback(ctx, rollbackTx{err: sql.ErrTxDone}))

	err := r.Rollback(ctx, rollbackTx{err: errors.New("conn reset")})
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
}
