package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/peoplecore/backoffice-go/internal/pkg/database"
)

type contextTx struct {
	pgx.Tx
}

func TestGetQuerier_PrefersContextTransaction(t *testing.T) {
	db := &database.DB{}
	tx := &contextTx{}

	got := GetQuerier(ContextWithTx(context.Background(), tx), db)
	assert.Same(t, tx, got)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}

	got := GetQuerier(context.Background(), db)
	assert.Equal(t, db.Pool, got)
}
