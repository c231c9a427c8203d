package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Jupiter-12/kanban/internal/core/ports"
)

type txKey struct{}

// Transactor implements ports.Transactor by carrying the open *sqlx.Tx in the
// context. Repositories route their statements through queryerFrom, so any
// repository call made with the context passed to fn joins the transaction.
type Transactor struct {
	db *sqlx.DB
}

var _ ports.Transactor = (*Transactor)(nil)

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested calls join the outer transaction.
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// queryer is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx that the
// repositories need.
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// queryerFrom returns the in-flight transaction when the context carries one,
// the plain connection pool otherwise.
func queryerFrom(ctx context.Context, db *sqlx.DB) queryer {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}
