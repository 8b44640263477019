package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/service"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// querier - общее подмножество pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// conn возвращает транзакцию из контекста или пул
func conn(ctx context.Context, db *pgxpool.Pool) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db
}

type Transactor struct {
	db *pgxpool.Pool
}

func NewTransactor(db *pgxpool.Pool) service.Transactor {
	return &Transactor{db: db}
}

// WithinTx открывает транзакцию и кладёт её в контекст; вложенные вызовы
// используют уже открытую транзакцию.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return pgx.BeginFunc(ctx, t.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func isUniqueViolation(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr, true
	}
	return nil, false
}

func conflictOnUnique(err error, reason string) error {
	if pgErr, ok := isUniqueViolation(err); ok {
		return &apperror.ConflictError{Reason: fmt.Sprintf("%s (%s)", reason, pgErr.ConstraintName), Err: err}
	}
	return err
}

// conflictOnReference: строка, на которую сослалась параллельная транзакция,
// удаляться не должна - внешний ключ отклоняет удаление
func conflictOnReference(err error, reason string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return &apperror.ConflictError{Reason: fmt.Sprintf("%s (%s)", reason, pgErr.ConstraintName), Err: err}
	}
	return err
}
