package repository

import (
	"context"
	"errors"

	"movie-booking/pkg/database"

	"github.com/jackc/pgx/v5"
)

// runInTx executes fn inside a single database transaction. A nil error from
// fn commits; anything else rolls the whole unit of work back.
func runInTx(ctx context.Context, db database.PgxIface, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
