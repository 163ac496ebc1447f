// Package simpletxmanager is the txmanager counterpart for a raw *sql.DB,
// used when metrics are disabled.
package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/capachica-turismo/reservas-service/pkg/dbmetrics"
)

const maxRetries = 3

const pqSerializationFailure = "40001"

var (
	// ErrBeginTx is returned when the transaction cannot be opened
	ErrBeginTx = errors.New("simpletxmanager: failed to begin transaction")

	// ErrCommitTx is returned when the commit fails
	ErrCommitTx = errors.New("simpletxmanager: failed to commit transaction")

	// ErrTooManyRetries is returned when serialization retries are exhausted
	ErrTooManyRetries = errors.New("simpletxmanager: serialization retries exhausted")
)

// TransactionManager runs serializable transactions over a plain *sql.DB
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a manager over a plain database handle
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction, retrying on
// serialization failures (SQLSTATE 40001).
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBeginTx, err)
		}

		err = fn(dbmetrics.WithExecutor(ctx, tx))
		if err != nil {
			_ = tx.Rollback()
			if isSerializationFailure(err) {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if isSerializationFailure(err) {
				lastErr = err
				continue
			}
			return fmt.Errorf("%w: %v", ErrCommitTx, err)
		}

		return nil
	}

	return fmt.Errorf("%w: %v", ErrTooManyRetries, lastErr)
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure
	}
	return false
}
