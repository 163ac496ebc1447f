// Package txmanager runs functions inside serializable transactions over a
// metrics-wrapped dbmetrics.DB. The transaction is propagated through the
// context (dbmetrics.WithExecutor), so repositories join it transparently.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/capachica-turismo/reservas-service/pkg/dbmetrics"
)

// Serializable transactions abort with SQLSTATE 40001 when they conflict;
// the whole function is retried a bounded number of times.
const maxRetries = 3

const pqSerializationFailure = "40001"

var (
	// ErrBeginTx is returned when the transaction cannot be opened
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx is returned when the commit fails
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrTooManyRetries is returned when serialization retries are exhausted
	ErrTooManyRetries = errors.New("txmanager: serialization retries exhausted")
)

// TransactionManager runs serializable transactions over a metrics-wrapped DB
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a manager over a metrics-wrapped DB
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction, retrying on
// serialization failures. fn must be idempotent up to its own writes.
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
