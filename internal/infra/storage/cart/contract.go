package cart

import (
	"context"
	"database/sql"

	"github.com/capachica-turismo/reservas-service/pkg/dbmetrics"
)

// Executor interfaces are shared with dbmetrics so the repository works the
// same over *sql.DB and the metrics-wrapped handle.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions; satisfied by *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
