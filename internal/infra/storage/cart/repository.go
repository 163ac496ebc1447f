package cart

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	"github.com/capachica-turismo/reservas-service/pkg/dbmetrics"
	"github.com/capachica-turismo/reservas-service/pkg/psqlbuilder"
)

var itemColumns = []string{
	"id",
	"reserva_id",
	"servicio_id",
	"emprendedor_id",
	"fecha_inicio",
	"fecha_fin",
	"hora_inicio",
	"hora_fin",
	"duracion_minutos",
	"cantidad",
	"notas_cliente",
	"estado",
	"created_at",
	"updated_at",
}

// Repository stores carts (reservas) and their line items
// (reserva_servicios).
type Repository struct {
	db DBExecutor
}

// NewRepository creates a cart repository over the given executor
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPendingByUser returns the user's pending cart with its items ordered
// by insertion. When called inside a transaction the cart row is locked
// with FOR UPDATE so concurrent adds against the same cart serialize.
func (r *Repository) GetPendingByUser(ctx context.Context, userID int64) (*domain.Cart, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"usuario_id",
		"codigo_reserva",
		"estado",
		"created_at",
		"updated_at",
	).
		From("reservas").
		Where(squirrel.Eq{"usuario_id": userID, "estado": domain.CartStatusPending})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingByUser - build select query: %v", ErrBuildQuery, err)
	}

	var cart domain.Cart
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.Code,
		&cart.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingByUser - scan cart: %v", ErrScanRow, err)
	}

	cart.CreatedAt = createdAt.Time
	cart.UpdatedAt = updatedAt.Time

	items, err := r.getItemsByCart(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	return &cart, nil
}

// Create creates a new pending cart for the user
func (r *Repository) Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservas").
		Columns("usuario_id", "codigo_reserva", "estado").
		Values(cart.UserID, cart.Code, cart.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cart.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	cart.CreatedAt = createdAt.Time
	cart.UpdatedAt = updatedAt.Time

	return cart, nil
}

// AddItem inserts a line item into the cart
func (r *Repository) AddItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reserva_servicios").
		Columns(
			"reserva_id",
			"servicio_id",
			"emprendedor_id",
			"fecha_inicio",
			"fecha_fin",
			"hora_inicio",
			"hora_fin",
			"duracion_minutos",
			"cantidad",
			"notas_cliente",
			"estado",
		).
		Values(
			item.CartID,
			item.ServiceID,
			item.EmprendedorID,
			item.StartDate,
			item.EndDate,
			item.StartTime,
			item.EndTime,
			item.DurationMin,
			item.Quantity,
			item.ClientNotes,
			item.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddItem - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: AddItem - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return item, nil
}

// GetItemByID returns a single line item
func (r *Repository) GetItemByID(ctx context.Context, itemID int64) (*domain.CartItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("reserva_servicios").
		Where(squirrel.Eq{"id": itemID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetItemByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetItemByID - scan item: %v", ErrScanRow, err)
	}

	return item, nil
}

// DeleteItem removes a line item by id
func (r *Repository) DeleteItem(ctx context.Context, itemID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reserva_servicios").
		Where(squirrel.Eq{"id": itemID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteItem - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteItem - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteItem - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteItemsByCart removes every line item of a cart
func (r *Repository) DeleteItemsByCart(ctx context.Context, cartID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reserva_servicios").
		Where(squirrel.Eq{"reserva_id": cartID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteItemsByCart - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteItemsByCart - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete removes the cart row itself
func (r *Repository) Delete(ctx context.Context, cartID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservas").
		Where(squirrel.Eq{"id": cartID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCartNotFound
	}

	return nil
}

// UpdateStatus updates the cart status
func (r *Repository) UpdateStatus(ctx context.Context, cartID int64, status domain.CartStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cartID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCartNotFound
	}

	return nil
}

// UpdateItemsStatus updates the status of every line item of a cart
func (r *Repository) UpdateItemsStatus(ctx context.Context, cartID int64, status domain.ItemStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reserva_servicios").
		Set("estado", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reserva_id": cartID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateItemsStatus - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateItemsStatus - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// GetActiveItemsByServiceAndDate returns every non-cancelled line item of a
// service whose date range covers the given date, across all carts. Used by
// the availability check; inside a transaction the rows are locked with
// FOR UPDATE to prevent double-booking races.
func (r *Repository) GetActiveItemsByServiceAndDate(ctx context.Context, serviceID int64, date time.Time) ([]*domain.CartItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(itemColumns...).
		From("reserva_servicios").
		Where(squirrel.Eq{"servicio_id": serviceID}).
		Where(squirrel.NotEq{"estado": domain.ItemStatusCancelled}).
		Where(squirrel.LtOrEq{"fecha_inicio": date}).
		Where(squirrel.Expr("COALESCE(fecha_fin, fecha_inicio) >= ?", date)).
		OrderBy("hora_inicio ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveItemsByServiceAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveItemsByServiceAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *Repository) getItemsByCart(ctx context.Context, cartID int64) ([]*domain.CartItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("reserva_servicios").
		Where(squirrel.Eq{"reserva_id": cartID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getItemsByCart - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getItemsByCart - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.CartItem, error) {
	var item domain.CartItem
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.CartID,
		&item.ServiceID,
		&item.EmprendedorID,
		&item.StartDate,
		&item.EndDate,
		&item.StartTime,
		&item.EndTime,
		&item.DurationMin,
		&item.Quantity,
		&item.ClientNotes,
		&item.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}

func scanItems(rows *sql.Rows) ([]*domain.CartItem, error) {
	items := make([]*domain.CartItem, 0)

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanItems - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
