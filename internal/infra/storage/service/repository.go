package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	"github.com/capachica-turismo/reservas-service/pkg/dbmetrics"
	"github.com/capachica-turismo/reservas-service/pkg/psqlbuilder"
)

// Repository reads tourist service (servicio) reference data.
// Services are catalog-owned and never written here.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a service reference-data repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID returns a service by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"emprendedor_id",
		"nombre",
		"tipo_servicio",
		"precio_referencial",
		"moneda",
		"latitud",
		"longitud",
		"capacidad",
	).
		From("servicios").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.EmprendedorID,
		&svc.Name,
		&svc.Type,
		&svc.BasePrice,
		&svc.Currency,
		&svc.Latitude,
		&svc.Longitude,
		&svc.Capacity,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}
