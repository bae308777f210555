package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tupyme/inventario-api/internal/domain"
	"github.com/tupyme/inventario-api/internal/domain/entity"
	"github.com/tupyme/inventario-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	pool *pgxpool.Pool
}

// NewOrganizationRepository construye el adaptador de persistencia para organizaciones.
func NewOrganizationRepository(pool *pgxpool.Pool) *OrganizationRepo {
	return &OrganizationRepo{pool: pool}
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(organization *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, nombre, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		organization.ID, organization.Nombre, organization.CreatedAt, organization.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	query := `SELECT id, nombre, created_at, updated_at FROM organizations WHERE id = $1`
	var o entity.Organization
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Nombre, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}
