package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tupyme/inventario-api/internal/domain/entity"
	"github.com/tupyme/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, organization_id, product_id, producto_nombre, producto_sku,
	producto_categoria, producto_formato, tipo, cantidad, stock_antes, stock_despues,
	motivo, usuario, usuario_rol, fecha`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.OrganizationID, movement.ProductID, movement.ProductoNombre,
		movement.ProductoSKU, movement.ProductoCategoria, movement.ProductoFormato,
		movement.Tipo, movement.Cantidad, movement.StockAntes, movement.StockDespues,
		movement.Motivo, movement.Usuario, movement.UsuarioRol, movement.Fecha,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// movementWhere arma la cláusula WHERE según el filtro, con argumentos posicionales.
func movementWhere(organizationID string, filter repository.MovementFilter) (string, []any) {
	where := " WHERE organization_id = $1"
	args := []any{organizationID}
	pos := 2
	if filter.ProductID != "" {
		where += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Tipo != "" {
		where += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, filter.Tipo)
		pos++
	}
	if filter.Desde != nil {
		where += fmt.Sprintf(" AND fecha >= $%d", pos)
		args = append(args, *filter.Desde)
		pos++
	}
	if filter.Hasta != nil {
		where += fmt.Sprintf(" AND fecha <= $%d", pos)
		args = append(args, *filter.Hasta)
		pos++
	}
	if filter.Q != "" {
		where += fmt.Sprintf(" AND (producto_nombre ILIKE $%d OR producto_sku ILIKE $%d)", pos, pos)
		args = append(args, "%"+filter.Q+"%")
	}
	return where, args
}

// ListByOrganization lista movimientos del más reciente al más antiguo, con filtros opcionales.
func (r *MovementRepo) ListByOrganization(organizationID string, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	where, args := movementWhere(organizationID, filter)
	pos := len(args) + 1
	query := `SELECT ` + movementColumns + ` FROM movements` + where +
		fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.ProductID, &m.ProductoNombre,
			&m.ProductoSKU, &m.ProductoCategoria, &m.ProductoFormato, &m.Tipo, &m.Cantidad,
			&m.StockAntes, &m.StockDespues, &m.Motivo, &m.Usuario, &m.UsuarioRol, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByOrganization cuenta los movimientos que satisfacen el filtro.
func (r *MovementRepo) CountByOrganization(organizationID string, filter repository.MovementFilter) (int, error) {
	where, args := movementWhere(organizationID, filter)
	query := `SELECT COUNT(*) FROM movements` + where
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}

// DeleteByProduct elimina el historial de un producto (al borrar el producto).
func (r *MovementRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete movements by product: %w", err)
	}
	return nil
}

// DeleteByOrganization elimina el historial completo (importación en modo replace).
func (r *MovementRepo) DeleteByOrganization(organizationID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE organization_id = $1`, organizationID)
	if err != nil {
		return fmt.Errorf("delete movements by organization: %w", err)
	}
	return nil
}
