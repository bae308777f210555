package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tupyme/inventario-api/internal/domain"
	"github.com/tupyme/inventario-api/internal/domain/entity"
	"github.com/tupyme/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, organization_id, consecutivo, sku, nombre, formato, categoria,
	stock, costo, precio, min_stock, max_stock, fecha_vencimiento, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.OrganizationID, product.Consecutivo, product.SKU, product.Nombre,
		product.Formato, product.Categoria, product.Stock, product.Costo, product.Precio,
		product.MinStock, product.MaxStock, product.FechaVencimiento, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByOrganizationAndSKU obtiene un producto por organización y SKU.
func (r *ProductRepo) GetByOrganizationAndSKU(organizationID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE organization_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, organizationID, sku), "get product by sku")
}

// ListByOrganization lista productos por organización ordenados por consecutivo.
// limit <= 0 lista el catálogo completo (alertas, export, dashboard).
func (r *ProductRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE organization_id = $1 ORDER BY consecutivo`
	args := []any{organizationID}
	if limit > 0 {
		query += " LIMIT $2 OFFSET $3"
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Consecutivo, &p.SKU, &p.Nombre, &p.Formato,
			&p.Categoria, &p.Stock, &p.Costo, &p.Precio, &p.MinStock, &p.MaxStock,
			&p.FechaVencimiento, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// MaxConsecutivo devuelve el mayor consecutivo de la organización (0 si no hay productos).
func (r *ProductRepo) MaxConsecutivo(organizationID string) (int64, error) {
	var max int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(consecutivo), 0) FROM products WHERE organization_id = $1`,
		organizationID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max consecutivo: %w", err)
	}
	return max, nil
}

// Update actualiza un producto existente. No modifica Stock (se maneja vía movimientos).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, nombre = $3, formato = $4, categoria = $5, costo = $6,
			precio = $7, min_stock = $8, max_stock = $9, fecha_vencimiento = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Nombre, product.Formato, product.Categoria,
		product.Costo, product.Precio, product.MinStock, product.MaxStock,
		product.FechaVencimiento, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el stock del producto (usado por el registro de movimientos).
func (r *ProductRepo) UpdateStock(productID string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// DeleteByOrganization vacía el catálogo completo (importación en modo replace).
func (r *ProductRepo) DeleteByOrganization(organizationID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE organization_id = $1`, organizationID)
	if err != nil {
		return fmt.Errorf("delete products by organization: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.OrganizationID, &p.Consecutivo, &p.SKU, &p.Nombre, &p.Formato,
		&p.Categoria, &p.Stock, &p.Costo, &p.Precio, &p.MinStock, &p.MaxStock,
		&p.FechaVencimiento, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
