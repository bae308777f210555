package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tupyme/inventario-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de inventario.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetMovementCounts cuenta entradas, salidas y ajustes del período.
// Usa FILTER para resolver los tres totales en una sola pasada.
func (r *AnalyticsRepo) GetMovementCounts(
	ctx context.Context,
	organizationID string,
	start, end time.Time,
) (repository.MovementCounts, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE tipo = 'entrada') AS entradas,
	    COUNT(*) FILTER (WHERE tipo = 'salida')  AS salidas,
	    COUNT(*) FILTER (WHERE tipo = 'ajuste')  AS ajustes
	FROM movements
	WHERE organization_id = $1
	  AND fecha BETWEEN $2 AND $3`

	var counts repository.MovementCounts
	err := r.pool.QueryRow(ctx, query, organizationID, start, end).
		Scan(&counts.Entradas, &counts.Salidas, &counts.Ajustes)
	if err != nil {
		return repository.MovementCounts{}, fmt.Errorf("analytics.GetMovementCounts: %w", err)
	}
	return counts, nil
}

// GetInventoryValue valoriza el catálogo: sumatoria de stock × costo y stock × precio.
// COALESCE devuelve cero con catálogo vacío.
func (r *AnalyticsRepo) GetInventoryValue(
	ctx context.Context,
	organizationID string,
) (repository.InventoryValue, error) {
	const query = `
	SELECT
	    COALESCE(SUM(stock * costo),  0) AS costo_total,
	    COALESCE(SUM(stock * precio), 0) AS precio_total
	FROM products
	WHERE organization_id = $1`

	var value repository.InventoryValue
	err := r.pool.QueryRow(ctx, query, organizationID).
		Scan(&value.CostoTotal, &value.PrecioTotal)
	if err != nil {
		return repository.InventoryValue{}, fmt.Errorf("analytics.GetInventoryValue: %w", err)
	}
	return value, nil
}

// GetTopMovedProducts devuelve los `limit` productos con más movimientos del período.
// Usa los campos desnormalizados del historial, así el resultado incluye
// productos ya borrados del catálogo.
func (r *AnalyticsRepo) GetTopMovedProducts(
	ctx context.Context,
	organizationID string,
	start, end time.Time,
	limit int,
) ([]repository.TopMovedResult, error) {
	const query = `
	SELECT
	    product_id,
	    producto_sku    AS sku,
	    producto_nombre AS nombre,
	    COUNT(*)        AS movimientos,
	    SUM(cantidad)   AS unidades
	FROM movements
	WHERE organization_id = $1
	  AND fecha BETWEEN $2 AND $3
	GROUP BY product_id, producto_sku, producto_nombre
	ORDER BY movimientos DESC, unidades DESC
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, organizationID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopMovedProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopMovedResult
	for rows.Next() {
		var item repository.TopMovedResult
		if err := rows.Scan(&item.ProductID, &item.SKU, &item.Nombre, &item.Movimientos, &item.Unidades); err != nil {
			return nil, fmt.Errorf("analytics.GetTopMovedProducts scan: %w", err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.GetTopMovedProducts rows: %w", err)
	}
	if results == nil {
		results = []repository.TopMovedResult{}
	}
	return results, nil
}
