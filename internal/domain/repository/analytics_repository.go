package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovementCounts totales de movimientos por tipo en un período.
type MovementCounts struct {
	Entradas int
	Salidas  int
	Ajustes  int
}

// InventoryValue valorización del catálogo a costo y a precio de venta.
type InventoryValue struct {
	CostoTotal  decimal.Decimal
	PrecioTotal decimal.Decimal
}

// TopMovedResult producto con más movimientos en un período.
type TopMovedResult struct {
	ProductID   string
	SKU         string
	Nombre      string
	Movimientos int
	Unidades    int
}

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	GetMovementCounts(ctx context.Context, organizationID string, start, end time.Time) (MovementCounts, error)
	GetInventoryValue(ctx context.Context, organizationID string) (InventoryValue, error)
	GetTopMovedProducts(ctx context.Context, organizationID string, start, end time.Time, limit int) ([]TopMovedResult, error)
}
