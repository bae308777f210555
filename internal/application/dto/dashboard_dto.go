package dto

import "github.com/shopspring/decimal"

// MovementCountsDTO movimientos de hoy por tipo.
type MovementCountsDTO struct {
	Entradas int `json:"entradas"`
	Salidas  int `json:"salidas"`
	Ajustes  int `json:"ajustes"`
}

// TopMovedDTO producto con más movimientos en el mes.
type TopMovedDTO struct {
	ProductID   string `json:"product_id"`
	SKU         string `json:"sku"`
	Nombre      string `json:"nombre"`
	Movimientos int    `json:"movimientos"`
	Unidades    int    `json:"unidades"`
}

// DashboardSummaryDTO resumen del inventario para la pantalla principal.
type DashboardSummaryDTO struct {
	TotalProductos   int               `json:"total_productos"`
	ProductosActivos int               `json:"productos_activos"` // con stock > 0
	SinStock         int               `json:"sin_stock"`
	PocoStock        int               `json:"poco_stock"`
	SobreStock       int               `json:"sobre_stock"`
	AlertasActivas   int               `json:"alertas_activas"`
	ValorCosto       decimal.Decimal   `json:"valor_costo"`
	ValorVenta       decimal.Decimal   `json:"valor_venta"`
	MovimientosHoy   MovementCountsDTO `json:"movimientos_hoy"`
	TopMovidos       []TopMovedDTO     `json:"top_movidos"`
	DateLabel        string            `json:"date_label"`
}
