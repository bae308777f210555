package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una organización.
//
// Consecutivo es el identificador numérico visible por tenant (1, 2, 3...);
// lo usan la importación masiva y la UI. ID es el UUID de persistencia.
// Stock nunca es negativo: solo cambia vía movimientos validados.
type Product struct {
	ID               string
	OrganizationID   string
	Consecutivo      int64
	SKU              string // único por organización
	Nombre           string
	Formato          string // unidad de venta: Unidad, Caja, Litro (L)...
	Categoria        string
	Stock            int
	Costo            decimal.Decimal
	Precio           decimal.Decimal
	MinStock         *int // umbral de poco stock; nil = usar el default (10)
	MaxStock         *int // umbral de sobre stock; nil = sin límite superior
	FechaVencimiento *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
