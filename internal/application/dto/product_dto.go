package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Stock inicial se acepta en la creación; después solo cambia vía movimientos.
type CreateProductRequest struct {
	SKU              string          `json:"sku" validate:"required,min=1,max=100"`
	Nombre           string          `json:"nombre" validate:"required,min=1,max=200"`
	Formato          string          `json:"formato"`
	Categoria        string          `json:"categoria"`
	Stock            int             `json:"stock"`
	Costo            decimal.Decimal `json:"costo"`
	Precio           decimal.Decimal `json:"precio"`
	MinStock         *int            `json:"min_stock"`
	MaxStock         *int            `json:"max_stock"`
	FechaVencimiento string          `json:"fecha_vencimiento"` // YYYY-MM-DD o DD/MM/YYYY
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: se maneja vía movimientos).
type UpdateProductRequest struct {
	SKU              *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Nombre           *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Formato          *string          `json:"formato"`
	Categoria        *string          `json:"categoria"`
	Costo            *decimal.Decimal `json:"costo"`
	Precio           *decimal.Decimal `json:"precio"`
	MinStock         *int             `json:"min_stock"`
	MaxStock         *int             `json:"max_stock"`
	FechaVencimiento *string          `json:"fecha_vencimiento"`
}

// ProductResponse salida de un producto, con su estado de stock derivado.
type ProductResponse struct {
	ID               string          `json:"id"`
	OrganizationID   string          `json:"organization_id"`
	Consecutivo      int64           `json:"consecutivo"`
	SKU              string          `json:"sku"`
	Nombre           string          `json:"nombre"`
	Formato          string          `json:"formato"`
	Categoria        string          `json:"categoria"`
	Stock            int             `json:"stock"`
	Costo            decimal.Decimal `json:"costo"`
	Precio           decimal.Decimal `json:"precio"`
	MinStock         *int            `json:"min_stock,omitempty"`
	MaxStock         *int            `json:"max_stock,omitempty"`
	FechaVencimiento string          `json:"fecha_vencimiento,omitempty"`
	EstadoStock      string          `json:"estado_stock"`
	SeveridadStock   string          `json:"severidad_stock"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
