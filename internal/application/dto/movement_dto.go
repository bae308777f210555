package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de inventario.
// Para tipo ajuste, Cantidad es el stock objetivo exacto y Motivo es obligatorio.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Tipo      string `json:"tipo" validate:"required,oneof=entrada salida ajuste"`
	Cantidad  int    `json:"cantidad" validate:"min=0"`
	Motivo    string `json:"motivo"`
}

// MovementResponse un movimiento del historial.
type MovementResponse struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product_id"`
	ProductoNombre    string    `json:"producto_nombre"`
	ProductoSKU       string    `json:"producto_sku"`
	ProductoCategoria string    `json:"producto_categoria"`
	ProductoFormato   string    `json:"producto_formato"`
	Tipo              string    `json:"tipo"`
	Cantidad          int       `json:"cantidad"`
	StockAntes        int       `json:"stock_antes"`
	StockDespues      int       `json:"stock_despues"`
	Motivo            string    `json:"motivo"`
	Usuario           string    `json:"usuario"`
	UsuarioRol        string    `json:"usuario_rol"`
	Fecha             time.Time `json:"fecha"`
}

// MovementListResponse historial paginado, del más reciente al más antiguo.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
