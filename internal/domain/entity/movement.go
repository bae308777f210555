package entity

import "time"

// Movement representa un movimiento de inventario ya aplicado (entrada, salida o ajuste).
//
// Es un registro inmutable: nunca se edita ni se borra por usuarios finales.
// Los campos Producto* se desnormalizan al crearlo para que el historial
// sobreviva a ediciones o renombres posteriores del producto. UsuarioRol es el
// rol del actor en el momento del movimiento, no se vuelve a consultar.
type Movement struct {
	ID                string
	OrganizationID    string
	ProductID         string
	ProductoNombre    string
	ProductoSKU       string
	ProductoCategoria string
	ProductoFormato   string
	Tipo              string // entrada, salida, ajuste
	Cantidad          int    // magnitud movida; para ajuste, |objetivo - stockAntes|
	StockAntes        int
	StockDespues      int
	Motivo            string
	Usuario           string
	UsuarioRol        string
	Fecha             time.Time
}
