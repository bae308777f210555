package inventory

import (
	"strings"
	"time"

	"github.com/tupyme/inventario-api/internal/domain"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSalida  = "salida"
	MovementTypeAjuste  = "ajuste"
)

// MovementInput solicitud de movimiento sobre un producto.
// Para entrada/salida, Cantidad es la magnitud a mover. Para ajuste, Cantidad
// es el stock objetivo exacto (no un delta) y Motivo es obligatorio.
type MovementInput struct {
	Tipo       string
	Cantidad   int
	Motivo     string
	Usuario    string
	UsuarioRol string
}

// Movement registro del movimiento aplicado, con snapshot antes/después y el
// rol del actor capturado en este instante.
type Movement struct {
	ProductoID        int64
	ProductoNombre    string
	ProductoSKU       string
	ProductoCategoria string
	ProductoFormato   string
	Tipo              string
	Cantidad          int
	StockAntes        int
	StockDespues      int
	Motivo            string
	Usuario           string
	UsuarioRol        string
	Fecha             time.Time
}

// AppliedMovement resultado de aplicar un movimiento válido.
type AppliedMovement struct {
	StockAntes   int
	StockDespues int
	Movimiento   Movement
}

// ApplyMovement calcula el stock resultante de un movimiento y construye su
// registro. No muta el producto recibido; en caso de error no hay efecto
// alguno (ni movimiento parcial ni stock recortado: el rechazo se reporta).
//
// Reglas:
//   - entrada: despues = stock + cantidad.
//   - salida:  despues = stock - cantidad; ErrStockNegativo si queda < 0.
//   - ajuste:  despues = cantidad (valor objetivo); el registro guarda como
//     cantidad |objetivo - antes| y el motivo es obligatorio.
//
// Cantidad cero en entrada/salida es válida: un movimiento nulo sigue siendo
// un evento registrable. Cantidades negativas se rechazan siempre.
func ApplyMovement(p Product, in MovementInput, now time.Time) (*AppliedMovement, error) {
	if in.Cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}

	antes := p.Stock
	var despues, cantidad int
	motivo := strings.TrimSpace(in.Motivo)

	switch in.Tipo {
	case MovementTypeEntrada:
		despues = antes + in.Cantidad
		cantidad = in.Cantidad
		if motivo == "" {
			motivo = "Entrada de inventario"
		}
	case MovementTypeSalida:
		despues = antes - in.Cantidad
		if despues < 0 {
			return nil, domain.ErrStockNegativo
		}
		cantidad = in.Cantidad
		if motivo == "" {
			motivo = "Salida de inventario"
		}
	case MovementTypeAjuste:
		if motivo == "" {
			return nil, domain.ErrMotivoRequerido
		}
		despues = in.Cantidad
		cantidad = despues - antes
		if cantidad < 0 {
			cantidad = -cantidad
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	return &AppliedMovement{
		StockAntes:   antes,
		StockDespues: despues,
		Movimiento: Movement{
			ProductoID:        p.ID,
			ProductoNombre:    p.Nombre,
			ProductoSKU:       p.SKU,
			ProductoCategoria: p.Categoria,
			ProductoFormato:   p.Formato,
			Tipo:              in.Tipo,
			Cantidad:          cantidad,
			StockAntes:        antes,
			StockDespues:      despues,
			Motivo:            motivo,
			Usuario:           in.Usuario,
			UsuarioRol:        in.UsuarioRol,
			Fecha:             now,
		},
	}, nil
}
