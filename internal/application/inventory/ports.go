// Package inventory contiene los casos de uso que orquestan el núcleo de
// inventario contra la persistencia: movimientos, alertas, importación y
// exportación del catálogo.
package inventory

import (
	"context"

	"github.com/tupyme/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad entre el cambio de stock y su registro en el historial.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
