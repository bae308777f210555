package repository

import (
	"time"

	"github.com/tupyme/inventario-api/internal/domain/entity"
)

// MovementFilter filtros opcionales del historial de movimientos.
type MovementFilter struct {
	ProductID string     // vacío = todos los productos
	Tipo      string     // vacío = todos los tipos
	Desde     *time.Time // nil = sin límite inferior
	Hasta     *time.Time // nil = sin límite superior
	Q         string     // busca en nombre y SKU del producto
}

// MovementRepository define el puerto de persistencia para Movement (DIP).
// Los movimientos son un historial inmutable: no hay Update.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListByOrganization devuelve el historial del más reciente al más antiguo.
	ListByOrganization(organizationID string, filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
	CountByOrganization(organizationID string, filter MovementFilter) (int, error)
	DeleteByProduct(productID string) error
	DeleteByOrganization(organizationID string) error
}
