package repository

import "github.com/tupyme/inventario-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByOrganizationAndSKU(organizationID, sku string) (*entity.Product, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Product, error)
	// MaxConsecutivo devuelve el mayor consecutivo del catálogo (0 si está vacío).
	MaxConsecutivo(organizationID string) (int64, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo el stock (usado por el registro de movimientos).
	UpdateStock(productID string, stock int) error
	Delete(id string) error
	// DeleteByOrganization vacía el catálogo completo (importación en modo replace).
	DeleteByOrganization(organizationID string) error
}
