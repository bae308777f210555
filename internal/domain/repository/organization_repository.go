package repository

import "github.com/tupyme/inventario-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	Create(organization *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
}
