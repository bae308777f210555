package entity

import "time"

// Organization representa un tenant: un negocio cuyos datos nunca son
// visibles para otro. Todas las consultas de catálogo y movimientos se
// filtran por OrganizationID.
type Organization struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
