package inventory

import (
	"time"

	"github.com/tupyme/inventario-api/internal/domain/entity"
	core "github.com/tupyme/inventario-api/internal/domain/inventory"
)

// Snapshot convierte la entidad persistida al snapshot sobre el que opera el
// núcleo. El ID del snapshot es el consecutivo por tenant; la fecha de
// vencimiento viaja como ISO.
func Snapshot(e *entity.Product) core.Product {
	fecha := ""
	if e.FechaVencimiento != nil {
		fecha = e.FechaVencimiento.Format("2006-01-02")
	}
	return core.Product{
		ID:               e.Consecutivo,
		SKU:              e.SKU,
		Nombre:           e.Nombre,
		Formato:          e.Formato,
		Categoria:        e.Categoria,
		Stock:            e.Stock,
		Costo:            e.Costo,
		Precio:           e.Precio,
		MinStock:         e.MinStock,
		MaxStock:         e.MaxStock,
		FechaVencimiento: fecha,
	}
}

// SnapshotCatalogo convierte el catálogo completo.
func SnapshotCatalogo(list []*entity.Product) []core.Product {
	out := make([]core.Product, 0, len(list))
	for _, e := range list {
		out = append(out, Snapshot(e))
	}
	return out
}

// fechaDesdeISO parsea una fecha ISO del núcleo a *time.Time (nil si vacía).
func fechaDesdeISO(iso string) *time.Time {
	if iso == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return nil
	}
	return &t
}
