package inventory

import (
	"time"

	"github.com/tupyme/inventario-api/internal/application/dto"
	core "github.com/tupyme/inventario-api/internal/domain/inventory"
	"github.com/tupyme/inventario-api/internal/domain/repository"
)

// AlertUseCase evalúa las alertas del inventario. No persiste nada: cada
// consulta recalcula sobre el estado actual del catálogo.
type AlertUseCase struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(productRepo repository.ProductRepository) *AlertUseCase {
	return &AlertUseCase{productRepo: productRepo, now: time.Now}
}

// GetAlerts evalúa el catálogo completo de la organización y devuelve las
// alertas ordenadas por prioridad.
func (uc *AlertUseCase) GetAlerts(organizationID string) (*dto.AlertListResponse, error) {
	list, err := uc.productRepo.ListByOrganization(organizationID, 0, 0)
	if err != nil {
		return nil, err
	}

	alertas := core.GenerateAlerts(SnapshotCatalogo(list), uc.now())

	var stats dto.AlertStatsDTO
	items := make([]dto.AlertResponse, 0, len(alertas))
	for _, a := range alertas {
		switch a.Tipo {
		case core.AlertaSinStock:
			stats.SinStock++
		case core.AlertaPocoStock:
			stats.PocoStock++
		case core.AlertaSobreStock:
			stats.SobreStock++
		case core.AlertaVencimiento:
			stats.Vencimiento++
		}
		switch a.Prioridad {
		case core.PrioridadAlta:
			stats.Alta++
		case core.PrioridadMedia:
			stats.Media++
		case core.PrioridadBaja:
			stats.Baja++
		}
		items = append(items, dto.AlertResponse{
			ProductoID:       a.ProductoID,
			ProductoNombre:   a.ProductoNombre,
			ProductoSKU:      a.ProductoSKU,
			Tipo:             a.Tipo,
			Prioridad:        a.Prioridad,
			Mensaje:          a.Mensaje,
			StockActual:      a.StockActual,
			StockMinimo:      a.StockMinimo,
			FechaVencimiento: a.FechaVencimiento,
			DiasRestantes:    a.DiasRestantes,
		})
	}
	return &dto.AlertListResponse{Items: items, Total: len(items), Stats: stats}, nil
}
