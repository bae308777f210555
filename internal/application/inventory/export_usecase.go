package inventory

import (
	"fmt"
	"time"

	core "github.com/tupyme/inventario-api/internal/domain/inventory"
	"github.com/tupyme/inventario-api/internal/domain/repository"
	"github.com/tupyme/inventario-api/internal/infrastructure/tabular"
)

// ExportUseCase exporta el catálogo completo a CSV canónico. El archivo
// exportado reimporta limpio en modo replace.
type ExportUseCase struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(productRepo repository.ProductRepository) *ExportUseCase {
	return &ExportUseCase{productRepo: productRepo, now: time.Now}
}

// ExportCSV serializa el catálogo de la organización y devuelve el contenido
// junto al nombre de archivo sugerido (inventario_YYYY-MM-DD.csv).
func (uc *ExportUseCase) ExportCSV(organizationID string) ([]byte, string, error) {
	list, err := uc.productRepo.ListByOrganization(organizationID, 0, 0)
	if err != nil {
		return nil, "", err
	}
	data, err := tabular.ExportCSV(SnapshotCatalogo(list))
	if err != nil {
		return nil, "", err
	}
	nombre := fmt.Sprintf("inventario_%s.csv", uc.now().Format("2006-01-02"))
	return data, nombre, nil
}

// Categorias y Formatos exponen los catálogos fijos para la UI.
func Categorias() []string { return core.CategoriasOptions }
func Formatos() []string   { return core.FormatoOptions }
