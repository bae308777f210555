package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tupyme/inventario-api/internal/application/dto"
	"github.com/tupyme/inventario-api/internal/domain/entity"
	core "github.com/tupyme/inventario-api/internal/domain/inventory"
	"github.com/tupyme/inventario-api/internal/domain/repository"
)

// ImportUseCase importación masiva del catálogo desde filas ya parseadas
// (CSV o XLSX). La conciliación es del núcleo; aquí se orquesta contra la
// base: en modo replace se vacía catálogo e historial antes de insertar, todo
// dentro de una transacción.
type ImportUseCase struct {
	tx          TxRunner
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(tx TxRunner, productRepo repository.ProductRepository) *ImportUseCase {
	return &ImportUseCase{tx: tx, productRepo: productRepo, now: time.Now}
}

// Import concilia las filas contra el catálogo actual y persiste las
// aceptadas. Las filas rechazadas se reportan con su número de fila; no
// detienen la importación del resto.
func (uc *ImportUseCase) Import(
	ctx context.Context,
	organizationID string,
	filas []core.RowMap,
	mode core.ImportMode,
) (*dto.ImportResultResponse, error) {
	existentes, err := uc.productRepo.ListByOrganization(organizationID, 0, 0)
	if err != nil {
		return nil, err
	}

	res := core.Reconcile(filas, mode, SnapshotCatalogo(existentes))

	if len(res.Aceptados) > 0 || mode == core.ImportModeReplace {
		err = uc.tx.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) error {
			if mode == core.ImportModeReplace {
				if err := movementRepo.DeleteByOrganization(organizationID); err != nil {
					return err
				}
				if err := productRepo.DeleteByOrganization(organizationID); err != nil {
					return err
				}
			}
			ahora := uc.now()
			for _, p := range res.Aceptados {
				e := &entity.Product{
					ID:               uuid.New().String(),
					OrganizationID:   organizationID,
					Consecutivo:      p.ID,
					SKU:              p.SKU,
					Nombre:           p.Nombre,
					Formato:          p.Formato,
					Categoria:        p.Categoria,
					Stock:            p.Stock,
					Costo:            p.Costo,
					Precio:           p.Precio,
					MinStock:         p.MinStock,
					MaxStock:         p.MaxStock,
					FechaVencimiento: fechaDesdeISO(p.FechaVencimiento),
					CreatedAt:        ahora,
					UpdatedAt:        ahora,
				}
				if err := productRepo.Create(e); err != nil {
					return fmt.Errorf("insertar sku %s: %w", p.SKU, err)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.ImportResultResponse{
		Importados: len(res.Aceptados),
		Omitidos:   len(res.Errores),
		Errores:    res.Errores,
	}, nil
}
