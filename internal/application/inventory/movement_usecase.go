package inventory

import (
	"context"
	"time"

	"github.com/tupyme/inventario-api/internal/application/dto"
	"github.com/tupyme/inventario-api/internal/domain"
	"github.com/tupyme/inventario-api/internal/domain/entity"
	core "github.com/tupyme/inventario-api/internal/domain/inventory"
	"github.com/tupyme/inventario-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma atómica:
// el cambio de stock y su registro en el historial suceden en la misma
// transacción, o no sucede ninguno.
type RegisterMovementUseCase struct {
	tx           TxRunner
	movementRepo repository.MovementRepository
	now          func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(tx TxRunner, movementRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{tx: tx, movementRepo: movementRepo, now: time.Now}
}

// Register valida y aplica un movimiento sobre un producto de la organización.
// El rechazo (stock negativo, ajuste sin motivo, tipo desconocido) no deja
// rastro: ni movimiento ni cambio de stock.
func (uc *RegisterMovementUseCase) Register(
	ctx context.Context,
	organizationID, usuario, rol string,
	in dto.RegisterMovementRequest,
) (*dto.MovementResponse, error) {
	var out *dto.MovementResponse

	err := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) error {
		p, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if p == nil || p.OrganizationID != organizationID {
			return domain.ErrNotFound
		}

		res, err := core.ApplyMovement(Snapshot(p), core.MovementInput{
			Tipo:       in.Tipo,
			Cantidad:   in.Cantidad,
			Motivo:     in.Motivo,
			Usuario:    usuario,
			UsuarioRol: rol,
		}, uc.now())
		if err != nil {
			return err
		}

		m := &entity.Movement{
			OrganizationID:    organizationID,
			ProductID:         p.ID,
			ProductoNombre:    res.Movimiento.ProductoNombre,
			ProductoSKU:       res.Movimiento.ProductoSKU,
			ProductoCategoria: res.Movimiento.ProductoCategoria,
			ProductoFormato:   res.Movimiento.ProductoFormato,
			Tipo:              res.Movimiento.Tipo,
			Cantidad:          res.Movimiento.Cantidad,
			StockAntes:        res.Movimiento.StockAntes,
			StockDespues:      res.Movimiento.StockDespues,
			Motivo:            res.Movimiento.Motivo,
			Usuario:           res.Movimiento.Usuario,
			UsuarioRol:        res.Movimiento.UsuarioRol,
			Fecha:             res.Movimiento.Fecha,
		}
		if err := movementRepo.Create(m); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(p.ID, res.StockDespues); err != nil {
			return err
		}

		out = toMovementResponse(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve el historial de la organización, del más reciente al más
// antiguo, con filtros opcionales por producto y tipo.
func (uc *RegisterMovementUseCase) List(
	organizationID string,
	filter repository.MovementFilter,
	limit, offset int,
) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListByOrganization(organizationID, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.movementRepo.CountByOrganization(organizationID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:                m.ID,
		ProductID:         m.ProductID,
		ProductoNombre:    m.ProductoNombre,
		ProductoSKU:       m.ProductoSKU,
		ProductoCategoria: m.ProductoCategoria,
		ProductoFormato:   m.ProductoFormato,
		Tipo:              m.Tipo,
		Cantidad:          m.Cantidad,
		StockAntes:        m.StockAntes,
		StockDespues:      m.StockDespues,
		Motivo:            m.Motivo,
		Usuario:           m.Usuario,
		UsuarioRol:        m.UsuarioRol,
		Fecha:             m.Fecha,
	}
}
