package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tupyme/inventario-api/internal/application/dto"
	appinventory "github.com/tupyme/inventario-api/internal/application/inventory"
	"github.com/tupyme/inventario-api/internal/domain"
	"github.com/tupyme/inventario-api/internal/domain/entity"
	core "github.com/tupyme/inventario-api/internal/domain/inventory"
	"github.com/tupyme/inventario-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo cambia en la
// creación inicial o vía movimientos; Update nunca lo toca.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   appinventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx appinventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// Create crea un producto. Aplica defaults de formato y categoría, valida
// umbrales y exige fecha de vencimiento en categorías perecederas.
func (uc *ProductUseCase) Create(organizationID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Nombre = strings.TrimSpace(in.Nombre)
	if in.SKU == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByOrganizationAndSKU(organizationID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Stock < 0 || in.Costo.IsNegative() || in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock != nil && in.MaxStock != nil && *in.MaxStock <= *in.MinStock {
		return nil, domain.ErrInvalidInput
	}

	fechaISO := ""
	if raw := strings.TrimSpace(in.FechaVencimiento); raw != "" {
		iso, ok := core.NormalizarFecha(raw)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		fechaISO = iso
	}
	categoria := strings.TrimSpace(in.Categoria)
	if categoria == "" {
		categoria = core.CategoriaPorDefecto
	}
	if core.EsCategoriaPerecedera(categoria) && fechaISO == "" {
		return nil, domain.ErrInvalidInput
	}
	formato := strings.TrimSpace(in.Formato)
	if formato == "" {
		formato = core.FormatoPorDefecto
	}

	max, err := uc.repo.MaxConsecutivo(organizationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		OrganizationID:   organizationID,
		Consecutivo:      max + 1,
		SKU:              in.SKU,
		Nombre:           in.Nombre,
		Formato:          formato,
		Categoria:        categoria,
		Stock:            in.Stock,
		Costo:            in.Costo,
		Precio:           in.Precio,
		MinStock:         in.MinStock,
		MaxStock:         in.MaxStock,
		FechaVencimiento: fechaDePuntero(fechaISO),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, verificando que pertenezca a la organización.
func (uc *ProductUseCase) GetByID(organizationID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.OrganizationID != organizationID {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar Stock (se maneja vía movimientos).
func (uc *ProductUseCase) Update(organizationID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.OrganizationID != organizationID {
		return nil, nil
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku == "" {
			return nil, domain.ErrInvalidInput
		}
		if sku != product.SKU {
			existing, _ := uc.repo.GetByOrganizationAndSKU(organizationID, sku)
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		product.SKU = sku
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Nombre = nombre
	}
	if in.Formato != nil {
		product.Formato = *in.Formato
	}
	if in.Categoria != nil {
		product.Categoria = *in.Categoria
	}
	if in.Costo != nil {
		if in.Costo.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Costo = *in.Costo
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Precio = *in.Precio
	}
	if in.MinStock != nil {
		product.MinStock = in.MinStock
	}
	if in.MaxStock != nil {
		product.MaxStock = in.MaxStock
	}
	if product.MinStock != nil && product.MaxStock != nil && *product.MaxStock <= *product.MinStock {
		return nil, domain.ErrInvalidInput
	}
	if in.FechaVencimiento != nil {
		raw := strings.TrimSpace(*in.FechaVencimiento)
		if raw == "" {
			product.FechaVencimiento = nil
		} else {
			iso, ok := core.NormalizarFecha(raw)
			if !ok {
				return nil, domain.ErrInvalidInput
			}
			product.FechaVencimiento = fechaDePuntero(iso)
		}
	}
	if core.EsCategoriaPerecedera(product.Categoria) && product.FechaVencimiento == nil {
		return nil, domain.ErrInvalidInput
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por organización con paginación.
func (uc *ProductUseCase) List(organizationID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto y su historial de movimientos en una transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, organizationID, id string) error {
	return uc.tx.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil || product.OrganizationID != organizationID {
			return domain.ErrNotFound
		}
		if err := movementRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	fecha := ""
	if p.FechaVencimiento != nil {
		fecha = p.FechaVencimiento.Format("2006-01-02")
	}
	estado := core.ClassifyStock(p.Stock, p.MinStock, p.MaxStock)
	return &dto.ProductResponse{
		ID:               p.ID,
		OrganizationID:   p.OrganizationID,
		Consecutivo:      p.Consecutivo,
		SKU:              p.SKU,
		Nombre:           p.Nombre,
		Formato:          p.Formato,
		Categoria:        p.Categoria,
		Stock:            p.Stock,
		Costo:            p.Costo,
		Precio:           p.Precio,
		MinStock:         p.MinStock,
		MaxStock:         p.MaxStock,
		FechaVencimiento: fecha,
		EstadoStock:      estado.Etiqueta,
		SeveridadStock:   estado.Severidad,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func fechaDePuntero(iso string) *time.Time {
	if iso == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return nil
	}
	return &t
}
