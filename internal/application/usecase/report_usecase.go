package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	appinventory "github.com/tupyme/inventario-api/internal/application/inventory"
	"github.com/tupyme/inventario-api/internal/domain"
	"github.com/tupyme/inventario-api/internal/domain/entity"
	core "github.com/tupyme/inventario-api/internal/domain/inventory"
	"github.com/tupyme/inventario-api/internal/domain/repository"
)

// ReportProduct fila del reporte: producto + estado de stock ya clasificado.
type ReportProduct struct {
	Consecutivo int64
	SKU         string
	Nombre      string
	Formato     string
	Categoria   string
	Stock       int
	Costo       decimal.Decimal
	Precio      decimal.Decimal
	EstadoStock string
	Severidad   string
}

// ReportData todo lo que necesita el generador para armar el PDF.
type ReportData struct {
	Organization *entity.Organization
	GeneratedAt  time.Time
	Products     []ReportProduct
	Alerts       []core.Alert
	TotalCosto   decimal.Decimal
	TotalVenta   decimal.Decimal
	SinStock     int
	PocoStock    int
	SobreStock   int
}

// InventoryReportGenerator puerto de salida para el render del reporte.
type InventoryReportGenerator interface {
	GenerateInventoryPDF(ctx context.Context, data *ReportData) ([]byte, error)
}

// ReportUseCase arma el reporte de inventario en PDF: catálogo completo con
// estados de stock, alertas activas y valorización.
type ReportUseCase struct {
	orgRepo     repository.OrganizationRepository
	productRepo repository.ProductRepository
	generator   InventoryReportGenerator
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	orgRepo repository.OrganizationRepository,
	productRepo repository.ProductRepository,
	generator InventoryReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{orgRepo: orgRepo, productRepo: productRepo, generator: generator, now: time.Now}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes junto al nombre
// de archivo sugerido (reporte_inventario_YYYY-MM-DD.pdf).
func (uc *ReportUseCase) GenerateInventoryReport(ctx context.Context, organizationID string) ([]byte, string, error) {
	org, err := uc.orgRepo.GetByID(organizationID)
	if err != nil {
		return nil, "", err
	}
	if org == nil {
		return nil, "", domain.ErrNotFound
	}
	list, err := uc.productRepo.ListByOrganization(organizationID, 0, 0)
	if err != nil {
		return nil, "", err
	}

	now := uc.now()
	data := &ReportData{
		Organization: org,
		GeneratedAt:  now,
		Alerts:       core.GenerateAlerts(appinventory.SnapshotCatalogo(list), now),
		TotalCosto:   decimal.Zero,
		TotalVenta:   decimal.Zero,
	}
	for _, p := range list {
		estado := core.ClassifyStock(p.Stock, p.MinStock, p.MaxStock)
		switch estado.Etiqueta {
		case core.EstadoSinStock:
			data.SinStock++
		case core.EstadoPocoStock:
			data.PocoStock++
		case core.EstadoSobreStock:
			data.SobreStock++
		}
		stock := decimal.NewFromInt(int64(p.Stock))
		data.TotalCosto = data.TotalCosto.Add(p.Costo.Mul(stock))
		data.TotalVenta = data.TotalVenta.Add(p.Precio.Mul(stock))
		data.Products = append(data.Products, ReportProduct{
			Consecutivo: p.Consecutivo,
			SKU:         p.SKU,
			Nombre:      p.Nombre,
			Formato:     p.Formato,
			Categoria:   p.Categoria,
			Stock:       p.Stock,
			Costo:       p.Costo,
			Precio:      p.Precio,
			EstadoStock: estado.Etiqueta,
			Severidad:   estado.Severidad,
		})
	}

	pdf, err := uc.generator.GenerateInventoryPDF(ctx, data)
	if err != nil {
		return nil, "", err
	}
	nombre := fmt.Sprintf("reporte_inventario_%s.pdf", now.Format("2006-01-02"))
	return pdf, nombre, nil
}
