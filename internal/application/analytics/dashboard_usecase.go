// Package analytics contiene los casos de uso del dashboard de inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tupyme/inventario-api/internal/application/dto"
	appinventory "github.com/tupyme/inventario-api/internal/application/inventory"
	"github.com/tupyme/inventario-api/internal/domain/entity"
	core "github.com/tupyme/inventario-api/internal/domain/inventory"
	"github.com/tupyme/inventario-api/internal/domain/repository"
)

const dashboardTopProductos = 5 // número de productos en el widget de más movidos

// DashboardUseCase genera el resumen del inventario para la pantalla principal:
// conteos por estado de stock, alertas activas, valor del inventario,
// movimientos del día y productos más movidos del mes.
type DashboardUseCase struct {
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, analyticsRepo: analyticsRepo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO para la organización indicada.
//
// Cuatro consultas en paralelo:
//  1. ListByOrganization            → conteos por estado + alertas activas
//  2. GetInventoryValue             → ValorCosto + ValorVenta
//  3. GetMovementCounts(hoy)        → MovimientosHoy
//  4. GetTopMovedProducts(mes, 5)   → TopMovidos
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	organizationID string,
) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type catalogResult struct {
		products []*entity.Product
		err      error
	}
	type valueResult struct {
		value repository.InventoryValue
		err   error
	}
	type countsResult struct {
		counts repository.MovementCounts
		err    error
	}
	type topResult struct {
		top []repository.TopMovedResult
		err error
	}

	catalogCh := make(chan catalogResult, 1)
	valueCh := make(chan valueResult, 1)
	countsCh := make(chan countsResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		list, err := uc.productRepo.ListByOrganization(organizationID, 0, 0)
		catalogCh <- catalogResult{list, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.GetInventoryValue(ctx, organizationID)
		valueCh <- valueResult{v, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.GetMovementCounts(ctx, organizationID, todayStart, todayEnd)
		countsCh <- countsResult{c, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.GetTopMovedProducts(ctx, organizationID, monthStart, monthEnd, dashboardTopProductos)
		topCh <- topResult{t, err}
	}()

	catalog := <-catalogCh
	value := <-valueCh
	counts := <-countsCh
	top := <-topCh

	if catalog.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", catalog.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("dashboard: valor del inventario: %w", value.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", counts.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: productos más movidos: %w", top.err)
	}

	var activos, sinStock, pocoStock, sobreStock int
	for _, p := range catalog.products {
		if p.Stock > 0 {
			activos++
		}
		switch core.ClassifyStock(p.Stock, p.MinStock, p.MaxStock).Etiqueta {
		case core.EstadoSinStock:
			sinStock++
		case core.EstadoPocoStock:
			pocoStock++
		case core.EstadoSobreStock:
			sobreStock++
		}
	}
	alertas := core.GenerateAlerts(appinventory.SnapshotCatalogo(catalog.products), now)

	topMovidos := make([]dto.TopMovedDTO, 0, len(top.top))
	for _, t := range top.top {
		topMovidos = append(topMovidos, dto.TopMovedDTO{
			ProductID:   t.ProductID,
			SKU:         t.SKU,
			Nombre:      t.Nombre,
			Movimientos: t.Movimientos,
			Unidades:    t.Unidades,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProductos:   len(catalog.products),
		ProductosActivos: activos,
		SinStock:         sinStock,
		PocoStock:        pocoStock,
		SobreStock:       sobreStock,
		AlertasActivas:   len(alertas),
		ValorCosto:       value.value.CostoTotal.Round(2),
		ValorVenta:       value.value.PrecioTotal.Round(2),
		MovimientosHoy: dto.MovementCountsDTO{
			Entradas: counts.counts.Entradas,
			Salidas:  counts.counts.Salidas,
			Ajustes:  counts.counts.Ajustes,
		},
		TopMovidos: topMovidos,
		DateLabel:  monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
