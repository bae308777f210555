package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tupyme/inventario-api/internal/domain/inventory"
)

// asOf fijo para todos los tests: 15 de marzo de 2026.
var asOf = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func producto(id int64, stock int) inventory.Product {
	return inventory.Product{ID: id, SKU: "SKU-1", Nombre: "Café molido", Stock: stock}
}

// TestGenerateAlerts_UnaSolaAlertaDeStockPorProducto: ningún producto puede
// estar a la vez "sin_stock" y "poco_stock".
func TestGenerateAlerts_UnaSolaAlertaDeStockPorProducto(t *testing.T) {
	alertas := inventory.GenerateAlerts([]inventory.Product{producto(1, 0)}, asOf)
	require.Len(t, alertas, 1)
	assert.Equal(t, inventory.AlertaSinStock, alertas[0].Tipo)
	assert.Equal(t, inventory.PrioridadAlta, alertas[0].Prioridad)
}

// TestGenerateAlerts_PrioridadesPorTipo: sin_stock→alta, poco_stock→media,
// sobre_stock→baja.
func TestGenerateAlerts_PrioridadesPorTipo(t *testing.T) {
	productos := []inventory.Product{
		{ID: 1, Nombre: "A", Stock: 0},
		{ID: 2, Nombre: "B", Stock: 5},
		{ID: 3, Nombre: "C", Stock: 80, MinStock: intPtr(10), MaxStock: intPtr(50)},
	}
	alertas := inventory.GenerateAlerts(productos, asOf)
	require.Len(t, alertas, 3)
	// Orden estable por prioridad: alta, media, baja
	assert.Equal(t, inventory.AlertaSinStock, alertas[0].Tipo)
	assert.Equal(t, inventory.AlertaPocoStock, alertas[1].Tipo)
	assert.Equal(t, inventory.AlertaSobreStock, alertas[2].Tipo)
}

// TestGenerateAlerts_TipoSigueAlClasificador: el tipo de alerta corresponde
// exactamente a la etiqueta que devuelve ClassifyStock para el mismo producto.
func TestGenerateAlerts_TipoSigueAlClasificador(t *testing.T) {
	casos := []struct {
		producto inventory.Product
		etiqueta string
		tipo     string
	}{
		{inventory.Product{ID: 1, Nombre: "A", Stock: 0}, inventory.EstadoSinStock, inventory.AlertaSinStock},
		{inventory.Product{ID: 2, Nombre: "B", Stock: 5, MinStock: intPtr(10)}, inventory.EstadoPocoStock, inventory.AlertaPocoStock},
		{inventory.Product{ID: 3, Nombre: "C", Stock: 80, MinStock: intPtr(10), MaxStock: intPtr(50)}, inventory.EstadoSobreStock, inventory.AlertaSobreStock},
	}
	for _, c := range casos {
		estado := inventory.ClassifyStock(c.producto.Stock, c.producto.MinStock, c.producto.MaxStock)
		assert.Equal(t, c.etiqueta, estado.Etiqueta)

		alertas := inventory.GenerateAlerts([]inventory.Product{c.producto}, asOf)
		require.Len(t, alertas, 1, "etiqueta %s", c.etiqueta)
		assert.Equal(t, c.tipo, alertas[0].Tipo)
	}
}

// TestGenerateAlerts_SobreStockInclusivo: stock == maxStock genera alerta.
func TestGenerateAlerts_SobreStockInclusivo(t *testing.T) {
	p := inventory.Product{ID: 1, Nombre: "A", Stock: 50, MinStock: intPtr(10), MaxStock: intPtr(50)}
	alertas := inventory.GenerateAlerts([]inventory.Product{p}, asOf)
	require.Len(t, alertas, 1)
	assert.Equal(t, inventory.AlertaSobreStock, alertas[0].Tipo)
}

// TestGenerateAlerts_VencimientoRequiereStock: sin stock no hay alerta de
// vencimiento aunque la fecha ya pasó (solo la de sin_stock).
func TestGenerateAlerts_VencimientoRequiereStock(t *testing.T) {
	p := producto(1, 0)
	p.FechaVencimiento = "2026-03-01"
	alertas := inventory.GenerateAlerts([]inventory.Product{p}, asOf)
	require.Len(t, alertas, 1)
	assert.Equal(t, inventory.AlertaSinStock, alertas[0].Tipo)
}

// TestGenerateAlerts_ProductoVencido: fecha pasada → prioridad alta con los
// días de atraso en el mensaje.
func TestGenerateAlerts_ProductoVencido(t *testing.T) {
	p := producto(1, 20)
	p.MinStock = intPtr(5)
	p.FechaVencimiento = "2026-03-10" // hace 5 días
	alertas := inventory.GenerateAlerts([]inventory.Product{p}, asOf)
	require.Len(t, alertas, 1)
	a := alertas[0]
	assert.Equal(t, inventory.AlertaVencimiento, a.Tipo)
	assert.Equal(t, inventory.PrioridadAlta, a.Prioridad)
	require.NotNil(t, a.DiasRestantes)
	assert.Equal(t, -5, *a.DiasRestantes)
	assert.Contains(t, a.Mensaje, "VENCIDO hace 5 día(s)")
}

// TestGenerateAlerts_VenceHoyYManana cubre los mensajes especiales del día 0 y 1.
func TestGenerateAlerts_VenceHoyYManana(t *testing.T) {
	hoy := producto(1, 20)
	hoy.MinStock = intPtr(5)
	hoy.FechaVencimiento = "2026-03-15"

	manana := producto(2, 20)
	manana.MinStock = intPtr(5)
	manana.FechaVencimiento = "2026-03-16"

	alertas := inventory.GenerateAlerts([]inventory.Product{hoy, manana}, asOf)
	require.Len(t, alertas, 2)
	assert.Contains(t, alertas[0].Mensaje, "vence HOY")
	assert.Contains(t, alertas[1].Mensaje, "vence MAÑANA")
	assert.Equal(t, inventory.PrioridadMedia, alertas[0].Prioridad)
}

// TestGenerateAlerts_VentanaDeAvisoInclusiva: exactamente a DiasAvisoVencimiento
// días hay alerta; un día más allá ya no.
func TestGenerateAlerts_VentanaDeAvisoInclusiva(t *testing.T) {
	enVentana := producto(1, 20)
	enVentana.MinStock = intPtr(5)
	enVentana.FechaVencimiento = "2026-03-25" // 10 días exactos

	fueraVentana := producto(2, 20)
	fueraVentana.MinStock = intPtr(5)
	fueraVentana.FechaVencimiento = "2026-03-26" // 11 días

	alertas := inventory.GenerateAlerts([]inventory.Product{enVentana, fueraVentana}, asOf)
	require.Len(t, alertas, 1)
	assert.Equal(t, int64(1), alertas[0].ProductoID)
	assert.Contains(t, alertas[0].Mensaje, "vence en 10 días")
}

// TestGenerateAlerts_FechaFormatoPantalla acepta DD/MM/YYYY.
func TestGenerateAlerts_FechaFormatoPantalla(t *testing.T) {
	p := producto(1, 20)
	p.MinStock = intPtr(5)
	p.FechaVencimiento = "20/03/2026"
	alertas := inventory.GenerateAlerts([]inventory.Product{p}, asOf)
	require.Len(t, alertas, 1)
	assert.Equal(t, inventory.AlertaVencimiento, alertas[0].Tipo)
}

// TestGenerateAlerts_FechaMalformadaNoGeneraAlerta: desbordes de día/mes
// (32/13/2026) y basura no producen alerta ni panic.
func TestGenerateAlerts_FechaMalformadaNoGeneraAlerta(t *testing.T) {
	for _, fecha := range []string{"32/13/2026", "2026-02-31", "mañana", "2026/03/15"} {
		p := producto(1, 20)
		p.MinStock = intPtr(5)
		p.FechaVencimiento = fecha
		alertas := inventory.GenerateAlerts([]inventory.Product{p}, asOf)
		assert.Empty(t, alertas, "fecha %q no debe generar alertas", fecha)
	}
}

// TestGenerateAlerts_StockYVencimientoCoexisten: un producto con poco stock y
// próximo a vencer produce dos alertas independientes.
func TestGenerateAlerts_StockYVencimientoCoexisten(t *testing.T) {
	p := producto(1, 3)
	p.MinStock = intPtr(10)
	p.FechaVencimiento = "2026-03-18"
	alertas := inventory.GenerateAlerts([]inventory.Product{p}, asOf)
	require.Len(t, alertas, 2)
	tipos := []string{alertas[0].Tipo, alertas[1].Tipo}
	assert.Contains(t, tipos, inventory.AlertaPocoStock)
	assert.Contains(t, tipos, inventory.AlertaVencimiento)
}

// TestGenerateAlerts_Idempotente: dos llamadas con el mismo snapshot y el
// mismo asOf devuelven exactamente la misma lista (sin estado oculto).
func TestGenerateAlerts_Idempotente(t *testing.T) {
	productos := []inventory.Product{
		{ID: 1, Nombre: "A", Stock: 0},
		{ID: 2, Nombre: "B", Stock: 3, MinStock: intPtr(10), FechaVencimiento: "2026-03-18"},
		{ID: 3, Nombre: "C", Stock: 100, MaxStock: intPtr(60)},
	}
	a1 := inventory.GenerateAlerts(productos, asOf)
	a2 := inventory.GenerateAlerts(productos, asOf)
	assert.Equal(t, a1, a2)
}

// TestGenerateAlerts_SKUVacioUsaMarcador: productos sin SKU se reportan como
// SIN-SKU en la alerta.
func TestGenerateAlerts_SKUVacioUsaMarcador(t *testing.T) {
	p := inventory.Product{ID: 1, Nombre: "A", Stock: 0}
	alertas := inventory.GenerateAlerts([]inventory.Product{p}, asOf)
	require.Len(t, alertas, 1)
	assert.Equal(t, "SIN-SKU", alertas[0].ProductoSKU)
}
