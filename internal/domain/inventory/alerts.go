package inventory

import (
	"fmt"
	"sort"
	"time"
)

// DiasAvisoVencimiento ventana única de aviso de vencimiento: un producto con
// fecha de vencimiento a 10 días o menos (inclusive) genera alerta. El valor
// se aplica en todos los puntos que evalúan vencimientos.
const DiasAvisoVencimiento = 10

// Tipos de alerta.
const (
	AlertaSinStock    = "sin_stock"
	AlertaPocoStock   = "poco_stock"
	AlertaSobreStock  = "sobre_stock"
	AlertaVencimiento = "vencimiento"
)

// Prioridades de alerta.
const (
	PrioridadAlta  = "alta"
	PrioridadMedia = "media"
	PrioridadBaja  = "baja"
)

// Alert es un objeto de vista derivado: se recalcula completo en cada
// evaluación y nunca se persiste.
type Alert struct {
	ProductoID       int64
	ProductoNombre   string
	ProductoSKU      string
	Tipo             string
	Prioridad        string
	Mensaje          string
	StockActual      int
	StockMinimo      int
	FechaVencimiento string // solo en alertas de vencimiento
	DiasRestantes    *int   // solo en alertas de vencimiento
}

// GenerateAlerts evalúa el snapshot completo de productos a la fecha asOf y
// devuelve las alertas ordenadas por prioridad (alta, media, baja; orden de
// entrada como desempate). Por producto hay a lo sumo una alerta de stock;
// la de vencimiento es independiente y puede coexistir con ella.
//
// Función pura: mismas entradas, mismas alertas. Seguro llamarla desde
// cualquier refresco de vista.
func GenerateAlerts(productos []Product, asOf time.Time) []Alert {
	var alertas []Alert
	for _, p := range productos {
		if a, ok := alertaStock(p); ok {
			alertas = append(alertas, a)
		}
		if a, ok := alertaVencimiento(p, asOf); ok {
			alertas = append(alertas, a)
		}
	}
	rango := map[string]int{PrioridadAlta: 0, PrioridadMedia: 1, PrioridadBaja: 2}
	sort.SliceStable(alertas, func(i, j int) bool {
		return rango[alertas[i].Prioridad] < rango[alertas[j].Prioridad]
	})
	return alertas
}

// alertaStock deriva la alerta de estado de stock con los mismos umbrales de
// ClassifyStock. Estado "En stock" no genera alerta.
func alertaStock(p Product) (Alert, bool) {
	min := StockMinimoPorDefecto
	if p.MinStock != nil {
		min = *p.MinStock
	}
	base := Alert{
		ProductoID:     p.ID,
		ProductoNombre: p.Nombre,
		ProductoSKU:    skuOSinSKU(p.SKU),
		StockActual:    p.Stock,
		StockMinimo:    min,
	}
	switch estado := ClassifyStock(p.Stock, p.MinStock, p.MaxStock); estado.Etiqueta {
	case EstadoSinStock:
		base.Tipo = AlertaSinStock
		base.Prioridad = PrioridadAlta
		base.Mensaje = "Producto agotado - requiere reposición urgente"
	case EstadoPocoStock:
		base.Tipo = AlertaPocoStock
		base.Prioridad = PrioridadMedia
		base.Mensaje = fmt.Sprintf("Stock bajo (mín: %d) - considerar reposición", min)
	case EstadoSobreStock:
		base.Tipo = AlertaSobreStock
		base.Prioridad = PrioridadBaja
		base.Mensaje = fmt.Sprintf("Stock excedido (máx: %d) - considerar redistribución", *p.MaxStock)
	default:
		return Alert{}, false
	}
	return base, true
}

// alertaVencimiento evalúa la fecha de vencimiento. Solo aplica con stock > 0;
// fechas malformadas no generan alerta (jamás panic).
func alertaVencimiento(p Product, asOf time.Time) (Alert, bool) {
	if p.FechaVencimiento == "" || p.Stock <= 0 {
		return Alert{}, false
	}
	vence, ok := ParseFechaVencimiento(p.FechaVencimiento)
	if !ok {
		return Alert{}, false
	}
	dias := diasCalendario(vence, asOf)
	min := StockMinimoPorDefecto
	if p.MinStock != nil {
		min = *p.MinStock
	}
	a := Alert{
		ProductoID:       p.ID,
		ProductoNombre:   p.Nombre,
		ProductoSKU:      skuOSinSKU(p.SKU),
		Tipo:             AlertaVencimiento,
		StockActual:      p.Stock,
		StockMinimo:      min,
		FechaVencimiento: p.FechaVencimiento,
		DiasRestantes:    &dias,
	}
	switch {
	case dias < 0:
		a.Prioridad = PrioridadAlta
		a.Mensaje = fmt.Sprintf("Producto VENCIDO hace %d día(s) - retirar", -dias)
	case dias == 0:
		a.Prioridad = PrioridadMedia
		a.Mensaje = "Producto vence HOY - acción inmediata requerida"
	case dias == 1:
		a.Prioridad = PrioridadMedia
		a.Mensaje = "Producto vence MAÑANA - priorizar venta"
	case dias <= DiasAvisoVencimiento:
		a.Prioridad = PrioridadMedia
		a.Mensaje = fmt.Sprintf("Producto vence en %d días - considerar promoción", dias)
	default:
		return Alert{}, false
	}
	return a, true
}

func skuOSinSKU(sku string) string {
	if sku == "" {
		return "SIN-SKU"
	}
	return sku
}
