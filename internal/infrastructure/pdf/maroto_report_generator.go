// Package pdf implementa la generación del Reporte de Inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Total productos | Sin stock | Poco | Sobre stock     │
//	│  VALORIZACIÓN: costo total / venta total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Cat. | Stock | Estado | Costo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS ACTIVAS: prioridad + mensaje                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tupyme/inventario-api/internal/application/usecase"
	inv "github.com/tupyme/inventario-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 93, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 40, Blue: 40}
	colorWarning = &props.Color{Red: 180, Green: 120, Blue: 20}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.InventoryReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	data *usecase.ReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(data.Organization.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(data))
	m.AddRows(valorizacionRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableProductRows(data.Products) {
		m.AddRows(r)
	}

	if len(data.Alerts) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range alertRows(data.Alerts) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y fecha de generación (der).
func headerRow(data *usecase.ReportData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(data.Organization.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("GENERADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

// kpiRow: conteos por estado de stock.
func kpiRow(data *usecase.ReportData) core.Row {
	kpi := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: color, Top: 5,
			}),
		)
	}
	return row.New(14).Add(
		kpi("PRODUCTOS", fmt.Sprintf("%d", len(data.Products)), colorPrimary),
		kpi("SIN STOCK", fmt.Sprintf("%d", data.SinStock), colorDanger),
		kpi("POCO STOCK", fmt.Sprintf("%d", data.PocoStock), colorWarning),
		kpi("SOBRE STOCK", fmt.Sprintf("%d", data.SobreStock), colorGray),
	)
}

// valorizacionRow: valor total del inventario a costo y a precio de venta.
func valorizacionRow(data *usecase.ReportData) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New("Valor a costo: $"+formatMoney(data.TotalCosto.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("Valor a venta: $"+formatMoney(data.TotalVenta.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Center),
		h("Estado", 2, align.Center),
		h("Costo", 1, align.Right),
	)
}

// tableProductRows: una fila por producto, con el estado coloreado.
func tableProductRows(products []usecase.ReportProduct) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				p.SKU,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				p.Nombre,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				p.Categoria,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d %s", p.Stock, p.Formato),
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				p.EstadoStock,
				props.Text{Size: 7.5, Align: align.Center, Top: 1, Color: severityColor(p.Severidad)},
			)),
			col.New(1).Add(text.New(
				"$"+formatMoney(p.Costo.StringFixed(0)),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// alertRows: bloque de alertas activas ordenadas por prioridad.
func alertRows(alerts []inv.Alert) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(fmt.Sprintf("ALERTAS ACTIVAS (%d)", len(alerts)), props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, a := range alerts {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(
				a.Prioridad,
				props.Text{Style: fontstyle.Bold, Size: 7.5, Top: 1, Left: 1, Color: priorityColor(a.Prioridad)},
			)),
			col.New(10).Add(text.New(
				a.Mensaje,
				props.Text{Size: 7.5, Top: 1, Color: colorGray},
			)),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func severityColor(severidad string) *props.Color {
	switch severidad {
	case inv.SeveridadDestructive:
		return colorDanger
	case inv.SeveridadWarning:
		return colorWarning
	default:
		return colorGray
	}
}

func priorityColor(prioridad string) *props.Color {
	switch prioridad {
	case inv.PrioridadAlta:
		return colorDanger
	case inv.PrioridadMedia:
		return colorWarning
	default:
		return colorGray
	}
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}
