// Package tabular implementa el códec de archivos tabulares del inventario:
// parseo de CSV/XLSX hacia filas normalizadas para la conciliación de
// importaciones, y serialización del catálogo a CSV y plantillas de carga.
package tabular

import (
	"regexp"
	"strings"
)

// CSVHeaders columnas canónicas del CSV de import/export, en orden fijo (v1).
var CSVHeaders = []string{
	"sku", "nombre", "categoria", "formato", "costo", "precio_venta",
	"stock", "min_stock", "max_stock", "fecha_vencimiento", "activo", "notas",
}

// TemplateHeaders encabezados amigables de la plantilla de carga.
var TemplateHeaders = []string{
	"SKU", "Nombre", "Formato", "Categoría", "Stock",
	"Stock mínimo", "Stock máximo", "Vencimiento", "Costo", "Precio",
}

var espaciosRe = regexp.MustCompile(`\s+`)

// sinónimos de encabezado → nombre canónico.
var encabezadoMap = map[string]string{
	"precio":           "precio_venta",
	"precioventa":      "precio_venta",
	"precio_de_venta":  "precio_venta",
	"minstock":         "min_stock",
	"min":              "min_stock",
	"stock_minimo":     "min_stock",
	"stock_mínimo":     "min_stock",
	"maxstock":         "max_stock",
	"max":              "max_stock",
	"stock_maximo":     "max_stock",
	"stock_máximo":     "max_stock",
	"fechavencimiento": "fecha_vencimiento",
	"vencimiento":      "fecha_vencimiento",
	"expiration":       "fecha_vencimiento",
	"expiration_date":  "fecha_vencimiento",
	"presentacion":     "formato",
	"unit":             "formato",
	"unidad":           "formato",
	"categoría":        "categoria",
}

// NormalizeHeader normaliza un encabezado: trim, minúsculas, espacios a "_"
// y mapeo de sinónimos ("Precio venta", "precio" y "precioventa" terminan
// todos en "precio_venta").
func NormalizeHeader(header string) string {
	h := espaciosRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(header)), "_")
	if canonico, ok := encabezadoMap[h]; ok {
		return canonico
	}
	return h
}
