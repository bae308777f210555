// Package inventory contiene las reglas puras del inventario: clasificación
// de stock, generación de alertas, conciliación de importaciones masivas y
// aplicación de movimientos. Ninguna función de este paquete toca la base de
// datos ni el reloj del sistema: el caller inyecta el snapshot de productos y
// el instante "ahora", así todo es determinista y testeable.
package inventory

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Valores por defecto del catálogo.
const (
	FormatoPorDefecto   = "Unidad"
	CategoriaPorDefecto = "Sin categoría"
)

// Product es el snapshot de un producto sobre el que opera el núcleo.
// ID es el consecutivo numérico por tenant (lo asigna la conciliación de
// importaciones). FechaVencimiento es ISO YYYY-MM-DD, vacía si no aplica.
type Product struct {
	ID               int64
	SKU              string
	Nombre           string
	Formato          string
	Categoria        string
	Stock            int
	Costo            decimal.Decimal
	Precio           decimal.Decimal
	MinStock         *int
	MaxStock         *int
	FechaVencimiento string
}

// CategoriasOptions categorías fijas del catálogo.
var CategoriasOptions = []string{
	"Bebidas",
	"Lácteos",
	"Carnes y Embutidos",
	"Congelados",
	"Panadería",
	"Cereales y Granos",
	"Enlatados",
	"Condimentos y Salsas",
	"Snacks y Dulces",
	"Limpieza del Hogar",
	"Higiene Personal",
	"Frutas y Vegetales",
}

// FormatoOptions unidades de venta disponibles.
var FormatoOptions = []string{
	"Unidad",
	"Libra (lb)",
	"Kilogramo (kg)",
	"Gramo (g)",
	"Litro (L)",
	"Mililitro (ml)",
	"Onza (oz)",
	"Paquete",
	"Bolsa",
	"Caja",
	"Botella",
	"Lata",
	"Pomo/Frasco",
	"Saco",
	"Bandeja",
	"Cubeta/Galón",
	"Display",
	"Six-pack",
}

// CategoriasPerecederas categorías que exigen fecha de vencimiento.
var CategoriasPerecederas = []string{
	"Bebidas",
	"Lácteos",
	"Carnes y Embutidos",
	"Congelados",
	"Panadería",
	"Frutas y Vegetales",
}

// EsCategoriaPerecedera indica si la categoría pertenece a la lista de
// perecederas. La comparación ignora mayúsculas y tildes ("lacteos" y
// "Lácteos" son la misma categoría en un CSV escrito a mano).
func EsCategoriaPerecedera(categoria string) bool {
	c := plegarCategoria(categoria)
	if c == "" {
		return false
	}
	for _, p := range CategoriasPerecederas {
		if plegarCategoria(p) == c {
			return true
		}
	}
	return false
}

// plegarCategoria minúsculas sin marcas diacríticas, para comparar categorías.
func plegarCategoria(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plegada, _, err := transform.String(t, s)
	if err != nil {
		plegada = s
	}
	return strings.ToLower(strings.TrimSpace(plegada))
}
