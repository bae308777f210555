package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RowMap es una fila tabular ya parseada, con encabezados normalizados
// (sku, nombre, categoria, formato, costo, precio_venta, stock, min_stock,
// max_stock, fecha_vencimiento, activo, notas).
type RowMap map[string]string

// ImportMode modo de importación masiva.
type ImportMode string

const (
	// ImportModeAdd agrega al catálogo existente; los consecutivos nuevos
	// arrancan en max(existentes)+1 para no colisionar.
	ImportModeAdd ImportMode = "add"
	// ImportModeReplace reemplaza el catálogo completo; los consecutivos
	// arrancan en 1.
	ImportModeReplace ImportMode = "replace"
)

// ImportResult resultado de la conciliación: filas aceptadas (activas y
// válidas, en el orden de entrada) y un mensaje legible por fila rechazada.
type ImportResult struct {
	Aceptados []Product
	Errores   []string
}

// Reconcile valida y concilia filas importadas contra el catálogo actual.
//
// Cada fila se acepta o rechaza completa; un rechazo nunca detiene las filas
// siguientes. Los números de fila de los mensajes son 1-indexados contando el
// encabezado: la primera fila de datos es la fila 2. Un SKU repetido dentro
// del archivo, o que ya exista en el catálogo en modo add, rechaza la fila.
// El slice existentes no se modifica: el caller decide si une o reemplaza.
func Reconcile(rows []RowMap, mode ImportMode, existentes []Product) ImportResult {
	var res ImportResult

	baseID := int64(1)
	skusVistos := make(map[string]struct{})
	if mode == ImportModeAdd {
		for _, p := range existentes {
			if p.ID >= baseID {
				baseID = p.ID + 1
			}
			skusVistos[p.SKU] = struct{}{}
		}
	}

	for i, row := range rows {
		fila := i + 2
		var errores []string

		sku := strings.TrimSpace(row["sku"])
		nombre := strings.TrimSpace(row["nombre"])
		if sku == "" {
			errores = append(errores, "sku vacío")
		} else if _, existe := skusVistos[sku]; existe {
			errores = append(errores, "sku duplicado")
		}
		if nombre == "" {
			errores = append(errores, "nombre vacío")
		}

		costo := NormalizarDecimal(row["costo"])
		precio := NormalizarDecimal(row["precio_venta"])
		if strings.TrimSpace(row["costo"]) != "" && costo.IsNegative() {
			errores = append(errores, "costo debe ser >= 0")
		}
		if strings.TrimSpace(row["precio_venta"]) != "" && precio.IsNegative() {
			errores = append(errores, "precio_venta debe ser >= 0")
		}

		stock := 0
		if v := ParseEntero(row["stock"]); v != nil {
			stock = *v
		}
		minStock := ParseEntero(row["min_stock"])
		maxStock := ParseEntero(row["max_stock"])
		if minStock != nil && maxStock != nil && *maxStock <= *minStock {
			errores = append(errores, "max_stock debe ser mayor que min_stock")
		}

		fechaVencimiento := ""
		if raw := strings.TrimSpace(row["fecha_vencimiento"]); raw != "" {
			if iso, ok := NormalizarFecha(raw); ok {
				fechaVencimiento = iso
			} else {
				errores = append(errores, "fecha_vencimiento formato inválido (usar YYYY-MM-DD)")
			}
		}

		categoria := strings.TrimSpace(row["categoria"])
		if EsCategoriaPerecedera(categoria) && fechaVencimiento == "" {
			errores = append(errores, "fecha_vencimiento requerida para categoría perecedera")
		}

		if len(errores) > 0 {
			res.Errores = append(res.Errores, fmt.Sprintf("Fila %d: %s", fila, strings.Join(errores, ", ")))
			continue
		}

		// Filas inactivas se excluyen en silencio: no son errores.
		if !ParseBooleano(row["activo"]) {
			continue
		}
		skusVistos[sku] = struct{}{}

		formato := strings.TrimSpace(row["formato"])
		if formato == "" {
			formato = FormatoPorDefecto
		}
		if categoria == "" {
			categoria = CategoriaPorDefecto
		}

		res.Aceptados = append(res.Aceptados, Product{
			ID:               baseID + int64(len(res.Aceptados)),
			SKU:              sku,
			Nombre:           nombre,
			Formato:          formato,
			Categoria:        categoria,
			Stock:            stock,
			Costo:            costo,
			Precio:           precio,
			MinStock:         minStock,
			MaxStock:         maxStock,
			FechaVencimiento: fechaVencimiento,
		})
	}
	return res
}

// NormalizarDecimal parsea un número tolerando coma como separador decimal y
// descartando caracteres no numéricos (símbolos de moneda, espacios). Valores
// vacíos o irreconocibles devuelven cero; el signo negativo se preserva para
// que la validación de negativos pueda rechazarlo.
func NormalizarDecimal(valor string) decimal.Decimal {
	s := strings.TrimSpace(valor)
	if s == "" {
		return decimal.Zero
	}
	s = strings.Replace(s, ",", ".", 1)
	var b strings.Builder
	for i, r := range s {
		if r >= '0' && r <= '9' || r == '.' || (r == '-' && i == 0) {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseEntero parsea un entero descartando caracteres no numéricos.
// Devuelve nil si el valor está vacío o no contiene dígitos.
func ParseEntero(valor string) *int {
	var b strings.Builder
	for _, r := range strings.TrimSpace(valor) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return nil
	}
	return &n
}

// ParseBooleano parsea el campo activo tolerando TRUE/FALSE, 1/0, si/no y
// verdadero/falso sin distinguir mayúsculas. Vacío o ausente cuenta como true.
func ParseBooleano(valor string) bool {
	switch strings.ToLower(strings.TrimSpace(valor)) {
	case "false", "0", "no", "n", "falso":
		return false
	default:
		return true
	}
}
