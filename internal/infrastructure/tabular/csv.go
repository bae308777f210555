package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/tupyme/inventario-api/internal/domain/inventory"
)

// utf8BOM marca de orden de bytes que Excel antepone a los CSV UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV parsea texto CSV a filas con encabezados normalizados. Quita el
// BOM UTF-8 si existe y detecta el delimitador (coma o punto y coma) contando
// ocurrencias en la línea de encabezado.
func ParseCSV(data []byte) ([]inventory.RowMap, error) {
	texto := bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(texto))
	r.Comma = DetectSeparator(texto)
	r.FieldsPerRecord = -1 // filas cortas se completan con vacío
	r.TrimLeadingSpace = true

	registros, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear csv: %w", err)
	}
	if len(registros) == 0 {
		return nil, nil
	}

	encabezados := make([]string, len(registros[0]))
	for i, h := range registros[0] {
		encabezados[i] = NormalizeHeader(h)
	}

	var filas []inventory.RowMap
	for _, registro := range registros[1:] {
		if filaVacia(registro) {
			continue
		}
		fila := inventory.RowMap{}
		for i, h := range encabezados {
			if i < len(registro) {
				fila[h] = registro[i]
			}
		}
		filas = append(filas, fila)
	}
	return filas, nil
}

// DetectSeparator compara comas y puntos y coma en la primera línea.
func DetectSeparator(data []byte) rune {
	primeraLinea := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		primeraLinea = data[:i]
	}
	if bytes.Count(primeraLinea, []byte{';'}) > bytes.Count(primeraLinea, []byte{','}) {
		return ';'
	}
	return ','
}

func filaVacia(registro []string) bool {
	for _, campo := range registro {
		if strings.TrimSpace(campo) != "" {
			return false
		}
	}
	return true
}

// ExportCSV serializa el catálogo al CSV canónico: columnas en orden fijo,
// montos con dos decimales y activo siempre "true" (los productos exportados
// son los vigentes).
func ExportCSV(productos []inventory.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeaders); err != nil {
		return nil, fmt.Errorf("exportar csv: %w", err)
	}
	for _, p := range productos {
		registro := []string{
			p.SKU,
			p.Nombre,
			p.Categoria,
			p.Formato,
			p.Costo.StringFixed(2),
			p.Precio.StringFixed(2),
			strconv.Itoa(p.Stock),
			enteroOVacio(p.MinStock),
			enteroOVacio(p.MaxStock),
			p.FechaVencimiento,
			"true",
			"",
		}
		if err := w.Write(registro); err != nil {
			return nil, fmt.Errorf("exportar csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("exportar csv: %w", err)
	}
	return buf.Bytes(), nil
}

// TemplateCSV plantilla mínima: solo la línea de encabezados amigables.
func TemplateCSV() []byte {
	return []byte(strings.Join(TemplateHeaders, ","))
}

func enteroOVacio(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
