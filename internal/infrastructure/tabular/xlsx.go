package tabular

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tupyme/inventario-api/internal/domain/inventory"
)

const hojaPlantilla = "Inventario"

// ParseXLSX lee la primera hoja cuyo nombre contenga "inventario" (o la
// primera hoja del libro si ninguna coincide) y devuelve las filas con los
// encabezados normalizados, igual que ParseCSV.
func ParseXLSX(data []byte) ([]inventory.RowMap, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	hoja := elegirHoja(f.GetSheetList())
	if hoja == "" {
		return nil, nil
	}

	filas, err := f.GetRows(hoja)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", hoja, err)
	}
	if len(filas) == 0 {
		return nil, nil
	}

	encabezados := make([]string, len(filas[0]))
	for i, h := range filas[0] {
		encabezados[i] = NormalizeHeader(h)
	}

	var resultado []inventory.RowMap
	for _, registro := range filas[1:] {
		if filaVacia(registro) {
			continue
		}
		fila := inventory.RowMap{}
		for i, h := range encabezados {
			if i < len(registro) {
				fila[h] = registro[i]
			}
		}
		resultado = append(resultado, fila)
	}
	return resultado, nil
}

func elegirHoja(hojas []string) string {
	for _, nombre := range hojas {
		if strings.Contains(strings.ToLower(nombre), "inventario") {
			return nombre
		}
	}
	if len(hojas) > 0 {
		return hojas[0]
	}
	return ""
}

// anchos de columna de la plantilla, alineados con TemplateHeaders.
var anchosPlantilla = []float64{12, 25, 15, 20, 10, 12, 12, 14, 10, 10}

// TemplateXLSX genera la plantilla de carga: una hoja "Inventario" con los
// encabezados amigables, anchos de columna legibles y listas desplegables de
// formato (columna C) y categoría (columna D) para las filas 2 a 100.
func TemplateXLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hojaPlantilla); err != nil {
		return nil, fmt.Errorf("crear plantilla: %w", err)
	}
	if err := f.SetSheetRow(hojaPlantilla, "A1", &TemplateHeaders); err != nil {
		return nil, fmt.Errorf("crear plantilla: %w", err)
	}
	for i, ancho := range anchosPlantilla {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("crear plantilla: %w", err)
		}
		if err := f.SetColWidth(hojaPlantilla, col, col, ancho); err != nil {
			return nil, fmt.Errorf("crear plantilla: %w", err)
		}
	}

	if err := agregarDesplegable(f, "C2:C100", inventory.FormatoOptions); err != nil {
		return nil, err
	}
	if err := agregarDesplegable(f, "D2:D100", inventory.CategoriasOptions); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar plantilla: %w", err)
	}
	return buf.Bytes(), nil
}

func agregarDesplegable(f *excelize.File, rango string, opciones []string) error {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = rango
	if err := dv.SetDropList(opciones); err != nil {
		return fmt.Errorf("desplegable %s: %w", rango, err)
	}
	if err := f.AddDataValidation(hojaPlantilla, dv); err != nil {
		return fmt.Errorf("desplegable %s: %w", rango, err)
	}
	return nil
}
