package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tupyme/inventario-api/internal/domain/inventory"
)

func filaValida() inventory.RowMap {
	return inventory.RowMap{
		"sku":          "A1",
		"nombre":       "Arroz blanco",
		"categoria":    "Cereales y Granos",
		"formato":      "Saco",
		"costo":        "10.50",
		"precio_venta": "15",
		"stock":        "20",
	}
}

// TestReconcile_FilaValidaEsAceptada comprueba el camino feliz con los
// valores parseados correctamente.
func TestReconcile_FilaValidaEsAceptada(t *testing.T) {
	res := inventory.Reconcile([]inventory.RowMap{filaValida()}, inventory.ImportModeReplace, nil)

	require.Empty(t, res.Errores)
	require.Len(t, res.Aceptados, 1)
	p := res.Aceptados[0]
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "A1", p.SKU)
	assert.Equal(t, "Arroz blanco", p.Nombre)
	assert.Equal(t, 20, p.Stock)
	assert.True(t, p.Costo.Equal(decimal.RequireFromString("10.50")))
	assert.True(t, p.Precio.Equal(decimal.NewFromInt(15)))
}

// TestReconcile_SKUVacioRechazaSoloEsaFila: la fila inválida se rechaza con su
// número de fila y las siguientes se procesan normal.
func TestReconcile_SKUVacioRechazaSoloEsaFila(t *testing.T) {
	mala := filaValida()
	mala["sku"] = "  "
	buena := filaValida()
	buena["sku"] = "B2"

	res := inventory.Reconcile([]inventory.RowMap{mala, buena}, inventory.ImportModeReplace, nil)

	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "Fila 2")
	assert.Contains(t, res.Errores[0], "sku vacío")
	require.Len(t, res.Aceptados, 1)
	assert.Equal(t, "B2", res.Aceptados[0].SKU)
}

// TestReconcile_PerecederaSinVencimiento: categoría perecedera sin fecha se
// rechaza; la comparación ignora mayúsculas y tildes.
func TestReconcile_PerecederaSinVencimiento(t *testing.T) {
	for _, categoria := range []string{"Lácteos", "lácteos", "LACTEOS", "lacteos"} {
		fila := filaValida()
		fila["categoria"] = categoria
		res := inventory.Reconcile([]inventory.RowMap{fila}, inventory.ImportModeReplace, nil)
		require.Len(t, res.Errores, 1, "categoría %q", categoria)
		assert.Contains(t, res.Errores[0], "fecha_vencimiento requerida para categoría perecedera")
	}
}

// TestReconcile_EscenarioFilaConDosErrores: fila sin sku y con categoría
// perecedera sin vencimiento reporta ambas partes en un solo mensaje.
func TestReconcile_EscenarioFilaConDosErrores(t *testing.T) {
	fila := inventory.RowMap{
		"sku":          "",
		"nombre":       "Leche",
		"categoria":    "Lácteos",
		"costo":        "10",
		"precio_venta": "15",
		"stock":        "5",
	}
	res := inventory.Reconcile([]inventory.RowMap{fila}, inventory.ImportModeReplace, nil)

	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "sku vacío")
	assert.Contains(t, res.Errores[0], "fecha_vencimiento requerida para categoría perecedera")
	assert.Empty(t, res.Aceptados)
}

// TestReconcile_DecimalesConComa: coma como separador decimal y símbolos de
// moneda se toleran.
func TestReconcile_DecimalesConComa(t *testing.T) {
	fila := filaValida()
	fila["costo"] = "10,50"
	fila["precio_venta"] = "$ 15,99"

	res := inventory.Reconcile([]inventory.RowMap{fila}, inventory.ImportModeReplace, nil)

	require.Empty(t, res.Errores)
	require.Len(t, res.Aceptados, 1)
	assert.True(t, res.Aceptados[0].Costo.Equal(decimal.RequireFromString("10.50")))
	assert.True(t, res.Aceptados[0].Precio.Equal(decimal.RequireFromString("15.99")))
}

// TestReconcile_CostoNegativoRechazado: negativos tras el parseo rechazan la fila.
func TestReconcile_CostoNegativoRechazado(t *testing.T) {
	fila := filaValida()
	fila["costo"] = "-5"
	res := inventory.Reconcile([]inventory.RowMap{fila}, inventory.ImportModeReplace, nil)
	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "costo debe ser >= 0")
}

// TestReconcile_MaxMenorOIgualQueMinRechazado: si ambos umbrales vienen en la
// fila, max_stock tiene que ser estrictamente mayor.
func TestReconcile_MaxMenorOIgualQueMinRechazado(t *testing.T) {
	fila := filaValida()
	fila["min_stock"] = "10"
	fila["max_stock"] = "10"
	res := inventory.Reconcile([]inventory.RowMap{fila}, inventory.ImportModeReplace, nil)
	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "max_stock debe ser mayor que min_stock")
}

// TestReconcile_FechaInvalidaRechazada: una fecha presente pero no parseable
// rechaza la fila (no se importa "sin fecha" en silencio).
func TestReconcile_FechaInvalidaRechazada(t *testing.T) {
	fila := filaValida()
	fila["fecha_vencimiento"] = "31/02/2026"
	res := inventory.Reconcile([]inventory.RowMap{fila}, inventory.ImportModeReplace, nil)
	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "fecha_vencimiento formato inválido")
}

// TestReconcile_FechaFormatoPantallaSeNormaliza: 5/3/2026 se guarda como ISO.
func TestReconcile_FechaFormatoPantallaSeNormaliza(t *testing.T) {
	fila := filaValida()
	fila["categoria"] = "Lácteos"
	fila["fecha_vencimiento"] = "5/3/2026"
	res := inventory.Reconcile([]inventory.RowMap{fila}, inventory.ImportModeReplace, nil)
	require.Empty(t, res.Errores)
	require.Len(t, res.Aceptados, 1)
	assert.Equal(t, "2026-03-05", res.Aceptados[0].FechaVencimiento)
}

// TestReconcile_ActivoFalsoSeExcluyeEnSilencio: filas inactivas no cuentan
// como error ni como aceptadas.
func TestReconcile_ActivoFalsoSeExcluyeEnSilencio(t *testing.T) {
	for _, valor := range []string{"false", "FALSE", "0", "no", "falso"} {
		fila := filaValida()
		fila["activo"] = valor
		res := inventory.Reconcile([]inventory.RowMap{fila}, inventory.ImportModeReplace, nil)
		assert.Empty(t, res.Errores, "activo=%q", valor)
		assert.Empty(t, res.Aceptados, "activo=%q", valor)
	}
}

// TestReconcile_ActivoPorDefectoEsTrue: vacío, "si", "TRUE", "1" y "verdadero"
// dejan la fila activa.
func TestReconcile_ActivoPorDefectoEsTrue(t *testing.T) {
	for _, valor := range []string{"", "si", "TRUE", "1", "verdadero"} {
		fila := filaValida()
		fila["activo"] = valor
		res := inventory.Reconcile([]inventory.RowMap{fila}, inventory.ImportModeReplace, nil)
		assert.Len(t, res.Aceptados, 1, "activo=%q", valor)
	}
}

// TestReconcile_ConsecutivosModoReplace: en replace los IDs arrancan en 1
// aunque existan productos.
func TestReconcile_ConsecutivosModoReplace(t *testing.T) {
	existentes := []inventory.Product{{ID: 41}, {ID: 42}}
	f1 := filaValida()
	f2 := filaValida()
	f2["sku"] = "B2"

	res := inventory.Reconcile([]inventory.RowMap{f1, f2}, inventory.ImportModeReplace, existentes)

	require.Len(t, res.Aceptados, 2)
	assert.Equal(t, int64(1), res.Aceptados[0].ID)
	assert.Equal(t, int64(2), res.Aceptados[1].ID)
}

// TestReconcile_ConsecutivosModoAdd: en add los IDs continúan después del
// máximo existente, sin colisiones.
func TestReconcile_ConsecutivosModoAdd(t *testing.T) {
	existentes := []inventory.Product{{ID: 3}, {ID: 7}, {ID: 5}}
	f1 := filaValida()
	f2 := filaValida()
	f2["sku"] = "B2"

	res := inventory.Reconcile([]inventory.RowMap{f1, f2}, inventory.ImportModeAdd, existentes)

	require.Len(t, res.Aceptados, 2)
	assert.Equal(t, int64(8), res.Aceptados[0].ID)
	assert.Equal(t, int64(9), res.Aceptados[1].ID)
}

// TestReconcile_NumeroDeFilaCuentaElEncabezado: los errores de la fila i de
// datos se reportan como fila i+2.
func TestReconcile_NumeroDeFilaCuentaElEncabezado(t *testing.T) {
	buena := filaValida()
	mala := filaValida()
	mala["nombre"] = ""

	res := inventory.Reconcile([]inventory.RowMap{buena, mala}, inventory.ImportModeReplace, nil)

	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "Fila 3: nombre vacío")
}

// TestReconcile_DefaultsDeFormatoYCategoria: formato vacío → "Unidad",
// categoría vacía → "Sin categoría", stock ausente → 0.
func TestReconcile_DefaultsDeFormatoYCategoria(t *testing.T) {
	fila := inventory.RowMap{"sku": "A1", "nombre": "Genérico"}
	res := inventory.Reconcile([]inventory.RowMap{fila}, inventory.ImportModeReplace, nil)
	require.Len(t, res.Aceptados, 1)
	p := res.Aceptados[0]
	assert.Equal(t, "Unidad", p.Formato)
	assert.Equal(t, "Sin categoría", p.Categoria)
	assert.Equal(t, 0, p.Stock)
	assert.Nil(t, p.MinStock)
	assert.Nil(t, p.MaxStock)
}

// TestReconcile_SkuRepetidoEnArchivoRechazado: la segunda aparición del SKU
// se rechaza con su fila; la primera y las demás filas válidas se aceptan.
func TestReconcile_SkuRepetidoEnArchivoRechazado(t *testing.T) {
	f1 := filaValida()
	f2 := filaValida()
	f3 := filaValida()
	f3["sku"] = "B2"

	res := inventory.Reconcile([]inventory.RowMap{f1, f2, f3}, inventory.ImportModeReplace, nil)

	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "Fila 3: sku duplicado")
	require.Len(t, res.Aceptados, 2)
	assert.Equal(t, "A1", res.Aceptados[0].SKU)
	assert.Equal(t, "B2", res.Aceptados[1].SKU)
}

// TestReconcile_SkuExistenteEnModoAddRechazado: en add un SKU que ya está en
// el catálogo rechaza la fila en vez de chocar al insertar.
func TestReconcile_SkuExistenteEnModoAddRechazado(t *testing.T) {
	existentes := []inventory.Product{{ID: 1, SKU: "A1"}}
	dup := filaValida()
	nueva := filaValida()
	nueva["sku"] = "B2"

	res := inventory.Reconcile([]inventory.RowMap{dup, nueva}, inventory.ImportModeAdd, existentes)

	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "Fila 2: sku duplicado")
	require.Len(t, res.Aceptados, 1)
	assert.Equal(t, "B2", res.Aceptados[0].SKU)
}

// TestReconcile_SkuExistenteEnModoReplacePermitido: replace descarta el
// catálogo actual, así que reutilizar un SKU viejo es válido.
func TestReconcile_SkuExistenteEnModoReplacePermitido(t *testing.T) {
	existentes := []inventory.Product{{ID: 1, SKU: "A1"}}

	res := inventory.Reconcile([]inventory.RowMap{filaValida()}, inventory.ImportModeReplace, existentes)

	require.Empty(t, res.Errores)
	require.Len(t, res.Aceptados, 1)
	assert.Equal(t, "A1", res.Aceptados[0].SKU)
}

// TestReconcile_SkuDeFilaInactivaNoReserva: una fila inactiva no bloquea el
// mismo SKU en una fila activa posterior.
func TestReconcile_SkuDeFilaInactivaNoReserva(t *testing.T) {
	inactiva := filaValida()
	inactiva["activo"] = "false"
	activa := filaValida()

	res := inventory.Reconcile([]inventory.RowMap{inactiva, activa}, inventory.ImportModeReplace, nil)

	require.Empty(t, res.Errores)
	require.Len(t, res.Aceptados, 1)
	assert.Equal(t, "A1", res.Aceptados[0].SKU)
}

// TestReconcile_NoMutaExistentes: el catálogo actual nunca se toca.
func TestReconcile_NoMutaExistentes(t *testing.T) {
	existentes := []inventory.Product{{ID: 1, SKU: "X", Stock: 9}}
	copia := existentes[0]
	_ = inventory.Reconcile([]inventory.RowMap{filaValida()}, inventory.ImportModeAdd, existentes)
	assert.Equal(t, copia, existentes[0])
}
