package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tupyme/inventario-api/internal/domain"
	"github.com/tupyme/inventario-api/internal/domain/inventory"
)

var ahora = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func productoConStock(stock int) inventory.Product {
	return inventory.Product{
		ID:        7,
		SKU:       "A1",
		Nombre:    "Café molido",
		Categoria: "Bebidas",
		Formato:   "Paquete",
		Stock:     stock,
	}
}

// TestApplyMovement_Entrada suma la cantidad y registra antes/después.
func TestApplyMovement_Entrada(t *testing.T) {
	res, err := inventory.ApplyMovement(productoConStock(5), inventory.MovementInput{
		Tipo: inventory.MovementTypeEntrada, Cantidad: 10, Usuario: "ana@tupyme.com", UsuarioRol: "bodeguero",
	}, ahora)

	require.NoError(t, err)
	assert.Equal(t, 5, res.StockAntes)
	assert.Equal(t, 15, res.StockDespues)
	m := res.Movimiento
	assert.Equal(t, inventory.MovementTypeEntrada, m.Tipo)
	assert.Equal(t, 10, m.Cantidad)
	assert.Equal(t, 5, m.StockAntes)
	assert.Equal(t, 15, m.StockDespues)
	assert.Equal(t, "Entrada de inventario", m.Motivo) // default cuando viene en blanco
	assert.Equal(t, "bodeguero", m.UsuarioRol)
	assert.Equal(t, ahora, m.Fecha)
}

// TestApplyMovement_SalidaMayorQueStock: se rechaza y el producto queda igual.
func TestApplyMovement_SalidaMayorQueStock(t *testing.T) {
	p := productoConStock(5)
	res, err := inventory.ApplyMovement(p, inventory.MovementInput{
		Tipo: inventory.MovementTypeSalida, Cantidad: 6,
	}, ahora)

	require.ErrorIs(t, err, domain.ErrStockNegativo)
	assert.Nil(t, res)
	assert.Equal(t, 5, p.Stock, "el snapshot no se muta en un rechazo")
}

// TestApplyMovement_SalidaExacta: sacar todo el stock es válido (queda en 0).
func TestApplyMovement_SalidaExacta(t *testing.T) {
	res, err := inventory.ApplyMovement(productoConStock(5), inventory.MovementInput{
		Tipo: inventory.MovementTypeSalida, Cantidad: 5,
	}, ahora)
	require.NoError(t, err)
	assert.Equal(t, 0, res.StockDespues)
}

// TestApplyMovement_AjusteSinMotivo falla con ErrMotivoRequerido, también con
// motivo de solo espacios.
func TestApplyMovement_AjusteSinMotivo(t *testing.T) {
	for _, motivo := range []string{"", "   ", "\t"} {
		_, err := inventory.ApplyMovement(productoConStock(10), inventory.MovementInput{
			Tipo: inventory.MovementTypeAjuste, Cantidad: 4, Motivo: motivo,
		}, ahora)
		assert.ErrorIs(t, err, domain.ErrMotivoRequerido, "motivo %q", motivo)
	}
}

// TestApplyMovement_AjusteEstableceObjetivo: el stock resultante es el valor
// objetivo exacto y la cantidad registrada es |objetivo - antes|.
func TestApplyMovement_AjusteEstableceObjetivo(t *testing.T) {
	res, err := inventory.ApplyMovement(productoConStock(10), inventory.MovementInput{
		Tipo: inventory.MovementTypeAjuste, Cantidad: 4, Motivo: "Conteo físico",
	}, ahora)

	require.NoError(t, err)
	assert.Equal(t, 4, res.StockDespues)
	assert.Equal(t, 6, res.Movimiento.Cantidad) // |4 - 10|
	assert.Equal(t, "Conteo físico", res.Movimiento.Motivo)
}

// TestApplyMovement_AjusteHaciaArriba: el valor absoluto también aplica cuando
// el objetivo supera el stock actual.
func TestApplyMovement_AjusteHaciaArriba(t *testing.T) {
	res, err := inventory.ApplyMovement(productoConStock(3), inventory.MovementInput{
		Tipo: inventory.MovementTypeAjuste, Cantidad: 12, Motivo: "Mercancía encontrada",
	}, ahora)
	require.NoError(t, err)
	assert.Equal(t, 12, res.StockDespues)
	assert.Equal(t, 9, res.Movimiento.Cantidad)
}

// TestApplyMovement_CantidadNegativaRechazada en cualquier tipo.
func TestApplyMovement_CantidadNegativaRechazada(t *testing.T) {
	for _, tipo := range []string{inventory.MovementTypeEntrada, inventory.MovementTypeSalida, inventory.MovementTypeAjuste} {
		_, err := inventory.ApplyMovement(productoConStock(10), inventory.MovementInput{
			Tipo: tipo, Cantidad: -1, Motivo: "x",
		}, ahora)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %s", tipo)
	}
}

// TestApplyMovement_CantidadCeroEsValida: un movimiento nulo sigue siendo un
// evento registrable (el rechazo, si se quiere, es cosa de la UI).
func TestApplyMovement_CantidadCeroEsValida(t *testing.T) {
	res, err := inventory.ApplyMovement(productoConStock(10), inventory.MovementInput{
		Tipo: inventory.MovementTypeEntrada, Cantidad: 0,
	}, ahora)
	require.NoError(t, err)
	assert.Equal(t, 10, res.StockDespues)
}

// TestApplyMovement_TipoDesconocidoRechazado.
func TestApplyMovement_TipoDesconocidoRechazado(t *testing.T) {
	_, err := inventory.ApplyMovement(productoConStock(10), inventory.MovementInput{
		Tipo: "traslado", Cantidad: 1,
	}, ahora)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestApplyMovement_EscenarioReposicion: producto en poco stock recibe una
// entrada y pasa a "En stock" (5 → 15 con mínimo 10).
func TestApplyMovement_EscenarioReposicion(t *testing.T) {
	min := 10
	p := productoConStock(5)
	p.MinStock = &min

	assert.Equal(t, "Poco stock", inventory.ClassifyStock(p.Stock, p.MinStock, p.MaxStock).Etiqueta)

	res, err := inventory.ApplyMovement(p, inventory.MovementInput{
		Tipo: inventory.MovementTypeEntrada, Cantidad: 10,
	}, ahora)
	require.NoError(t, err)

	assert.Equal(t, "En stock", inventory.ClassifyStock(res.StockDespues, p.MinStock, p.MaxStock).Etiqueta)
}

// TestApplyMovement_RegistroDesnormalizado: el movimiento captura nombre, sku,
// categoría y formato del producto al momento de aplicarse.
func TestApplyMovement_RegistroDesnormalizado(t *testing.T) {
	res, err := inventory.ApplyMovement(productoConStock(5), inventory.MovementInput{
		Tipo: inventory.MovementTypeSalida, Cantidad: 2, Usuario: "ana@tupyme.com", UsuarioRol: "admin",
	}, ahora)
	require.NoError(t, err)
	m := res.Movimiento
	assert.Equal(t, int64(7), m.ProductoID)
	assert.Equal(t, "Café molido", m.ProductoNombre)
	assert.Equal(t, "A1", m.ProductoSKU)
	assert.Equal(t, "Bebidas", m.ProductoCategoria)
	assert.Equal(t, "Paquete", m.ProductoFormato)
}
