package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tupyme/inventario-api/internal/domain/inventory"
)

func intPtr(n int) *int { return &n }

// TestClassifyStock_SinStockGanaSiempre verifica que stock cero clasifica como
// "Sin stock" sin importar los umbrales configurados.
func TestClassifyStock_SinStockGanaSiempre(t *testing.T) {
	casos := []struct {
		nombre   string
		min, max *int
	}{
		{"sin umbrales", nil, nil},
		{"con min", intPtr(5), nil},
		{"con min y max", intPtr(5), intPtr(50)},
		{"min cero", intPtr(0), nil},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			estado := inventory.ClassifyStock(0, c.min, c.max)
			assert.Equal(t, "Sin stock", estado.Etiqueta)
			assert.Equal(t, inventory.SeveridadDestructive, estado.Severidad)
		})
	}
}

// TestClassifyStock_UmbralMinimoInclusivo: con el mínimo por defecto (10),
// stock 10 es "Poco stock" y stock 11 ya es "En stock".
func TestClassifyStock_UmbralMinimoInclusivo(t *testing.T) {
	assert.Equal(t, "Poco stock", inventory.ClassifyStock(10, nil, nil).Etiqueta)
	assert.Equal(t, "En stock", inventory.ClassifyStock(11, nil, nil).Etiqueta)
	assert.Equal(t, "Poco stock", inventory.ClassifyStock(1, nil, nil).Etiqueta)
}

// TestClassifyStock_UmbralMaximoInclusivo: stock == maxStock ya es "Sobre stock".
func TestClassifyStock_UmbralMaximoInclusivo(t *testing.T) {
	estado := inventory.ClassifyStock(50, intPtr(10), intPtr(50))
	assert.Equal(t, "Sobre stock", estado.Etiqueta)
	assert.Equal(t, inventory.SeveridadSecondary, estado.Severidad)

	assert.Equal(t, "En stock", inventory.ClassifyStock(49, intPtr(10), intPtr(50)).Etiqueta)
	assert.Equal(t, "Sobre stock", inventory.ClassifyStock(51, intPtr(10), intPtr(50)).Etiqueta)
}

// TestClassifyStock_PocoStockGanaSobreSobreStock: si min y max se cruzan por
// configuración extraña, el orden de evaluación manda (poco antes que sobre).
func TestClassifyStock_PocoStockGanaSobreSobreStock(t *testing.T) {
	estado := inventory.ClassifyStock(5, intPtr(10), intPtr(3))
	assert.Equal(t, "Poco stock", estado.Etiqueta)
}

// TestClassifyStock_SinMaximoNoHaySobreStock: sin maxStock definido nunca
// se clasifica "Sobre stock".
func TestClassifyStock_SinMaximoNoHaySobreStock(t *testing.T) {
	estado := inventory.ClassifyStock(1_000_000, intPtr(10), nil)
	assert.Equal(t, "En stock", estado.Etiqueta)
	assert.Equal(t, inventory.SeveridadSuccess, estado.Severidad)
}

// TestClassifyStock_MinimoExplicitoReemplazaDefault verifica que un minStock
// configurado desplaza el default de 10.
func TestClassifyStock_MinimoExplicitoReemplazaDefault(t *testing.T) {
	assert.Equal(t, "En stock", inventory.ClassifyStock(4, intPtr(3), nil).Etiqueta)
	assert.Equal(t, "Poco stock", inventory.ClassifyStock(3, intPtr(3), nil).Etiqueta)
}
