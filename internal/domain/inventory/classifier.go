package inventory

// StockMinimoPorDefecto umbral de poco stock cuando el producto no define uno.
const StockMinimoPorDefecto = 10

// Severidades de un estado de stock (coinciden con las variantes visuales de la UI).
const (
	SeveridadDestructive = "destructive"
	SeveridadWarning     = "warning"
	SeveridadSecondary   = "secondary"
	SeveridadSuccess     = "success"
)

// Etiquetas de estado de stock.
const (
	EstadoSinStock   = "Sin stock"
	EstadoPocoStock  = "Poco stock"
	EstadoSobreStock = "Sobre stock"
	EstadoEnStock    = "En stock"
)

// StockStatus etiqueta legible + severidad del estado de stock de un producto.
type StockStatus struct {
	Etiqueta  string
	Severidad string
}

// ClassifyStock clasifica el stock de un producto. El orden de evaluación es
// contractual: agotado gana sobre poco stock, y poco stock gana sobre sobre
// stock. Ambos umbrales son inclusivos (stock == min → poco; stock == max →
// sobre). Nunca falla: siempre devuelve una etiqueta.
func ClassifyStock(stock int, minStock, maxStock *int) StockStatus {
	min := StockMinimoPorDefecto
	if minStock != nil {
		min = *minStock
	}
	switch {
	case stock == 0:
		return StockStatus{Etiqueta: EstadoSinStock, Severidad: SeveridadDestructive}
	case stock <= min:
		return StockStatus{Etiqueta: EstadoPocoStock, Severidad: SeveridadWarning}
	case maxStock != nil && stock >= *maxStock:
		return StockStatus{Etiqueta: EstadoSobreStock, Severidad: SeveridadSecondary}
	default:
		return StockStatus{Etiqueta: EstadoEnStock, Severidad: SeveridadSuccess}
	}
}
