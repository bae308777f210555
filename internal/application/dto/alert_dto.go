package dto

// AlertResponse una alerta derivada del estado actual del inventario.
// Las alertas no se persisten: se recalculan en cada consulta.
type AlertResponse struct {
	ProductoID       int64  `json:"producto_id"`
	ProductoNombre   string `json:"producto_nombre"`
	ProductoSKU      string `json:"producto_sku"`
	Tipo             string `json:"tipo"`      // sin_stock, poco_stock, sobre_stock, vencimiento
	Prioridad        string `json:"prioridad"` // alta, media, baja
	Mensaje          string `json:"mensaje"`
	StockActual      int    `json:"stock_actual"`
	StockMinimo      int    `json:"stock_minimo"`
	FechaVencimiento string `json:"fecha_vencimiento,omitempty"`
	DiasRestantes    *int   `json:"dias_restantes,omitempty"`
}

// AlertStatsDTO conteos de alertas por tipo y por prioridad.
type AlertStatsDTO struct {
	SinStock    int `json:"sin_stock"`
	PocoStock   int `json:"poco_stock"`
	SobreStock  int `json:"sobre_stock"`
	Vencimiento int `json:"vencimiento"`
	Alta        int `json:"alta"`
	Media       int `json:"media"`
	Baja        int `json:"baja"`
}

// AlertListResponse alertas ordenadas por prioridad (alta, media, baja).
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Total int             `json:"total"`
	Stats AlertStatsDTO   `json:"stats"`
}
