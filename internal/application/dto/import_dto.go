package dto

// ImportResultResponse resultado de una importación masiva: cuántas filas
// entraron y el detalle legible de cada fila rechazada.
type ImportResultResponse struct {
	Importados int      `json:"importados"`
	Omitidos   int      `json:"omitidos"`
	Errores    []string `json:"errores"`
}
