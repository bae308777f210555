package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tupyme/inventario-api/internal/application/inventory"
)

// CatalogHandler expone los catálogos fijos de categorías y formatos.
type CatalogHandler struct{}

// NewCatalogHandler construye el handler.
func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// Categories godoc
// @Summary      Categorías de producto disponibles
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(inventory.Categorias())
}

// Formats godoc
// @Summary      Formatos de presentación disponibles
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/formats [get]
func (h *CatalogHandler) Formats(c *fiber.Ctx) error {
	return c.JSON(inventory.Formatos())
}
