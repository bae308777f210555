package http

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tupyme/inventario-api/internal/application/dto"
	appinventory "github.com/tupyme/inventario-api/internal/application/inventory"
	"github.com/tupyme/inventario-api/internal/domain"
	core "github.com/tupyme/inventario-api/internal/domain/inventory"
	"github.com/tupyme/inventario-api/internal/infrastructure/tabular"
)

const maxImportSize = 10 << 20 // 10 MB por archivo importado

// TransferHandler maneja importación, exportación y plantillas del catálogo.
type TransferHandler struct {
	importUC *appinventory.ImportUseCase
	exportUC *appinventory.ExportUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(importUC *appinventory.ImportUseCase, exportUC *appinventory.ExportUseCase) *TransferHandler {
	return &TransferHandler{importUC: importUC, exportUC: exportUC}
}

// Import godoc
// @Summary      Importar catálogo desde CSV o XLSX
// @Tags         transfer
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "Archivo .csv o .xlsx"
// @Param        mode  query     string  false  "add (default) | replace"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}

	mode := core.ImportModeAdd
	switch strings.ToLower(c.Query("mode", "add")) {
	case "add":
	case "replace":
		mode = core.ImportModeReplace
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mode debe ser add o replace"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo requerido en el campo file"})
	}
	if fileHeader.Size > maxImportSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera los 10 MB"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	var filas []core.RowMap
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		filas, err = tabular.ParseCSV(data)
	case ".xlsx":
		filas, err = tabular.ParseXLSX(data)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "solo se aceptan archivos .csv o .xlsx"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PARSE_ERROR", Message: err.Error()})
	}

	out, err := h.importUC.Import(c.Context(), organizationID, filas, mode)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar catálogo a CSV
// @Tags         transfer
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/products/export [get]
func (h *TransferHandler) Export(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	data, nombre, err := h.exportUC.ExportCSV(organizationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(data)
}

// Template godoc
// @Summary      Plantilla de importación
// @Tags         transfer
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        formato  query  string  false  "csv (default) | xlsx"
// @Success      200     {file}  file
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/products/template [get]
func (h *TransferHandler) Template(c *fiber.Ctx) error {
	switch strings.ToLower(c.Query("formato", "csv")) {
	case "csv":
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="plantilla_inventario.csv"`)
		return c.Send(tabular.TemplateCSV())
	case "xlsx":
		data, err := tabular.TemplateXLSX()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="plantilla_inventario.xlsx"`)
		return c.Send(data)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato debe ser csv o xlsx"})
	}
}
