package controllers

import (
	"errors"

	"certmaster/export"
	"certmaster/middleware"

	"github.com/gofiber/fiber/v2"
)

// ExportPDF runs one export batch over the current document and streams the
// finished file. Preconditions are reported all at once; a pending batch
// suppresses a new trigger; any pipeline failure aborts with no partial file.
func ExportPDF(c *fiber.Ctx) error {
	doc := Session.Document()

	result, err := Exporter.Export(c.Context(), doc)
	if err != nil {
		var validation *export.ValidationError
		if errors.As(err, &validation) {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Campos obrigatórios faltando!", fiber.Map{
				"errors": validation.Fields,
			})
		}
		if errors.Is(err, export.ErrExportInProgress) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Já existe uma exportação em andamento!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Erro ao exportar o PDF. Tente novamente.", nil)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.PDF)
}

// GetExportStatus reports whether the document currently passes the export
// precondition gate, without rendering anything.
func GetExportStatus(c *fiber.Ctx) error {
	fields := export.ValidateDocument(Session.Document())
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Export status fetched successfully!", fiber.Map{
		"ready":  len(fields) == 0,
		"errors": fields,
	})
}
