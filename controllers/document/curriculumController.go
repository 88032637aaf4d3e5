package controllers

import (
	"certmaster/document"
	"certmaster/middleware"
	validators "certmaster/validators/document"

	"github.com/gofiber/fiber/v2"
)

// AddCurriculumItem appends a row to the course grid and recomputes the
// stored total-hours aggregate.
func AddCurriculumItem(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCurriculumItem").(*validators.CurriculumItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	doc := Session.Dispatch(document.AddCurriculumItem{
		Subject: reqData.Subject,
		Hours:   reqData.Hours,
	})
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Aula adicionada com sucesso!", fiber.Map{
		"curriculum": doc.Curriculum,
		"totalHours": doc.TotalHours,
	})
}

// UpdateCurriculumItem edits a row; the aggregate is recomputed, discarding
// any manual override.
func UpdateCurriculumItem(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCurriculumUpdate").(*validators.CurriculumUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id := c.Params("id")
	if !curriculumItemExists(id) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Aula não encontrada!", nil)
	}

	doc := Session.Dispatch(document.UpdateCurriculumItem{
		ID:      id,
		Subject: reqData.Subject,
		Hours:   reqData.Hours,
	})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Aula atualizada com sucesso!", fiber.Map{
		"curriculum": doc.Curriculum,
		"totalHours": doc.TotalHours,
	})
}

// RemoveCurriculumItem deletes a row and recomputes the aggregate.
func RemoveCurriculumItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if !curriculumItemExists(id) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Aula não encontrada!", nil)
	}

	doc := Session.Dispatch(document.RemoveCurriculumItem{ID: id})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Aula removida com sucesso!", fiber.Map{
		"curriculum": doc.Curriculum,
		"totalHours": doc.TotalHours,
	})
}

// SetTotalHours applies the manual aggregate override, kept verbatim until
// the next curriculum mutation.
func SetTotalHours(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTotalHours").(*validators.TotalHoursRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	doc := Session.Dispatch(document.SetTotalHours{Value: reqData.Value})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Carga horária atualizada!", fiber.Map{
		"totalHours": doc.TotalHours,
	})
}

func curriculumItemExists(id string) bool {
	for _, item := range Session.Document().Curriculum {
		if item.ID == id {
			return true
		}
	}
	return false
}
