package controllers

import (
	"certmaster/document"
	"certmaster/middleware"
	validators "certmaster/validators/document"

	"github.com/gofiber/fiber/v2"
)

// AddInstructor appends one instructor. The first instructor in insertion
// order is the one rendered in the signature block.
func AddInstructor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstructor").(*validators.InstructorRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	doc := Session.Dispatch(document.AddInstructor{
		Name:         reqData.Name,
		Competencies: reqData.Competencies,
	})
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Instrutor adicionado com sucesso!", doc.Instructors)
}

// RemoveInstructor deletes one instructor by id.
func RemoveInstructor(c *fiber.Ctx) error {
	id := c.Params("id")

	found := false
	for _, inst := range Session.Document().Instructors {
		if inst.ID == id {
			found = true
			break
		}
	}
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instrutor não encontrado!", nil)
	}

	doc := Session.Dispatch(document.RemoveInstructor{ID: id})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instrutor removido com sucesso!", doc.Instructors)
}
