package controllers

import (
	"certmaster/document"
	"certmaster/middleware"
	validators "certmaster/validators/document"

	"github.com/gofiber/fiber/v2"
)

// AddStudent appends one student to the collection.
func AddStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudent").(*validators.AddStudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	doc := Session.Dispatch(document.AddStudent{Name: reqData.Name, CPF: reqData.CPF})
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Aluno adicionado com sucesso!", doc.Students)
}

// BulkImportStudents adds one student per pasted line.
func BulkImportStudents(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBulk").(*validators.BulkImportRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	before := len(Session.Document().Students)
	doc := Session.Dispatch(document.ImportStudents{Lines: reqData.Lines})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Alunos importados com sucesso!", fiber.Map{
		"imported": len(doc.Students) - before,
		"students": doc.Students,
	})
}

// UpdateStudentDisplayName edits the decorative name of one student.
func UpdateStudentDisplayName(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDisplayName").(*validators.DisplayNameRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id := c.Params("id")
	if !studentExists(id) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Aluno não encontrado!", nil)
	}

	doc := Session.Dispatch(document.SetStudentDisplayName{ID: id, Value: reqData.Value})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Nome de destaque atualizado!", doc.Students)
}

// RemoveStudent deletes one student by id.
func RemoveStudent(c *fiber.Ctx) error {
	id := c.Params("id")
	if !studentExists(id) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Aluno não encontrado!", nil)
	}

	doc := Session.Dispatch(document.RemoveStudent{ID: id})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Aluno removido com sucesso!", doc.Students)
}

func studentExists(id string) bool {
	for _, s := range Session.Document().Students {
		if s.ID == id {
			return true
		}
	}
	return false
}
