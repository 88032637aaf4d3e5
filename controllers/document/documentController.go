package controllers

import (
	"strconv"

	"certmaster/document"
	"certmaster/export"
	"certmaster/middleware"
	"certmaster/models"
	"certmaster/template"
	validators "certmaster/validators/document"

	"github.com/gofiber/fiber/v2"
)

// Session is the live editing session; Exporter runs PDF batches. Both are
// wired from main at startup.
var (
	Session  *document.Session
	Exporter *export.Exporter
)

// GetDocument returns the current aggregate.
func GetDocument(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document fetched successfully!", Session.Document())
}

// SetTextField updates one free-text field.
func SetTextField(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTextField").(*validators.TextFieldRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	doc := Session.Dispatch(document.SetText{
		Field: document.TextField(reqData.Field),
		Value: reqData.Value,
	})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Field updated successfully!", doc)
}

// SetLayoutParam updates one layout slider.
func SetLayoutParam(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLayoutParam").(*validators.LayoutParamRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	doc := Session.Dispatch(document.SetLayout{
		Param: document.LayoutParam(reqData.Param),
		Value: reqData.Value,
	})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Layout updated successfully!", doc)
}

// SetTextAlign switches the front-page body alignment.
func SetTextAlign(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAlign").(*validators.AlignRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	doc := Session.Dispatch(document.SetTextAlign{Align: models.TextAlign(reqData.Align)})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Alignment updated successfully!", doc)
}

// SetToggles flips the presentation toggles present in the payload.
func SetToggles(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedToggles").(*validators.TogglesRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	doc := Session.Document()
	if reqData.ShowHoursColumn != nil {
		doc = Session.Dispatch(document.SetShowHoursColumn{Show: *reqData.ShowHoursColumn})
	}
	if reqData.ShowTechResponsible != nil {
		doc = Session.Dispatch(document.SetShowTechResponsible{Show: *reqData.ShowTechResponsible})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Toggles updated successfully!", doc)
}

// ToggleBoldVariable flips one token's membership in the emphasis set.
func ToggleBoldVariable(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBoldToggle").(*validators.BoldToggleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	doc := Session.Dispatch(document.ToggleBoldVariable{Token: reqData.Token})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Emphasis updated successfully!", doc)
}

// GetPreview returns the substituted body text for the selected student, the
// same string the front-page preview renders.
func GetPreview(c *fiber.Ctx) error {
	doc := Session.Document()

	var student *models.Student
	if idxStr := c.Query("student"); idxStr != "" {
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 || idx >= len(doc.Students) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student index!", nil)
		}
		student = &doc.Students[idx]
	} else if len(doc.Students) > 0 {
		student = &doc.Students[0]
	}

	text := template.Replace(doc.BaseText, doc, student)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preview generated successfully!", fiber.Map{
		"text":  text,
		"plain": template.Plain(text),
	})
}
