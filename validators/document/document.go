package documentValidator

import (
	"strings"

	"certmaster/document"
	"certmaster/middleware"
	"certmaster/models"
	"certmaster/template"
	"certmaster/validators/taxid"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Request payloads. Declared here so the validators and the controllers that
// read them from Locals share one definition.

type AddStudentRequest struct {
	Name string `json:"name" validate:"required"`
	CPF  string `json:"cpf" validate:"required"`
}

type BulkImportRequest struct {
	Lines string `json:"lines"`
}

type DisplayNameRequest struct {
	Value string `json:"value"`
}

type InstructorRequest struct {
	Name         string `json:"name" validate:"required"`
	Competencies string `json:"competencies"`
}

type CurriculumItemRequest struct {
	Subject string `json:"subject" validate:"required"`
	Hours   int    `json:"hours" validate:"gte=0"`
}

type CurriculumUpdateRequest struct {
	Subject *string `json:"subject"`
	Hours   *int    `json:"hours"`
}

type TotalHoursRequest struct {
	Value string `json:"value"`
}

type TextFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type LayoutParamRequest struct {
	Param string `json:"param" validate:"required"`
	Value int    `json:"value"`
}

type AlignRequest struct {
	Align string `json:"align" validate:"required"`
}

type TogglesRequest struct {
	ShowHoursColumn     *bool `json:"showHoursColumn"`
	ShowTechResponsible *bool `json:"showTechResponsible"`
}

type BoldToggleRequest struct {
	Token string `json:"token" validate:"required"`
}

// AddStudent validates the add-student payload. The CPF must pass the
// check-digit validation before the student enters the collection.
func AddStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddStudentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Name":
					errors["name"] = "Por favor, preencha o nome do aluno"
				case "CPF":
					errors["cpf"] = "Por favor, preencha o CPF do aluno"
				}
			}
		}

		if _, ok := errors["cpf"]; !ok && !taxid.IsValidCPF(reqData.CPF) {
			errors["cpf"] = "CPF inválido! Formato aceito: 000.000.000-00 ou 00000000000"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}

// BulkImportStudents validates the bulk-import payload.
func BulkImportStudents() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BulkImportRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Lines) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"lines": "Informe pelo menos uma linha com nome e CPF",
			})
		}

		c.Locals("validatedBulk", reqData)
		return c.Next()
	}
}

// SetDisplayName validates the decorative-name payload. An empty value is
// allowed and falls back to the plain name at render time.
func SetDisplayName() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DisplayNameRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedDisplayName", reqData)
		return c.Next()
	}
}

// AddInstructor validates the add-instructor payload.
func AddInstructor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(InstructorRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"name": "Por favor, preencha o nome do instrutor",
			})
		}

		c.Locals("validatedInstructor", reqData)
		return c.Next()
	}
}

// AddCurriculumItem validates a new curriculum row.
func AddCurriculumItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CurriculumItemRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Subject":
					errors["subject"] = "Informe o assunto da aula"
				case "Hours":
					errors["hours"] = "Carga horária não pode ser negativa"
				}
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCurriculumItem", reqData)
		return c.Next()
	}
}

// UpdateCurriculumItem validates a partial curriculum update.
func UpdateCurriculumItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CurriculumUpdateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Subject == nil && reqData.Hours == nil {
			errors["body"] = "Informe ao menos um campo para atualizar"
		}
		if reqData.Hours != nil && *reqData.Hours < 0 {
			errors["hours"] = "Carga horária não pode ser negativa"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCurriculumUpdate", reqData)
		return c.Next()
	}
}

// SetTotalHours accepts any value verbatim; the manual override is preserved
// as typed until the next curriculum mutation recomputes it.
func SetTotalHours() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TotalHoursRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedTotalHours", reqData)
		return c.Next()
	}
}

// SetTextField validates a free-text field update against the closed field
// enum. Field values themselves are free-form; malformed identifiers never
// block entry of other fields.
func SetTextField() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TextFieldRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !document.TextField(reqData.Field).Valid() {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"field": "Campo desconhecido: " + reqData.Field,
			})
		}

		c.Locals("validatedTextField", reqData)
		return c.Next()
	}
}

// SetLayoutParam validates a slider update against the closed param enum.
func SetLayoutParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LayoutParamRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !document.LayoutParam(reqData.Param).Valid() {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"param": "Parâmetro de layout desconhecido: " + reqData.Param,
			})
		}

		c.Locals("validatedLayoutParam", reqData)
		return c.Next()
	}
}

// SetTextAlign validates the alignment payload: exactly one of the four
// accepted values.
func SetTextAlign() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AlignRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !models.TextAlign(reqData.Align).Valid() {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"align": "Alinhamento deve ser left, center, right ou justify",
			})
		}

		c.Locals("validatedAlign", reqData)
		return c.Next()
	}
}

// SetToggles validates the presentation toggles payload; at least one toggle
// must be present.
func SetToggles() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TogglesRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ShowHoursColumn == nil && reqData.ShowTechResponsible == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"body": "Informe ao menos um toggle",
			})
		}

		c.Locals("validatedToggles", reqData)
		return c.Next()
	}
}

// ToggleBoldVariable validates that the token is one of the recognized
// template variables before flipping its emphasis.
func ToggleBoldVariable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BoldToggleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		known := false
		for _, t := range template.Tokens {
			if strings.EqualFold(t, reqData.Token) {
				known = true
				break
			}
		}
		if !known {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"token": "Variável desconhecida: " + reqData.Token,
			})
		}

		c.Locals("validatedBoldToggle", reqData)
		return c.Next()
	}
}
