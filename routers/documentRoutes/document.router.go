package documentRoutes

import (
	controllers "certmaster/controllers/document"
	"certmaster/middleware"
	validators "certmaster/validators/document"

	"github.com/gofiber/fiber/v2"
)

// SetupDocumentRoutes sets up the editing session and export routes
func SetupDocumentRoutes(app *fiber.App) {
	docGroup := app.Group("/document", middleware.TenantMiddleware)

	docGroup.Get("/", controllers.GetDocument)
	docGroup.Put("/field", validators.SetTextField(), controllers.SetTextField)
	docGroup.Put("/layout", validators.SetLayoutParam(), controllers.SetLayoutParam)
	docGroup.Put("/align", validators.SetTextAlign(), controllers.SetTextAlign)
	docGroup.Put("/toggles", validators.SetToggles(), controllers.SetToggles)
	docGroup.Post("/bold-variables/toggle", validators.ToggleBoldVariable(), controllers.ToggleBoldVariable)
	docGroup.Get("/preview", controllers.GetPreview)

	docGroup.Post("/images/:slot", controllers.UploadImage)
	docGroup.Delete("/images/:slot", controllers.RemoveImage)

	studentGroup := app.Group("/students", middleware.TenantMiddleware)
	studentGroup.Post("/", validators.AddStudent(), controllers.AddStudent)
	studentGroup.Post("/bulk", validators.BulkImportStudents(), controllers.BulkImportStudents)
	studentGroup.Patch("/:id/display-name", validators.SetDisplayName(), controllers.UpdateStudentDisplayName)
	studentGroup.Delete("/:id", controllers.RemoveStudent)

	instructorGroup := app.Group("/instructors", middleware.TenantMiddleware)
	instructorGroup.Post("/", validators.AddInstructor(), controllers.AddInstructor)
	instructorGroup.Delete("/:id", controllers.RemoveInstructor)

	curriculumGroup := app.Group("/curriculum", middleware.TenantMiddleware)
	curriculumGroup.Post("/", validators.AddCurriculumItem(), controllers.AddCurriculumItem)
	curriculumGroup.Put("/total-hours", validators.SetTotalHours(), controllers.SetTotalHours)
	curriculumGroup.Put("/:id", validators.UpdateCurriculumItem(), controllers.UpdateCurriculumItem)
	curriculumGroup.Delete("/:id", controllers.RemoveCurriculumItem)

	exportGroup := app.Group("/export", middleware.TenantMiddleware)
	exportGroup.Get("/status", controllers.GetExportStatus)
	exportGroup.Post("/", controllers.ExportPDF)
}
