package resumeRoutes

import (
	resumeController "skilltree/controllers/resume"

	"github.com/gofiber/fiber/v2"
)

func SetupResumeRoutes(app *fiber.App) {
	resumeGroup := app.Group("/api/resume")

	resumeGroup.Post("/analyze", resumeController.AnalyzeResume)
}
