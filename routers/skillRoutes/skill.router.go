package skillRoutes

import (
	skillController "skilltree/controllers/skillControllers"
	"skilltree/middleware"
	skillValidator "skilltree/validators/skill"

	"github.com/gofiber/fiber/v2"
)

func SetupSkillRoutes(app *fiber.App) {
	skillGroup := app.Group("/api/skills")

	skillGroup.Get("/", skillController.GetAllSkills)
	skillGroup.Post("/", skillValidator.CreateSkill(), skillController.CreateSkill)

	skillGroup.Get("/me", middleware.CurrentUser, skillController.GetMySkills)
	skillGroup.Post("/me", middleware.CurrentUser, skillValidator.UpsertUserSkill(), skillController.UpsertMySkill)
}
