package assistantRoutes

import (
	assistantController "skilltree/controllers/assistant"
	"skilltree/middleware"
	chatValidator "skilltree/validators/chat"

	"github.com/gofiber/fiber/v2"
)

func SetupAssistantRoutes(app *fiber.App) {
	app.Get("/api/dashboard", middleware.CurrentUser, assistantController.GetDashboard)
	app.Post("/api/chat", chatValidator.ChatMessage(), assistantController.Chat)
}
