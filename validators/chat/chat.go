package chatValidator

import (
	"strings"

	"skilltree/middleware"

	"github.com/gofiber/fiber/v2"
)

func ChatMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Message) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"message": "Message is required!",
			})
		}

		c.Locals("validatedChat", reqData)
		return c.Next()
	}
}
