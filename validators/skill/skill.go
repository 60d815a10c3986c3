package skillValidator

import (
	"strings"

	"skilltree/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateSkill() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSkill", reqData)
		return c.Next()
	}
}

func UpsertUserSkill() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SkillID     uint `json:"skill_id"`
			Proficiency int  `json:"proficiency"`
			Verified    bool `json:"verified"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SkillID == 0 {
			errors["skill_id"] = "Skill ID is required!"
		}
		if reqData.Proficiency < 0 || reqData.Proficiency > 100 {
			errors["proficiency"] = "Proficiency must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserSkill", reqData)
		return c.Next()
	}
}
