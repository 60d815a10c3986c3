package userValidator

import (
	"skilltree/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile parses the partial profile update. Nil fields mean
// "leave the stored value untouched".
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Bio         *string `json:"bio"`
			AvatarStyle *string `json:"avatar_style"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Bio != nil && len(*reqData.Bio) > 500 {
			errors["bio"] = "Bio must be at most 500 characters!"
		}
		if reqData.AvatarStyle != nil && *reqData.AvatarStyle == "" {
			errors["avatar_style"] = "Avatar style must not be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

// UpdateProgress parses the lesson progress upsert body. A nil score
// keeps whatever score is already stored.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LessonID  uint `json:"lesson_id"`
			Completed bool `json:"completed"`
			Score     *int `json:"score"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LessonID == 0 {
			errors["lesson_id"] = "Lesson ID is required!"
		}
		if reqData.Score != nil && (*reqData.Score < 0 || *reqData.Score > 100) {
			errors["score"] = "Score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// CourseIDParam validates :course_id on the progress routes.
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("course_id")
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}
