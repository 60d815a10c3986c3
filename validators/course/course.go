package courseValidator

import (
	"strings"

	"skilltree/middleware"

	"github.com/gofiber/fiber/v2"
)

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Skip     *int `query:"skip"`
			Limit    *int `query:"limit"`
			BranchID *int `query:"branch_id"`
			Year     *int `query:"year"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Skip != nil && *reqData.Skip < 0 {
			errors["skip"] = "Skip must not be negative!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if reqData.BranchID != nil && *reqData.BranchID < 1 {
			errors["branch_id"] = "Invalid branch ID!"
		}
		if reqData.Year != nil && (*reqData.Year < 1 || *reqData.Year > 4) {
			errors["year"] = "Year must be between 1 and 4!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Description string  `json:"description"`
			Category    string  `json:"category"`
			ImageURL    string  `json:"image_url"`
			Difficulty  string  `json:"difficulty"`
			Duration    string  `json:"duration"`
			Rating      float64 `json:"rating"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		if reqData.Rating < 0 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 0 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter.
func CourseID() fiber.Handler {
	return idParam("id", "courseID", "Course")
}

// LessonID validates the :id route parameter on lesson routes.
func LessonID() fiber.Handler {
	return idParam("id", "lessonID", "Lesson")
}

func idParam(param, local, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt(param)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+" ID!", nil)
		}
		c.Locals(local, id)
		return c.Next()
	}
}
