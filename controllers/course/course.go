package controllers

import (
	"skilltree/database"
	"skilltree/middleware"
	"skilltree/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses lists courses, optionally filtered by academic branch
// and year through the linked subject. Legacy courses without a
// subject only show up in the unfiltered listing.
func GetAllCourses(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedCourseList").(*struct {
		Skip     *int `query:"skip"`
		Limit    *int `query:"limit"`
		BranchID *int `query:"branch_id"`
		Year     *int `query:"year"`
	})

	skip := 0
	limit := 100
	if reqData != nil && reqData.Skip != nil {
		skip = *reqData.Skip
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}

	db := database.Database.Db.Model(&models.Course{})

	if reqData != nil && (reqData.BranchID != nil || reqData.Year != nil) {
		db = db.Joins("JOIN subjects ON subjects.id = courses.subject_id")
		if reqData.BranchID != nil {
			db = db.Where("subjects.branch_id = ?", *reqData.BranchID)
		}
		if reqData.Year != nil {
			db = db.Where("subjects.year = ?", *reqData.Year)
		}
	}

	var courses []models.Course
	if err := db.Offset(skip).Limit(limit).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		ImageURL    string  `json:"image_url"`
		Difficulty  string  `json:"difficulty"`
		Duration    string  `json:"duration"`
		Rating      float64 `json:"rating"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		ImageURL:    reqData.ImageURL,
		Difficulty:  "Beginner",
		Duration:    "8 weeks",
		Rating:      4.5,
	}
	if reqData.Difficulty != "" {
		course.Difficulty = reqData.Difficulty
	}
	if reqData.Duration != "" {
		course.Duration = reqData.Duration
	}
	if reqData.Rating > 0 {
		course.Rating = reqData.Rating
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetCourseDetails returns one course with its modules and lessons.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("modules.order_index asc") }).
		Preload("Modules.Lessons").
		Where("id = ?", courseID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", course)
}

func GetLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	var lesson models.Lesson
	if err := database.Database.Db.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

func GetBranches(c *fiber.Ctx) error {
	var branches []models.Branch
	if err := database.Database.Db.Find(&branches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch branches!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Branches fetched successfully!", fiber.Map{
		"branches": branches,
	})
}
