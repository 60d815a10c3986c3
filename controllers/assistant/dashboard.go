package assistantController

import (
	"skilltree/database"
	"skilltree/middleware"
	"skilltree/models"

	"github.com/gofiber/fiber/v2"
)

// Static learning paths shown on the dashboard until paths become
// first-class records.
var learningPaths = []fiber.Map{
	{
		"id":               "cse-cyber",
		"title":            "Cyber Security Specialist",
		"progress":         35,
		"totalCourses":     5,
		"completedCourses": 1,
		"currentCourse":    "Network Defense Essentials",
	},
	{
		"id":               "cse-ai",
		"title":            "AI & Machine Learning Engineer",
		"progress":         10,
		"totalCourses":     6,
		"completedCourses": 0,
		"currentCourse":    "Neural Networks 101",
	},
}

var guestLearningPaths = []fiber.Map{
	{
		"id":               "cse-cyber",
		"title":            "Cyber Security Specialist",
		"progress":         0,
		"totalCourses":     5,
		"completedCourses": 0,
		"currentCourse":    "Start your journey",
	},
	{
		"id":               "cse-ai",
		"title":            "AI & Machine Learning Engineer",
		"progress":         0,
		"totalCourses":     6,
		"completedCourses": 0,
		"currentCourse":    "Start your journey",
	},
}

// GetDashboard aggregates the user header, course cards and learning
// paths. Falls back to a guest payload when the demo user is missing.
func GetDashboard(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"user": fiber.Map{
				"name":   "Guest",
				"level":  0,
				"xp":     0,
				"streak": 0,
				"badges": []string{},
			},
			"courses":       []fiber.Map{},
			"learningPaths": guestLearningPaths,
		})
	}

	var courses []models.Course
	if err := database.Database.Db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	coursesData := make([]fiber.Map, len(courses))
	for i, course := range courses {
		coursesData[i] = fiber.Map{
			"id":               course.ID,
			"title":            course.Title,
			"category":         course.Category,
			"progress":         0,
			"totalModules":     10,
			"completedModules": 0,
			"image":            course.ImageURL,
		}
	}

	// Badge names from the actual awards
	var awards []models.UserBadge
	database.Database.Db.Where("user_id = ?", user.ID).Preload("Badge").Find(&awards)
	badgeNames := make([]string, len(awards))
	for i, award := range awards {
		badgeNames[i] = award.Badge.Name
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"user": fiber.Map{
			"name":   user.Username,
			"role":   user.Role,
			"level":  user.Level,
			"xp":     user.XP,
			"streak": user.StreakDays,
			"badges": badgeNames,
		},
		"courses":       coursesData,
		"learningPaths": learningPaths,
	})
}
