package controllers

import (
	"skilltree/database"
	"skilltree/middleware"
	"skilltree/models"
	"skilltree/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse creates the enrollment row for the acting user.
// Enrolling twice is a no-op that reports "Already enrolled".
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists
	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check if user is already enrolled
	var existing models.UserCourse
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled", existing)
	}

	enrollment := models.UserCourse{
		UserID:   userID,
		CourseID: uint(courseID),
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	// Notify the user, best effort
	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err == nil && user.Email != "" {
		utils.SendEnrollmentEmail(user.Email, user.Username, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully", enrollment)
}

// GetEnrollmentStatus reports whether the acting user is enrolled.
func GetEnrollmentStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment models.UserCourse
	enrolled := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched successfully!", fiber.Map{
		"enrolled": enrolled,
	})
}
