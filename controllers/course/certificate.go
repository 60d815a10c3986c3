package controllers

import (
	"fmt"

	"skilltree/database"
	"skilltree/middleware"
	"skilltree/models"
	"skilltree/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IssueCertificate issues a certificate once every lesson of the
// course has a completed progress row for the user.
func IssueCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Must be enrolled
	var enrollment models.UserCourse
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	// Already issued?
	var existing models.Certificate
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued!", existing)
	}

	// Count lessons in the course vs completed progress rows
	var totalLessons int64
	database.Database.Db.Model(&models.Lesson{}).
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("modules.course_id = ?", courseID).
		Count(&totalLessons)

	var completed int64
	database.Database.Db.Model(&models.UserProgress{}).
		Joins("JOIN lessons ON lessons.id = user_progresses.lesson_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("user_progresses.user_id = ? AND user_progresses.completed = ? AND modules.course_id = ?", userID, true, courseID).
		Count(&completed)

	if totalLessons == 0 || completed < totalLessons {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", fiber.Map{
			"completed_lessons": completed,
			"total_lessons":     totalLessons,
		})
	}

	serial := uuid.NewString()
	cert := models.Certificate{
		UserID:         userID,
		CourseID:       uint(courseID),
		Serial:         serial,
		CertificateURL: fmt.Sprintf("/certificates/%s.pdf", serial),
	}

	if err := database.Database.Db.Create(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err == nil && user.Email != "" {
		utils.SendCertificateEmail(user.Email, user.Username, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", cert)
}

// GetUserCertificates lists the acting user's certificates with the
// course title attached.
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type CertificateWithCourse struct {
		models.Certificate
		CourseTitle string `json:"course_title"`
	}

	var certificates []models.Certificate
	if err := database.Database.Db.Where("user_id = ?", userID).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course models.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseTitle: course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
	})
}
