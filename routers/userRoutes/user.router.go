package userRoutes

import (
	courseController "skilltree/controllers/course"
	userController "skilltree/controllers/userControllers"
	"skilltree/middleware"
	userValidator "skilltree/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users", middleware.CurrentUser)

	userGroup.Get("/me", userController.GetMyProfile)
	userGroup.Put("/me", userValidator.UpdateProfile(), userController.UpdateMyProfile)
	userGroup.Get("/me/courses", userController.GetMyCourses)
	userGroup.Get("/me/badges", userController.GetMyBadges)
	userGroup.Get("/me/certificates", courseController.GetUserCertificates)

	userGroup.Post("/progress", userValidator.UpdateProgress(), userController.UpdateProgress)
	userGroup.Get("/progress/:course_id", userValidator.CourseIDParam(), userController.GetCourseProgress)
}
