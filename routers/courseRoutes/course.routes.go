package courseRoutes

import (
	controllers "skilltree/controllers/course"
	"skilltree/middleware"
	validators "skilltree/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the content catalog and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Catalog
	courseGroup.Get("/", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Post("/", validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/meta/branches", controllers.GetBranches)
	courseGroup.Get("/lessons/:id", validators.LessonID(), controllers.GetLesson)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.CurrentUser, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Get("/:id/status", middleware.CurrentUser, validators.CourseID(), controllers.GetEnrollmentStatus)

	// Certificates
	courseGroup.Post("/:id/certificate", middleware.CurrentUser, validators.CourseID(), controllers.IssueCertificate)
}
