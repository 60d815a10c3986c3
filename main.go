package main

import (
	"log"

	"skilltree/config"
	"skilltree/database"
	assistantRoutes "skilltree/routers/assistantRoutes"
	authRoutes "skilltree/routers/authRoutes"
	courseRoutes "skilltree/routers/courseRoutes"
	resumeRoutes "skilltree/routers/resumeRoutes"
	skillRoutes "skilltree/routers/skillRoutes"
	userRoutes "skilltree/routers/userRoutes"
	"skilltree/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173, http://127.0.0.1:5173",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	skillRoutes.SetupSkillRoutes(app)
	assistantRoutes.SetupAssistantRoutes(app)
	resumeRoutes.SetupResumeRoutes(app)

	utils.StartStreakScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
