package main

import (
	"log"

	"skilltree/config"
	"skilltree/database"
	"skilltree/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds course modules and lessons. Idempotent: every insert is
// guarded by a lookup on the natural key.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db
	log.Println("Seeding LMS content...")

	pyCourse := getOrCreateCourse(db, models.Course{
		Title:       "Python Mastery",
		Description: "Complete Python Guide",
		Category:    "Programming",
		ImageURL:    "https://images.unsplash.com/photo-1526379095098-d400fd0bf935?auto=format&fit=crop&q=80&w=1000",
	})

	var modIntro models.Module
	if err := db.Where("title = ? AND course_id = ?", "Introduction to Python", pyCourse.ID).First(&modIntro).Error; err != nil {
		modIntro = models.Module{Title: "Introduction to Python", OrderIndex: 1, CourseID: pyCourse.ID}
		if err := db.Create(&modIntro).Error; err != nil {
			log.Fatalf("Failed to create module: %v", err)
		}

		quiz := datatypes.JSON([]byte(`{"questions": [{"q": "What is the output of print(2+2)?", "options": ["3", "4", "22", "Error"], "a": 1}, {"q": "Which keyword is used for functions?", "options": ["func", "def", "function", "lambda"], "a": 1}]}`))

		lessons := []models.Lesson{
			{Title: "Setting Up Environment", ContentType: models.LessonVideo, DurationMinutes: 15, ContentURL: "https://www.youtube.com/embed/Y8Tko2YC5hA", ModuleID: modIntro.ID},
			{Title: "Hello World & Variables", ContentType: models.LessonText, DurationMinutes: 10, ContentURL: "Welcome to Python! In this lesson...", ModuleID: modIntro.ID},
			{Title: "Python Basics Quiz", ContentType: models.LessonQuiz, DurationMinutes: 5, Payload: quiz, ModuleID: modIntro.ID},
		}
		if err := db.Create(&lessons).Error; err != nil {
			log.Fatalf("Failed to create lessons: %v", err)
		}
		log.Println("Added Intro lessons")
	}

	var modDSA models.Module
	if err := db.Where("title = ? AND course_id = ?", "Data Structures", pyCourse.ID).First(&modDSA).Error; err != nil {
		modDSA = models.Module{Title: "Data Structures", OrderIndex: 2, CourseID: pyCourse.ID}
		if err := db.Create(&modDSA).Error; err != nil {
			log.Fatalf("Failed to create module: %v", err)
		}

		lessons := []models.Lesson{
			{Title: "Lists and Tuples", ContentType: models.LessonVideo, DurationMinutes: 20, ContentURL: "https://www.youtube.com/embed/ohCDWZgNIU0", ModuleID: modDSA.ID},
			{Title: "Sorting Algorithm Lab", ContentType: models.LessonSimulation, DurationMinutes: 30, ContentURL: "/lab/sorting", ModuleID: modDSA.ID},
		}
		if err := db.Create(&lessons).Error; err != nil {
			log.Fatalf("Failed to create lessons: %v", err)
		}
		log.Println("Added DSA lessons")
	}

	var webCourse models.Course
	if err := db.Where("title = ?", "Full Stack Web Development").First(&webCourse).Error; err == nil {
		var modWeb models.Module
		if err := db.Where("title = ? AND course_id = ?", "HTML & CSS Basics", webCourse.ID).First(&modWeb).Error; err != nil {
			modWeb = models.Module{Title: "HTML & CSS Basics", OrderIndex: 1, CourseID: webCourse.ID}
			if err := db.Create(&modWeb).Error; err != nil {
				log.Fatalf("Failed to create module: %v", err)
			}

			lesson := models.Lesson{Title: "Web Dev Lab", ContentType: models.LessonSimulation, DurationMinutes: 45, ContentURL: "/lab/web-dev", ModuleID: modWeb.ID}
			if err := db.Create(&lesson).Error; err != nil {
				log.Fatalf("Failed to create lesson: %v", err)
			}
			log.Println("Added Web Dev Lab lesson")
		}
	}

	log.Println("Seeding complete!")
}

func getOrCreateCourse(db *gorm.DB, course models.Course) models.Course {
	var existing models.Course
	if err := db.Where("title = ?", course.Title).First(&existing).Error; err == nil {
		return existing
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatalf("Failed to create course %q: %v", course.Title, err)
	}
	log.Printf("Created course %q", course.Title)
	return course
}
