package main

import (
	"fmt"
	"log"

	"skilltree/config"
	"skilltree/database"
	"skilltree/models"
)

// Seeds the academic hierarchy (branches, subjects) and links legacy
// courses to their subjects. Idempotent via natural-key lookups.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db
	log.Println("Seeding branches and subjects...")

	branches := []models.Branch{
		{Name: "Computer Science & Engineering", Code: "CSE", ImageURL: "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?auto=format&fit=crop&q=80&w=1000"},
		{Name: "Electronics & Communication", Code: "ECE", ImageURL: "https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?auto=format&fit=crop&q=80&w=1000"},
		{Name: "Mechanical Engineering", Code: "ME", ImageURL: "https://images.unsplash.com/photo-1537462715879-360eeb61a0ad?auto=format&fit=crop&q=80&w=1000"},
		{Name: "Civil Engineering", Code: "CE", ImageURL: "https://images.unsplash.com/photo-1581094794329-c8112a89af12?auto=format&fit=crop&q=80&w=1000"},
	}

	for _, branch := range branches {
		if err := db.Where("code = ?", branch.Code).First(&models.Branch{}).Error; err == nil {
			continue
		}
		if err := db.Create(&branch).Error; err != nil {
			log.Fatalf("Failed to create branch %q: %v", branch.Code, err)
		}
		log.Printf("Created branch: %s", branch.Name)
	}

	var cse models.Branch
	if err := db.Where("code = ?", "CSE").First(&cse).Error; err != nil {
		log.Fatalf("CSE branch missing after seed: %v", err)
	}

	subjects := []struct {
		Title    string
		Code     string
		Year     int
		Semester int
		// legacy course to link, if one exists
		CourseTitle string
	}{
		{"Introduction to Programming", "CS101", 1, 1, "Python Mastery"},
		{"Data Structures", "CS201", 2, 3, "Data Structures & Algorithms"},
		{"Web Development", "CS202", 2, 4, "Full Stack Web Development"},
		{"Artificial Intelligence", "CS301", 3, 5, ""},
		{"Computer Networks", "CS302", 3, 6, ""},
	}

	for _, s := range subjects {
		if err := db.Where("code = ?", s.Code).First(&models.Subject{}).Error; err == nil {
			continue
		}

		subject := models.Subject{
			Title:       s.Title,
			Code:        s.Code,
			BranchID:    cse.ID,
			Year:        s.Year,
			Semester:    s.Semester,
			Description: fmt.Sprintf("Core %s course.", s.Title),
		}
		if err := db.Create(&subject).Error; err != nil {
			log.Fatalf("Failed to create subject %q: %v", s.Code, err)
		}
		log.Printf("Created subject: %s", subject.Title)

		if s.CourseTitle == "" {
			continue
		}
		var course models.Course
		if err := db.Where("title = ?", s.CourseTitle).First(&course).Error; err == nil {
			course.SubjectID = &subject.ID
			if err := db.Save(&course).Error; err != nil {
				log.Printf("Failed to link course to %s: %v", subject.Title, err)
				continue
			}
			log.Printf("Linked course to %s", subject.Title)
		}
	}

	labCourses := []models.Course{
		{
			Title:       "Quantum Chemistry 101",
			Description: "Explore molecular structures in VR.",
			Category:    "Science",
			ImageURL:    "https://images.unsplash.com/photo-1532094349884-543bc11b234d?auto=format&fit=crop&q=80&w=1000",
		},
		{
			Title:       "Applied Physics: Gravity",
			Description: "Classical mechanics simulation sandbox.",
			Category:    "Science",
			ImageURL:    "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?auto=format&fit=crop&q=80&w=1000",
		},
		{
			Title:       "Digital Logic Design",
			Description: "Build complex circuits with logic gates.",
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1555664424-778a69633595?auto=format&fit=crop&q=80&w=1000",
		},
	}

	for _, course := range labCourses {
		if err := db.Where("title = ?", course.Title).First(&models.Course{}).Error; err == nil {
			continue
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create lab course %q: %v", course.Title, err)
		}
		log.Printf("Created lab course: %s", course.Title)
	}

	log.Println("Seeding complete.")
}
