package main

import (
	"log"

	"skilltree/config"
	"skilltree/database"
	"skilltree/models"
)

// Seeds the skill catalog and the demo user's proficiencies.
// Idempotent: existing rows are left alone.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	skills := []models.Skill{
		{Name: "Python", Category: "Backend"},
		{Name: "Network Security", Category: "Cyber Security"},
		{Name: "React", Category: "Frontend"},
		{Name: "Algorithms", Category: "CSE"},
		{Name: "Digital Logic", Category: "CSE"},
	}

	log.Println("Seeding skills...")
	for _, skill := range skills {
		if err := db.Where("name = ?", skill.Name).First(&models.Skill{}).Error; err == nil {
			log.Printf("Skill %s already exists.", skill.Name)
			continue
		}
		if err := db.Create(&skill).Error; err != nil {
			log.Fatalf("Failed to create skill %q: %v", skill.Name, err)
		}
		log.Printf("Added skill: %s", skill.Name)
	}

	var user models.User
	if err := db.Where("username = ?", "student").First(&user).Error; err != nil {
		log.Println("Demo user not found, skipping user skills. Run scripts/initdb first.")
		return
	}

	assignments := []struct {
		Name        string
		Proficiency int
	}{
		{"Python", 80},
		{"React", 45},
		{"Network Security", 60},
	}

	log.Printf("Seeding skills for %s...", user.Username)
	for _, assign := range assignments {
		var skill models.Skill
		if err := db.Where("name = ?", assign.Name).First(&skill).Error; err != nil {
			continue
		}

		if err := db.Where("user_id = ? AND skill_id = ?", user.ID, skill.ID).First(&models.UserSkill{}).Error; err == nil {
			log.Printf("Already has %s", skill.Name)
			continue
		}

		userSkill := models.UserSkill{
			UserID:      user.ID,
			SkillID:     skill.ID,
			Proficiency: assign.Proficiency,
			Verified:    true,
		}
		if err := db.Create(&userSkill).Error; err != nil {
			log.Fatalf("Failed to assign skill %q: %v", skill.Name, err)
		}
		log.Printf("Assigned %s", skill.Name)
	}

	log.Println("User skills seeded.")
}
