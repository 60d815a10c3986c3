package main

import (
	"log"

	"skilltree/config"
	"skilltree/database"
	"skilltree/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the demo user, the starter courses and the badge catalog.
// Safe to re-run: bails out once a user row exists.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	if err := db.First(&models.User{}).Error; err == nil {
		log.Println("Database already seeded.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	user := models.User{
		Username:   "student",
		Email:      "test@example.com",
		Password:   string(hashed),
		XP:         2450,
		Level:      5,
		StreakDays: 12,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %q (id %d)", user.Username, user.ID)

	courses := []models.Course{
		{
			Title:       "Network Defense Essentials",
			Description: "Learn firewall configuration and packet filtering.",
			Category:    "Cyber Security",
			Difficulty:  "Beginner",
			ImageURL:    "https://images.unsplash.com/photo-1558494949-efc5254848d2?auto=format&fit=crop&q=80&w=2574",
		},
		{
			Title:       "Neural Networks 101",
			Description: "Build your first neural network from scratch.",
			Category:    "AI",
			Difficulty:  "Intermediate",
			ImageURL:    "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?auto=format&fit=crop&q=80&w=2565",
		},
		{
			Title:       "Web3 Fundamentals",
			Description: "Introduction to Blockchain and Smart Contracts.",
			Category:    "Web Dev",
			Difficulty:  "Beginner",
			ImageURL:    "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?auto=format&fit=crop&q=80&w=2664",
		},
	}
	if err := db.Create(&courses).Error; err != nil {
		log.Fatalf("Failed to create courses: %v", err)
	}

	badges := []models.Badge{
		{Name: "Packet Hunter", Description: "Completed Network Defense Lab", IconURL: "Shield"},
		{Name: "Python Novice", Description: "Finished Python Basics", IconURL: "Cpu"},
		{Name: "AI Architect", Description: "Build a Neural Network", IconURL: "Brain"},
	}
	if err := db.Create(&badges).Error; err != nil {
		log.Fatalf("Failed to create badges: %v", err)
	}

	awards := []models.UserBadge{
		{UserID: user.ID, BadgeID: badges[0].ID},
		{UserID: user.ID, BadgeID: badges[1].ID},
	}
	if err := db.Create(&awards).Error; err != nil {
		log.Fatalf("Failed to award badges: %v", err)
	}

	skills := []models.Skill{
		{Name: "Python", Category: "Backend"},
		{Name: "Network Security", Category: "Cyber Security"},
		{Name: "React", Category: "Frontend"},
		{Name: "Algorithms", Category: "CSE"},
	}
	if err := db.Create(&skills).Error; err != nil {
		log.Fatalf("Failed to create skills: %v", err)
	}

	log.Println("Tables created and seeded successfully.")
}
