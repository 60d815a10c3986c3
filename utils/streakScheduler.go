package utils

import (
	"log"
	"time"

	"skilltree/database"
	"skilltree/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

func logScheduler(message string) {
	log.Printf("[STREAK-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// breakIdleStreaks zeroes the streak counter for users with no lesson
// activity since the start of yesterday.
func breakIdleStreaks() {
	db := database.Database.Db
	yesterday := now.BeginningOfDay().AddDate(0, 0, -1)

	var users []models.User
	if err := db.Where("streak_days > 0").Find(&users).Error; err != nil {
		logScheduler("Error fetching users: " + err.Error())
		return
	}

	broken := 0
	for _, user := range users {
		var recent int64
		db.Model(&models.UserProgress{}).
			Where("user_id = ? AND last_accessed >= ?", user.ID, yesterday).
			Count(&recent)

		if recent == 0 {
			user.StreakDays = 0
			if err := db.Save(&user).Error; err != nil {
				logScheduler("Error resetting streak: " + err.Error())
				continue
			}
			broken++
		}
	}

	if broken > 0 {
		logScheduler("Reset streaks for idle users")
	}
}

// StartStreakScheduler runs streak maintenance shortly after midnight.
func StartStreakScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("5 0 * * *", breakIdleStreaks); err != nil {
		logScheduler("Failed to schedule streak maintenance: " + err.Error())
		return
	}

	c.Start()
	logScheduler("Streak scheduler started")
}
