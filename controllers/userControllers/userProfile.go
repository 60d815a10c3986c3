package userController

import (
	"fmt"
	"log"
	"time"

	"skilltree/database"
	"skilltree/middleware"
	"skilltree/models"
	"skilltree/utils"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// ProfileResponse is the fixed projection returned for /me. The
// password hash never leaves the handler layer.
type ProfileResponse struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	AvatarStyle string `json:"avatar_style"`
	XP          int    `json:"xp"`
	Level       int    `json:"level"`
	StreakDays  int    `json:"streak_days"`
}

func toProfileResponse(user models.User) ProfileResponse {
	return ProfileResponse{
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		Bio:         user.Bio,
		AvatarStyle: user.AvatarStyle,
		XP:          user.XP,
		Level:       user.Level,
		StreakDays:  user.StreakDays,
	}
}

func GetMyProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", toProfileResponse(user))
}

// UpdateMyProfile applies a partial update: only fields present in the
// request overwrite the stored user.
func UpdateMyProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Bio         *string `json:"bio"`
		AvatarStyle *string `json:"avatar_style"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if reqData.Bio != nil {
		user.Bio = *reqData.Bio
	}
	if reqData.AvatarStyle != nil {
		user.AvatarStyle = *reqData.AvatarStyle

		// Probe the avatar service so a typo'd style shows up in the
		// logs. Best effort, never blocks or fails the update.
		go func(style, seed string) {
			client := resty.New().SetTimeout(5 * time.Second)
			resp, err := client.R().Get(fmt.Sprintf("https://api.dicebear.com/7.x/%s/svg?seed=%s", style, seed))
			if err != nil {
				log.Printf("Avatar style probe failed: %v", err)
				return
			}
			if resp.StatusCode() != fiber.StatusOK {
				log.Printf("Avatar style %q not recognized by avatar service (HTTP %d)", style, resp.StatusCode())
			}
		}(*reqData.AvatarStyle, user.Username)
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", toProfileResponse(user))
}

// UpdateProgress upserts the (user, lesson) progress row. An omitted
// score keeps the stored score. The first completion of a lesson
// awards XP and may extend the daily streak.
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		LessonID  uint `json:"lesson_id"`
		Completed bool `json:"completed"`
		Score     *int `json:"score"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, reqData.LessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	firstCompletion := false

	var progress models.UserProgress
	err := database.Database.Db.Where("user_id = ? AND lesson_id = ?", userID, reqData.LessonID).First(&progress).Error
	if err == nil {
		firstCompletion = reqData.Completed && !progress.Completed
		progress.Completed = reqData.Completed
		if reqData.Score != nil {
			progress.Score = reqData.Score
		}
		if err := database.Database.Db.Save(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	} else {
		firstCompletion = reqData.Completed
		progress = models.UserProgress{
			UserID:    userID,
			LessonID:  reqData.LessonID,
			Completed: reqData.Completed,
			Score:     reqData.Score,
		}
		if err := database.Database.Db.Create(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
		}
	}

	if firstCompletion {
		awardCompletionXP(userID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved successfully!", progress)
}

const lessonCompletionXP = 50

// awardCompletionXP bumps XP/level and extends the streak when this is
// the first completed lesson of the day.
func awardCompletionXP(userID uint) {
	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return
	}

	var todayCount int64
	database.Database.Db.Model(&models.UserProgress{}).
		Where("user_id = ? AND completed = ? AND last_accessed >= ?", userID, true, now.BeginningOfDay()).
		Count(&todayCount)

	user.XP += lessonCompletionXP
	user.Level = utils.LevelForXP(user.XP)
	if todayCount <= 1 {
		user.StreakDays++
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Failed to award XP to user %d: %v", userID, err)
	}
}

// ProgressResponse mirrors the progress rows returned to clients.
type ProgressResponse struct {
	LessonID     uint      `json:"lesson_id"`
	Completed    bool      `json:"completed"`
	Score        *int      `json:"score"`
	LastAccessed time.Time `json:"last_accessed"`
}

// GetCourseProgress returns the user's raw progress rows for one
// course. No aggregation happens server-side; clients compute their
// own percentages.
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var rows []models.UserProgress
	if err := database.Database.Db.
		Joins("JOIN lessons ON lessons.id = user_progresses.lesson_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("user_progresses.user_id = ? AND modules.course_id = ?", userID, courseID).
		Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	result := make([]ProgressResponse, len(rows))
	for i, row := range rows {
		result[i] = ProgressResponse{
			LessonID:     row.LessonID,
			Completed:    row.Completed,
			Score:        row.Score,
			LastAccessed: row.LastAccessed,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": result,
	})
}

// GetMyCourses lists the courses the acting user is enrolled in.
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.
		Joins("JOIN user_courses ON user_courses.course_id = courses.id").
		Where("user_courses.user_id = ?", userID).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetMyBadges lists the acting user's badge awards.
func GetMyBadges(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var awards []models.UserBadge
	if err := database.Database.Db.Where("user_id = ?", userID).Preload("Badge").Order("awarded_at desc").Find(&awards).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch badges!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Badges fetched successfully!", fiber.Map{
		"badges": awards,
	})
}
