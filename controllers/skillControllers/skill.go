package skillController

import (
	"skilltree/database"
	"skilltree/middleware"
	"skilltree/models"
	"skilltree/utils"

	"github.com/gofiber/fiber/v2"
)

func GetAllSkills(c *fiber.Ctx) error {
	var skills []models.Skill
	if err := database.Database.Db.Find(&skills).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch skills!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skills fetched successfully!", fiber.Map{
		"skills": skills,
	})
}

func CreateSkill(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSkill").(*struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	skill := models.Skill{
		Name:     reqData.Name,
		Category: reqData.Category,
	}

	// Uniqueness rides on the DB index on name
	if err := database.Database.Db.Create(&skill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Failed to create skill, name may already exist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Skill created successfully!", skill)
}

// GetMySkills lists the acting user's skills with proficiency.
func GetMySkills(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var userSkills []models.UserSkill
	if err := database.Database.Db.Where("user_id = ?", userID).Preload("Skill").Find(&userSkills).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch skills!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User skills fetched successfully!", fiber.Map{
		"skills": userSkills,
	})
}

// UpsertMySkill adds a skill to the acting user or, if the pair
// already exists, overwrites the proficiency only. The verified flag
// is set on creation and left untouched on update.
func UpsertMySkill(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUserSkill").(*struct {
		SkillID     uint `json:"skill_id"`
		Proficiency int  `json:"proficiency"`
		Verified    bool `json:"verified"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var skill models.Skill
	if err := database.Database.Db.First(&skill, reqData.SkillID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Skill not found!", nil)
	}

	var userSkill models.UserSkill
	err := database.Database.Db.Where("user_id = ? AND skill_id = ?", userID, reqData.SkillID).First(&userSkill).Error
	if err == nil {
		userSkill.Proficiency = utils.ClampProficiency(reqData.Proficiency)
		if err := database.Database.Db.Save(&userSkill).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update skill!", nil)
		}
		userSkill.Skill = skill
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill proficiency updated successfully!", userSkill)
	}

	userSkill = models.UserSkill{
		UserID:      userID,
		SkillID:     reqData.SkillID,
		Proficiency: utils.ClampProficiency(reqData.Proficiency),
		Verified:    reqData.Verified,
	}
	if err := database.Database.Db.Create(&userSkill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add skill!", nil)
	}

	userSkill.Skill = skill
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Skill added successfully!", userSkill)
}
