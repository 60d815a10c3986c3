package skillController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skilltree/config"
	"skilltree/database"
	"skilltree/middleware"
	"skilltree/models"
	skillValidator "skilltree/validators/skill"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:       "0",
		DBDriver:   "sqlite",
		JWTKey:     "testSecret",
		SaltRound:  4,
		DemoUserID: 1,
		UploadDir:  t.TempDir(),
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/api/skills", GetAllSkills)
	app.Post("/api/skills", skillValidator.CreateSkill(), CreateSkill)
	app.Get("/api/skills/me", middleware.CurrentUser, GetMySkills)
	app.Post("/api/skills/me", middleware.CurrentUser, skillValidator.UpsertUserSkill(), UpsertMySkill)

	user := models.User{Username: "student", Email: "test@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestCreateAndListSkills(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/skills", fiber.Map{
		"name":     "Python",
		"category": "Backend",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, env := doRequest(t, app, http.MethodGet, "/api/skills", nil)
	var data struct {
		Skills []models.Skill `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Skills, 1)
	assert.Equal(t, "Python", data.Skills[0].Name)
}

func TestCreateSkillValidation(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/skills", fiber.Map{"name": "  "})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpsertUserSkillOverwritesProficiencyOnly(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	skill := models.Skill{Name: "Network Security", Category: "Cyber Security"}
	require.NoError(t, db.Create(&skill).Error)

	resp, env := doRequest(t, app, http.MethodPost, "/api/skills/me", fiber.Map{
		"skill_id":    skill.ID,
		"proficiency": 40,
		"verified":    true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.UserSkill
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 40, created.Proficiency)
	assert.True(t, created.Verified)

	// Update overwrites proficiency but never touches verified
	resp, env = doRequest(t, app, http.MethodPost, "/api/skills/me", fiber.Map{
		"skill_id":    skill.ID,
		"proficiency": 85,
		"verified":    false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.UserSkill
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 85, updated.Proficiency)
	assert.True(t, updated.Verified)

	var count int64
	db.Model(&models.UserSkill{}).Where("user_id = ? AND skill_id = ?", 1, skill.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpsertUserSkillUnknownSkill(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/skills/me", fiber.Map{
		"skill_id":    999,
		"proficiency": 10,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
