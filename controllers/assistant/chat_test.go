package assistantController

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
	chatValidator "skilltree/validators/chat"

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
	app.Get("/api/dashboard", middleware.CurrentUser, GetDashboard)
	app.Post("/api/chat", middleware.CurrentUser, chatValidator.ChatMessage(), Chat)
	return app
}

func TestClassifyKeywords(t *testing.T) {
	cases := []struct {
		name       string
		message    string
		actionLink string
	}{
		{"greeting", "Hi there", ""},
		{"sorting", "Can you explain sorting?", "/lab/sorting-algo"},
		{"bubble", "show me BUBBLE sort", "/lab/sorting-algo"},
		{"circuits", "how do logic gates work", "/lab/circuit-logic"},
		{"security", "teach me network security", "/lab/network-defense"},
		{"career", "what job can I get", ""},
		{"help", "help me please", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reply := Classify(tc.message)
			assert.NotEmpty(t, reply.Response)
			assert.Equal(t, tc.actionLink, reply.ActionLink)
		})
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	// Greeting wins over everything else
	reply := Classify("hi, I want a sorting job")
	assert.Empty(t, reply.ActionLink)
	assert.Contains(t, reply.Response, "SkillTree AI instructor")

	// Sorting wins over career
	reply = Classify("sort out my resume")
	assert.Equal(t, "/lab/sorting-algo", reply.ActionLink)
}

func TestClassifyFallbackEchoesMessage(t *testing.T) {
	reply := Classify("quantum entanglement")
	assert.Contains(t, reply.Response, "quantum entanglement")
	assert.Empty(t, reply.ActionLink)
	assert.Empty(t, reply.ActionText)
}

func TestChatEndpoint(t *testing.T) {
	app := setupApp(t)

	body, err := json.Marshal(fiber.Map{"message": "visualize sorting"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply ChatReply
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
	assert.Equal(t, "/lab/sorting-algo", reply.ActionLink)
	assert.Equal(t, "Launch Sorting Lab", reply.ActionText)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(`{"message":"  "}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDashboardGuestFallback(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	var data struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Guest", data.User.Name)
}

func TestDashboardWithUser(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	user := models.User{Username: "student", Email: "test@example.com", Password: "x", XP: 2450, Level: 5, StreakDays: 12}
	require.NoError(t, db.Create(&user).Error)

	badge := models.Badge{Name: "First Steps", Description: "d", IconURL: "star"}
	require.NoError(t, db.Create(&badge).Error)
	require.NoError(t, db.Create(&models.UserBadge{UserID: user.ID, BadgeID: badge.ID}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	var data struct {
		User struct {
			Name   string   `json:"name"`
			XP     int      `json:"xp"`
			Badges []string `json:"badges"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "student", data.User.Name)
	assert.Equal(t, 2450, data.User.XP)
	assert.Equal(t, []string{"First Steps"}, data.User.Badges)
}
