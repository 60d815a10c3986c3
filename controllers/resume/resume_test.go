package resumeController

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"skilltree/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		JWTKey:    "testSecret",
		UploadDir: t.TempDir(),
	}

	app := fiber.New()
	app.Post("/api/resume/analyze", AnalyzeResume)
	return app
}

func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestAnalyzeResumeReturnsCannedAnalysis(t *testing.T) {
	app := setupApp(t)

	body, contentType := multipartUpload(t, "file", "resume.pdf", []byte("%PDF-1.4 fake resume"))
	req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var analysis AnalysisResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analysis))

	assert.Equal(t, 75, analysis.Score)
	assert.Equal(t, "Junior Security Analyst", analysis.MatchRole)
	assert.Len(t, analysis.MissingSkills, 3)
	require.Len(t, analysis.RecommendedJobs, 3)
	assert.Equal(t, "Junior SOC Analyst", analysis.RecommendedJobs[0].Title)
}

// The analysis never depends on the file content.
func TestAnalyzeResumeIgnoresContent(t *testing.T) {
	app := setupApp(t)

	body, contentType := multipartUpload(t, "file", "notes.txt", []byte("completely unrelated text"))
	req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var analysis AnalysisResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analysis))
	assert.Equal(t, 75, analysis.Score)
}

func TestAnalyzeResumeMissingFile(t *testing.T) {
	app := setupApp(t)

	body, contentType := multipartUpload(t, "wrong_field", "resume.pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadLandsInConfiguredDir(t *testing.T) {
	app := setupApp(t)

	body, contentType := multipartUpload(t, "file", "resume.pdf", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	matches, err := filepath.Glob(filepath.Join(config.AppConfig.UploadDir, "*.pdf"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
