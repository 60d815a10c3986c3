package resumeController

import (
	"log"
	"time"

	"skilltree/config"
	"skilltree/middleware"
	"skilltree/utils"

	"github.com/gofiber/fiber/v2"
)

// analysisDelay simulates resume parsing latency.
const analysisDelay = 1500 * time.Millisecond

type JobRecommendation struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	MatchScore  int    `json:"match_score"`
}

type AnalysisResponse struct {
	Score           int                 `json:"score"`
	MatchRole       string              `json:"match_role"`
	MissingSkills   []string            `json:"missing_skills"`
	Recommendation  string              `json:"recommendation"`
	RecommendedJobs []JobRecommendation `json:"recommended_jobs"`
}

// AnalyzeResume stores the upload and returns a canned analysis. The
// file content is never inspected; real parsing is a follow-up once an
// extraction backend exists.
func AnalyzeResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resume file is required!", nil)
	}

	if _, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir); err != nil {
		// Keep going; the analysis is canned either way
		log.Printf("Failed to store uploaded resume: %v", err)
	}

	time.Sleep(analysisDelay)

	return c.Status(fiber.StatusOK).JSON(AnalysisResponse{
		Score:         75,
		MatchRole:     "Junior Security Analyst",
		MissingSkills: []string{"Network Forensics", "Advanced Python", "Penetration Testing"},
		Recommendation: "Based on your resume, we recommend enrolling in the 'Cyber Security Specialist' " +
			"path to bridge the gap.",
		RecommendedJobs: []JobRecommendation{
			{
				Title:       "Junior SOC Analyst",
				Company:     "CyberGuard Solutions",
				Location:    "Remote",
				SalaryRange: "$70k - $90k",
				MatchScore:  85,
			},
			{
				Title:       "Network Security Intern",
				Company:     "TechCorp",
				Location:    "San Francisco, CA",
				SalaryRange: "$60k - $75k",
				MatchScore:  92,
			},
			{
				Title:       "IT Security Associate",
				Company:     "FinSecure Bank",
				Location:    "New York, NY",
				SalaryRange: "$80k - $100k",
				MatchScore:  70,
			},
		},
	})
}
