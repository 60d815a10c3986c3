package assistantController

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"skilltree/middleware"

	"github.com/gofiber/fiber/v2"
)

// ChatReply is the wire shape of an assistant response.
type ChatReply struct {
	Response   string `json:"response"`
	ActionLink string `json:"action_link,omitempty"`
	ActionText string `json:"action_text,omitempty"`
}

// replyDelay simulates assistant thinking time.
const replyDelay = 500 * time.Millisecond

// chatRule matches when any keyword occurs in the lowercased message.
// Rules are checked in order; the first hit wins.
type chatRule struct {
	keywords   []string
	response   string
	actionLink string
	actionText string
}

var chatRules = []chatRule{
	{
		keywords: []string{"hello", "hi"},
		response: "Hello! I am your SkillTree AI instructor. I can help you master Cyber Security, Algorithms, or Web Dev. Try asking to 'visualize sorting' or 'build a circuit'!",
	},
	{
		keywords:   []string{"sort", "algorithm", "bubble"},
		response:   "Sorting algorithms are best understood visually. I can take you to the Sorting Algorithm Visualizer.",
		actionLink: "/lab/sorting-algo",
		actionText: "Launch Sorting Lab",
	},
	{
		keywords:   []string{"circuit", "logic", "gate"},
		response:   "Digital logic requires hands-on practice. Let's open the Circuit Builder to experiment with AND/OR gates.",
		actionLink: "/lab/circuit-logic",
		actionText: "Launch Circuit Builder",
	},
	{
		keywords:   []string{"network", "security"},
		response:   "Network security is a critical field. I recommend starting with our 'Network Defense Essentials' course.",
		actionLink: "/lab/network-defense",
		actionText: "Access Network Lab",
	},
	{
		keywords: []string{"job", "career", "resume"},
		response: "Based on your progress, you are on track for roles like 'Junior Security Analyst'. Upload your resume for a detailed analysis!",
	},
	{
		keywords: []string{"help"},
		response: "I can guide you through courses, launch AR/VR simulations, or analyze your career readiness. What would you like to do?",
	},
}

// Classify maps a raw message to a canned reply. Stateless; unmatched
// input falls through to an echo of the original message.
func Classify(message string) ChatReply {
	msg := strings.ToLower(message)

	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return ChatReply{
					Response:   rule.response,
					ActionLink: rule.actionLink,
					ActionText: rule.actionText,
				}
			}
		}
	}

	return ChatReply{
		Response: fmt.Sprintf("That's an interesting topic! As an AI instructor, I can help you find resources about '%s'.", message),
	}
}

// chatLog is a process-wide append-only record of raw messages.
// Nothing reads it back yet.
var (
	chatLogMu sync.Mutex
	chatLog   []string
)

func Chat(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChat").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	time.Sleep(replyDelay)

	chatLogMu.Lock()
	chatLog = append(chatLog, strings.ToLower(reqData.Message))
	chatLogMu.Unlock()

	reply := Classify(reqData.Message)

	return c.Status(fiber.StatusOK).JSON(reply)
}
