package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ai-buddy/student-support-service/internal/models"
)

// ===== CANNED RESPONSES =====

// The "AI" is a fixed response set picked by a seeded random source. No
// inference happens anywhere.
type cannedResponse struct {
	content string
	kind    models.MessageType
}

var cannedResponses = []cannedResponse{
	{
		content: "मैं समझ सकता हूँ कि यह challenging time हो सकता है। आप अकेले नहीं हैं। क्या आप मुझे बता सकते हैं कि खासकर कौन सी बात आपको परेशान कर रही है?",
		kind:    models.MessageWellness,
	},
	{
		content: "UPSC preparation एक बेहतरीन choice है! मैं आपके लिए एक personalized roadmap बना सकता हूँ। पहले बताइए कि आप कौन से background से हैं और कितना time dedicate कर सकते हैं?",
		kind:    models.MessageCareer,
	},
	{
		content: "Engineering के बाद बहुत सारे options हैं! Software development, government jobs, higher studies, या entrepreneurship - सभी good paths हैं। आपकी interests क्या हैं?",
		kind:    models.MessageCareer,
	},
}

// crisisKeywords trigger the crisis response instead of a random one.
var crisisKeywords = []string{"immediate help", "emergency", "suicide", "self harm"}

const crisisResponse = "आप अकेले नहीं हैं। कृपया अभी किसी helpline से बात करें: iCall 9152987821, NIMHANS 080-26995000 (24x7)। आपकी safety सबसे ज़रूरी है।"

// ===== SERVICE INTERFACE =====

type ChatService interface {
	// Greeting returns the opening AI message, personalized with the
	// profile name when known.
	Greeting(profile models.PersonalizationProfile) models.ChatMessage

	// Send records the user message and returns it with the AI reply.
	Send(ctx context.Context, content string, profile models.PersonalizationProfile) (user, reply models.ChatMessage, err error)

	// History returns the transcript in order.
	History(ctx context.Context) ([]models.ChatMessage, error)

	// Reset drops the transcript (called on logout).
	Reset()
}

// ===== SERVICE IMPLEMENTATION =====

type chatService struct {
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	rng     *rand.Rand
	history []models.ChatMessage
}

// NewChatService builds the canned-response chat. A zero seed derives one
// from the clock; tests pass a fixed seed for deterministic replies.
func NewChatService(logger *slog.Logger, seed int64) ChatService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &chatService{
		logger: logger,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (s *chatService) Greeting(profile models.PersonalizationProfile) models.ChatMessage {
	content := "नमस्ते! मैं आपका AI Buddy हूँ। मैं यहाँ आपकी mental wellness और career guidance में मदद करने के लिए हूँ। आप अपनी भाषा में बात कर सकते हैं। आज आप कैसा महसूस कर रहे हैं?"
	if profile.Name != "" {
		content = fmt.Sprintf("नमस्ते %s! मैं आपका AI Buddy हूँ। मैं यहाँ आपकी mental wellness और career guidance में मदद करने के लिए हूँ। आप अपनी भाषा में बात कर सकते हैं। आज आप कैसा महसूस कर रहे हैं?", profile.Name)
	}
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    models.SenderAI,
		Type:      models.MessageText,
		Timestamp: s.now(),
	}
}

func (s *chatService) Send(ctx context.Context, content string, profile models.PersonalizationProfile) (models.ChatMessage, models.ChatMessage, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return models.ChatMessage{}, models.ChatMessage{}, ErrValidationFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.ChatMessage{
		ID:        uuid.NewString(),
		Content:   trimmed,
		Sender:    models.SenderUser,
		Type:      models.MessageText,
		Timestamp: s.now(),
	}

	reply := s.reply(trimmed)

	s.history = append(s.history, user, reply)
	s.logger.Debug("Chat exchange recorded", "reply_type", reply.Type)
	return user, reply, nil
}

func (s *chatService) reply(content string) models.ChatMessage {
	lowered := strings.ToLower(content)
	for _, keyword := range crisisKeywords {
		if strings.Contains(lowered, keyword) {
			return models.ChatMessage{
				ID:        uuid.NewString(),
				Content:   crisisResponse,
				Sender:    models.SenderAI,
				Type:      models.MessageCrisis,
				Timestamp: s.now(),
			}
		}
	}

	picked := cannedResponses[s.rng.Intn(len(cannedResponses))]
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Content:   picked.content,
		Sender:    models.SenderAI,
		Type:      picked.kind,
		Timestamp: s.now(),
	}
}

func (s *chatService) History(ctx context.Context) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.history...), nil
}

func (s *chatService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}
