package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-buddy/student-support-service/internal/models"
	"github.com/ai-buddy/student-support-service/internal/services"
	"github.com/ai-buddy/student-support-service/internal/utils"
	"github.com/ai-buddy/student-support-service/internal/validator"
)

type ChatHandler struct {
	BaseHandler
	chat      services.ChatService
	session   services.SessionService
	validator *validator.Validator
}

func NewChatHandler(chat services.ChatService, session services.SessionService, v *validator.Validator, logger utils.Logger) *ChatHandler {
	return &ChatHandler{
		BaseHandler: NewBaseHandler(logger),
		chat:        chat,
		session:     session,
		validator:   v,
	}
}

// Greeting returns the opening AI message, personalized when a session
// exists.
func (h *ChatHandler) Greeting(c *gin.Context) {
	profile := models.ProfileForAccount(h.session.Current())
	c.JSON(http.StatusOK, gin.H{"message": h.chat.Greeting(profile)})
}

// SendMessage records the user message and returns it with the AI reply.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req validator.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}
	if errs := h.validator.Validate(req); errs.HasErrors() {
		h.handleServiceError(c, errs)
		return
	}

	profile := models.ProfileForAccount(h.session.Current())
	user, reply, err := h.chat.Send(c.Request.Context(), req.Content, profile)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"reply": reply,
	})
}

// History returns the transcript in order.
func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.chat.History(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"total":    len(messages),
	})
}
