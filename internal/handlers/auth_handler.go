package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-buddy/student-support-service/internal/services"
	"github.com/ai-buddy/student-support-service/internal/utils"
	"github.com/ai-buddy/student-support-service/internal/validator"
)

type AuthHandler struct {
	BaseHandler
	session   services.SessionService
	chat      services.ChatService
	validator *validator.Validator
}

func NewAuthHandler(session services.SessionService, chat services.ChatService, v *validator.Validator, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		session:     session,
		chat:        chat,
		validator:   v,
	}
}

// Login authenticates against the demo directory. Unknown email and wrong
// password get the same generic response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req validator.LoginRequest
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

	ok, err := h.session.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Invalid credentials",
		})
		return
	}

	account := h.session.Current()
	h.LogRequest(c, "User logged in", "account_id", account.ID, "role", account.Role)
	c.JSON(http.StatusOK, gin.H{"account": account})
}

// Logout ends the current session and drops the chat transcript. Idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.session.Logout(c.Request.Context()); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.chat.Reset()
	c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out"})
}

// Me returns the current session account.
func (h *AuthHandler) Me(c *gin.Context) {
	account := h.session.Current()
	if account == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"account": account,
		"loading": h.session.Loading(),
	})
}

// UpgradeToPremium flips the premium flag on the current session.
func (h *AuthHandler) UpgradeToPremium(c *gin.Context) {
	if err := h.session.UpgradeToPremium(c.Request.Context()); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": h.session.Current()})
}
