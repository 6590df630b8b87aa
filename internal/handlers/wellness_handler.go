package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-buddy/student-support-service/internal/services"
	"github.com/ai-buddy/student-support-service/internal/utils"
	"github.com/ai-buddy/student-support-service/internal/validator"
)

type WellnessHandler struct {
	BaseHandler
	wellness  services.WellnessService
	validator *validator.Validator
}

func NewWellnessHandler(wellness services.WellnessService, v *validator.Validator, logger utils.Logger) *WellnessHandler {
	return &WellnessHandler{
		BaseHandler: NewBaseHandler(logger),
		wellness:    wellness,
		validator:   v,
	}
}

func (h *WellnessHandler) Tools(c *gin.Context) {
	tools, err := h.wellness.Tools(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tools": tools})
}

func (h *WellnessHandler) CrisisResources(c *gin.Context) {
	resources, err := h.wellness.CrisisResources(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

func (h *WellnessHandler) BreathingExercise(c *gin.Context) {
	exercise, err := h.wellness.BreathingExercise(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercise": exercise})
}

// NextAffirmation cycles through the affirmation list. The lang query
// parameter picks Hindi or English text.
func (h *WellnessHandler) NextAffirmation(c *gin.Context) {
	affirmation, err := h.wellness.NextAffirmation(c.Request.Context(), c.DefaultQuery("lang", "hi"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"affirmation": affirmation})
}

func (h *WellnessHandler) RecordMood(c *gin.Context) {
	var req validator.MoodEntryRequest
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

	entry, err := h.wellness.RecordMood(c.Request.Context(), req.Mood, req.Note)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *WellnessHandler) MoodHistory(c *gin.Context) {
	entries, err := h.wellness.MoodHistory(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   len(entries),
	})
}
