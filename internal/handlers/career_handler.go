package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ai-buddy/student-support-service/internal/models"
	"github.com/ai-buddy/student-support-service/internal/services"
	"github.com/ai-buddy/student-support-service/internal/utils"
	"github.com/ai-buddy/student-support-service/internal/validator"
)

type CareerHandler struct {
	BaseHandler
	recommendations services.RecommendationService
	session         services.SessionService
	validator       *validator.Validator
}

func NewCareerHandler(recommendations services.RecommendationService, session services.SessionService, v *validator.Validator, logger utils.Logger) *CareerHandler {
	return &CareerHandler{
		BaseHandler:     NewBaseHandler(logger),
		recommendations: recommendations,
		session:         session,
		validator:       v,
	}
}

// Categories lists the pathway category tabs.
func (h *CareerHandler) Categories(c *gin.Context) {
	categories, err := h.recommendations.Categories(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListPathways returns the category's pathways filtered by the search term
// and ranked against the caller's profile. Query parameters override the
// session-derived profile, so the page works before login too.
func (h *CareerHandler) ListPathways(c *gin.Context) {
	req := validator.PathwayQueryRequest{
		Category:  c.Query("category"),
		Search:    c.Query("q"),
		Location:  c.Query("location"),
		Education: c.Query("education"),
		Interests: splitCSV(c.Query("interests")),
	}
	if errs := h.validator.Validate(req); errs.HasErrors() {
		h.handleServiceError(c, errs)
		return
	}

	profile := models.ProfileForAccount(h.session.Current())
	if req.Education != "" {
		profile.Education = req.Education
	}
	if len(req.Interests) > 0 {
		profile.Interests = req.Interests
	}
	if req.Location != "" {
		profile.Location = req.Location
	}

	pathways, err := h.recommendations.QueryPathways(c.Request.Context(), services.PathwayQuery{
		Category: req.Category,
		Search:   req.Search,
		Profile:  profile,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pathways": pathways,
		"total":    len(pathways),
	})
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
