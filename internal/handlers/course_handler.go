package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-buddy/student-support-service/internal/services"
	"github.com/ai-buddy/student-support-service/internal/utils"
	"github.com/ai-buddy/student-support-service/internal/validator"
)

type CourseHandler struct {
	BaseHandler
	catalog   services.CatalogService
	session   services.SessionService
	validator *validator.Validator
}

func NewCourseHandler(catalog services.CatalogService, session services.SessionService, v *validator.Validator, logger utils.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: NewBaseHandler(logger),
		catalog:     catalog,
		session:     session,
		validator:   v,
	}
}

// ListCourses returns the catalog filtered by stream, grade and search term.
// Premium lock state depends on the current session, if any.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	req := validator.CourseQueryRequest{
		Stream: c.Query("stream"),
		Grade:  c.Query("grade"),
		Search: c.Query("q"),
	}
	if errs := h.validator.Validate(req); errs.HasErrors() {
		h.handleServiceError(c, errs)
		return
	}

	courses, err := h.catalog.ListCourses(c.Request.Context(), services.CourseQuery{
		Stream: req.Stream,
		Grade:  req.Grade,
		Search: req.Search,
	}, h.session.Current())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"total":   len(courses),
	})
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.catalog.GetCourse(c.Request.Context(), c.Param("id"), h.session.Current())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}
