package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-buddy/student-support-service/internal/services"
	"github.com/ai-buddy/student-support-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	BaseHandler
	dashboard services.DashboardService
}

func NewDashboardHandler(dashboard services.DashboardService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		dashboard:   dashboard,
	}
}

func (h *DashboardHandler) StudentDashboard(c *gin.Context) {
	dashboard, err := h.dashboard.StudentDashboard(c.Request.Context(), AccountFromContext(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) TeacherDashboard(c *gin.Context) {
	dashboard, err := h.dashboard.TeacherDashboard(c.Request.Context(), AccountFromContext(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// ExportTeacherReport streams the teacher's course roster as an xlsx
// download.
func (h *DashboardHandler) ExportTeacherReport(c *gin.Context) {
	data, filename, err := h.dashboard.ExportTeacherReport(c.Request.Context(), AccountFromContext(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Teacher report exported", "filename", filename, "bytes", len(data))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
