package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ai-buddy/student-support-service/internal/models"
	"github.com/ai-buddy/student-support-service/internal/services"
	"github.com/ai-buddy/student-support-service/internal/utils"
	"github.com/ai-buddy/student-support-service/internal/validator"
)

// HandlerManager wires and owns all HTTP handlers.
type HandlerManager struct {
	authHandler      *AuthHandler
	courseHandler    *CourseHandler
	careerHandler    *CareerHandler
	chatHandler      *ChatHandler
	wellnessHandler  *WellnessHandler
	dashboardHandler *DashboardHandler

	services services.ServiceManager
	logger   utils.Logger
}

func NewHandlerManager(serviceManager services.ServiceManager, v *validator.Validator, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		authHandler:      NewAuthHandler(serviceManager.Session(), serviceManager.Chat(), v, logger),
		courseHandler:    NewCourseHandler(serviceManager.Catalog(), serviceManager.Session(), v, logger),
		careerHandler:    NewCareerHandler(serviceManager.Recommendation(), serviceManager.Session(), v, logger),
		chatHandler:      NewChatHandler(serviceManager.Chat(), serviceManager.Session(), v, logger),
		wellnessHandler:  NewWellnessHandler(serviceManager.Wellness(), v, logger),
		dashboardHandler: NewDashboardHandler(serviceManager.Dashboard(), logger),
		services:         serviceManager,
		logger:           logger,
	}
}

// SetupRoutes registers all API routes on the router.
func (m *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", m.healthCheck)

	session := m.services.Session()
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", m.authHandler.Login)
			auth.POST("/logout", m.authHandler.Logout)
			auth.GET("/me", m.authHandler.Me)
			auth.POST("/upgrade", SessionMiddleware(session), m.authHandler.UpgradeToPremium)
		}

		courses := v1.Group("/courses")
		{
			courses.GET("", m.courseHandler.ListCourses)
			courses.GET("/:id", m.courseHandler.GetCourse)
		}

		careers := v1.Group("/careers")
		{
			careers.GET("/categories", m.careerHandler.Categories)
			careers.GET("/pathways", m.careerHandler.ListPathways)
		}

		chat := v1.Group("/chat")
		{
			chat.GET("/greeting", m.chatHandler.Greeting)
			chat.GET("/messages", m.chatHandler.History)
			chat.POST("/messages", m.chatHandler.SendMessage)
		}

		wellness := v1.Group("/wellness")
		{
			wellness.GET("/tools", m.wellnessHandler.Tools)
			wellness.GET("/crisis-resources", m.wellnessHandler.CrisisResources)
			wellness.GET("/breathing", m.wellnessHandler.BreathingExercise)
			wellness.GET("/affirmations/next", m.wellnessHandler.NextAffirmation)
			wellness.GET("/mood", m.wellnessHandler.MoodHistory)
			wellness.POST("/mood", m.wellnessHandler.RecordMood)
		}

		dashboard := v1.Group("/dashboard", SessionMiddleware(session))
		{
			dashboard.GET("/student",
				RequireRoleMiddleware(models.RoleStudent),
				m.dashboardHandler.StudentDashboard)
			dashboard.GET("/teacher",
				RequireRoleMiddleware(models.RoleTeacher),
				m.dashboardHandler.TeacherDashboard)
			dashboard.GET("/teacher/export",
				RequireRoleMiddleware(models.RoleTeacher),
				m.dashboardHandler.ExportTeacherReport)
		}
	}
}

func (m *HandlerManager) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "student-support-service",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
