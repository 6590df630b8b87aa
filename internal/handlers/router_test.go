package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-buddy/student-support-service/internal/events"
	"github.com/ai-buddy/student-support-service/internal/repositories/memory"
	"github.com/ai-buddy/student-support-service/internal/services"
	"github.com/ai-buddy/student-support-service/internal/snapshot"
	"github.com/ai-buddy/student-support-service/internal/utils"
	"github.com/ai-buddy/student-support-service/internal/validator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	slogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	logger := utils.NewSlogLogger(slogger)

	repo, err := memory.NewRepository()
	require.NoError(t, err)

	manager := services.NewServiceManager(
		repo,
		snapshot.NewRedisStore(nil, "ai-buddy-user"),
		events.NewMockEventPublisher(slogger),
		slogger,
		services.ServiceManagerConfig{ChatSeed: 1},
	)
	require.NoError(t, manager.Initialize(t.Context()))

	router := gin.New()
	SetupMiddleware(router, logger)
	NewHandlerManager(manager, validator.New(), logger).SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, email, password string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "student1@demo.com",
		"password": "student123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Account struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"account"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "student1@demo.com", resp.Account.Email)
	assert.Equal(t, "student", resp.Account.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	// Wrong password and unknown email get the same generic answer.
	for _, body := range []gin.H{
		{"email": "student1@demo.com", "password": "wrong-password"},
		{"email": "nobody@demo.com", "password": "student123"},
	} {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	}
}

func TestLoginValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "not-an-email",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
}

func TestDashboardRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/dashboard/student",
		"/api/v1/dashboard/teacher",
		"/api/v1/dashboard/teacher/export",
	} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestDashboardRoleGating(t *testing.T) {
	router := newTestRouter(t)
	login(t, router, "student1@demo.com", "student123")

	w := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/student", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rahul Kumar")

	w = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/teacher", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTeacherExportEndpoint(t *testing.T) {
	router := newTestRouter(t)
	login(t, router, "teacher1@demo.com", "teacher123")

	w := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/teacher/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "dr.-sunita-verma-courses.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestCoursesArePublic(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/courses?stream=PCM", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestPathwaysEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/careers/pathways?category=government&education=graduation", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Pathways []struct {
			ID          string `json:"id"`
			Score       int    `json:"score"`
			Recommended bool   `json:"recommended"`
		} `json:"pathways"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Pathways, 3)
	assert.Equal(t, "upsc", resp.Pathways[0].ID)
	assert.Equal(t, 3, resp.Pathways[0].Score)
	assert.True(t, resp.Pathways[0].Recommended)

	// Missing category fails validation.
	w = doJSON(t, router, http.MethodGet, "/api/v1/careers/pathways", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutClearsSessionAndChat(t *testing.T) {
	router := newTestRouter(t)
	login(t, router, "student1@demo.com", "student123")

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat/messages", gin.H{"content": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/chat/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
}

func TestUpgradeRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/upgrade", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login(t, router, "student1@demo.com", "student123")

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/upgrade", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Account struct {
			IsPremium bool `json:"is_premium"`
		} `json:"account"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Account.IsPremium)
}
