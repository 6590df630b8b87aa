package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ai-buddy/student-support-service/internal/models"
	"github.com/ai-buddy/student-support-service/internal/repositories/memory"
)

func newDashboardFixture(t *testing.T) (DashboardService, *memory.Repository) {
	t.Helper()
	repo := newTestRepo(t)
	recommendations := NewRecommendationService(repo, testLogger())
	return NewDashboardService(repo, recommendations, testLogger()), repo
}

func accountByEmail(t *testing.T, repo *memory.Repository, email string) *models.Account {
	t.Helper()
	entry, err := repo.Directory().FindByEmail(context.Background(), email)
	require.NoError(t, err)
	return &entry.Account
}

func TestStudentDashboard(t *testing.T) {
	svc, repo := newDashboardFixture(t)
	account := accountByEmail(t, repo, "student1@demo.com")

	dashboard, err := svc.StudentDashboard(context.Background(), account)
	require.NoError(t, err)

	assert.Equal(t, "Rahul Kumar", dashboard.Name)
	assert.Equal(t, "12th", dashboard.Grade)
	assert.Equal(t, models.StreamPCM, dashboard.Stream)
	assert.False(t, dashboard.IsPremium)

	require.Len(t, dashboard.EnrolledCourses, 2)
	assert.Equal(t, "math-12", dashboard.EnrolledCourses[0].ID)

	// Recommendations mirror the student's stream and grade.
	require.Len(t, dashboard.RecommendedCourses, 2)
	assert.Equal(t, "math-12", dashboard.RecommendedCourses[0].ID)
	assert.Equal(t, "physics-12", dashboard.RecommendedCourses[1].ID)
}

func TestStudentDashboardSkipsUnknownCourses(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	// student2 is enrolled in economics-11, which the catalog does not carry.
	account := accountByEmail(t, repo, "student2@demo.com")

	dashboard, err := svc.StudentDashboard(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, dashboard.EnrolledCourses, 1)
	assert.Equal(t, "accounts-11", dashboard.EnrolledCourses[0].ID)
}

func TestTeacherDashboard(t *testing.T) {
	svc, repo := newDashboardFixture(t)
	account := accountByEmail(t, repo, "teacher1@demo.com")

	dashboard, err := svc.TeacherDashboard(context.Background(), account)
	require.NoError(t, err)

	assert.Equal(t, "Dr. Sunita Verma", dashboard.Name)
	assert.Equal(t, 150, dashboard.StudentsCount)
	assert.Equal(t, []string{"Mathematics", "Physics"}, dashboard.Subjects)
	require.Len(t, dashboard.CreatedCourses, 2)
}

func TestDashboardRoleNarrowing(t *testing.T) {
	svc, repo := newDashboardFixture(t)
	ctx := context.Background()
	student := accountByEmail(t, repo, "student1@demo.com")
	teacher := accountByEmail(t, repo, "teacher1@demo.com")

	_, err := svc.StudentDashboard(ctx, nil)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.StudentDashboard(ctx, teacher)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.TeacherDashboard(ctx, nil)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.TeacherDashboard(ctx, student)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExportTeacherReport(t *testing.T) {
	svc, repo := newDashboardFixture(t)
	account := accountByEmail(t, repo, "teacher1@demo.com")

	data, filename, err := svc.ExportTeacherReport(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, "dr.-sunita-verma-courses.xlsx", filename)
	require.NotEmpty(t, data)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	header, err := workbook.GetCellValue("Courses", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Course ID", header)

	firstID, err := workbook.GetCellValue("Courses", "A2")
	require.NoError(t, err)
	assert.Equal(t, "math-12", firstID)

	secondID, err := workbook.GetCellValue("Courses", "A3")
	require.NoError(t, err)
	assert.Equal(t, "physics-12", secondID)

	summary, err := workbook.GetCellValue("Courses", "A5")
	require.NoError(t, err)
	assert.Contains(t, summary, "Dr. Sunita Verma")
	assert.Contains(t, summary, "150")
}

func TestExportTeacherReportForbiddenForStudents(t *testing.T) {
	svc, repo := newDashboardFixture(t)
	account := accountByEmail(t, repo, "student1@demo.com")

	_, _, err := svc.ExportTeacherReport(context.Background(), account)
	assert.ErrorIs(t, err, ErrForbidden)
}
