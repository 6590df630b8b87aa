package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ai-buddy/student-support-service/internal/models"
	"github.com/ai-buddy/student-support-service/internal/repositories"
)

// ===== RESPONSE DTOs =====

type StudentDashboardResponse struct {
	Name               string                  `json:"name"`
	Grade              string                  `json:"grade"`
	Stream             models.Stream           `json:"stream"`
	SchoolName         string                  `json:"school_name"`
	IsPremium          bool                    `json:"is_premium"`
	EnrolledCourses    []models.Course         `json:"enrolled_courses"`
	RecommendedCourses []models.Course         `json:"recommended_courses"`
	Progress           []models.CourseProgress `json:"progress"`
}

type TeacherDashboardResponse struct {
	Name           string          `json:"name"`
	Qualification  string          `json:"qualification"`
	Experience     int             `json:"experience"`
	SchoolName     string          `json:"school_name"`
	Subjects       []string        `json:"subjects"`
	StudentsCount  int             `json:"students_count"`
	CreatedCourses []models.Course `json:"created_courses"`
}

// ===== SERVICE INTERFACE =====

type DashboardService interface {
	// StudentDashboard requires a student account; ErrForbidden otherwise.
	StudentDashboard(ctx context.Context, account *models.Account) (*StudentDashboardResponse, error)

	// TeacherDashboard requires a teacher account; ErrForbidden otherwise.
	TeacherDashboard(ctx context.Context, account *models.Account) (*TeacherDashboardResponse, error)

	// ExportTeacherReport renders the teacher's course roster as an xlsx
	// workbook and returns its bytes with a suggested filename.
	ExportTeacherReport(ctx context.Context, account *models.Account) ([]byte, string, error)
}

// ===== SERVICE IMPLEMENTATION =====

type dashboardService struct {
	repo            repositories.Repository
	recommendations RecommendationService
	logger          *slog.Logger
}

func NewDashboardService(repo repositories.Repository, recommendations RecommendationService, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:            repo,
		recommendations: recommendations,
		logger:          logger,
	}
}

func (s *dashboardService) StudentDashboard(ctx context.Context, account *models.Account) (*StudentDashboardResponse, error) {
	if account == nil {
		return nil, ErrNoSession
	}
	student, ok := account.AsStudent()
	if !ok {
		return nil, ErrForbidden
	}

	s.logger.Info("Building student dashboard", "account_id", account.ID)

	enrolled, err := s.coursesByID(ctx, student.EnrolledCourses)
	if err != nil {
		return nil, err
	}

	recommended, err := s.recommendations.RecommendedCourses(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("recommend courses: %w", err)
	}

	return &StudentDashboardResponse{
		Name:               account.Name,
		Grade:              student.Grade,
		Stream:             student.Stream,
		SchoolName:         student.SchoolName,
		IsPremium:          account.IsPremium,
		EnrolledCourses:    enrolled,
		RecommendedCourses: recommended,
		Progress:           append([]models.CourseProgress(nil), student.Progress...),
	}, nil
}

func (s *dashboardService) TeacherDashboard(ctx context.Context, account *models.Account) (*TeacherDashboardResponse, error) {
	if account == nil {
		return nil, ErrNoSession
	}
	teacher, ok := account.AsTeacher()
	if !ok {
		return nil, ErrForbidden
	}

	s.logger.Info("Building teacher dashboard", "account_id", account.ID)

	created, err := s.coursesByID(ctx, teacher.CreatedCourses)
	if err != nil {
		return nil, err
	}

	return &TeacherDashboardResponse{
		Name:           account.Name,
		Qualification:  teacher.Qualification,
		Experience:     teacher.Experience,
		SchoolName:     teacher.SchoolName,
		Subjects:       append([]string(nil), teacher.Subjects...),
		StudentsCount:  teacher.StudentsCount,
		CreatedCourses: created,
	}, nil
}

func (s *dashboardService) ExportTeacherReport(ctx context.Context, account *models.Account) ([]byte, string, error) {
	dashboard, err := s.TeacherDashboard(ctx, account)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Courses"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{"Course ID", "Title", "Subject", "Stream", "Grade", "Enrolled Students", "Rating"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", fmt.Errorf("write header: %w", err)
		}
	}

	for row, course := range dashboard.CreatedCourses {
		values := []interface{}{
			course.ID, course.Title, course.Subject,
			string(course.Stream), course.Grade,
			course.EnrolledStudents, course.Rating,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, "", fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", fmt.Errorf("write row: %w", err)
			}
		}
	}

	summaryRow := len(dashboard.CreatedCourses) + 3
	summary := fmt.Sprintf("Teacher: %s | Students taught: %d | Subjects: %s",
		dashboard.Name, dashboard.StudentsCount, strings.Join(dashboard.Subjects, ", "))
	cell, err := excelize.CoordinatesToCellName(1, summaryRow)
	if err != nil {
		return nil, "", fmt.Errorf("summary cell: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, summary); err != nil {
		return nil, "", fmt.Errorf("write summary: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("%s-courses.xlsx", strings.ReplaceAll(strings.ToLower(dashboard.Name), " ", "-"))
	return buf.Bytes(), filename, nil
}

func (s *dashboardService) coursesByID(ctx context.Context, ids []string) ([]models.Course, error) {
	courses := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		course, err := s.repo.Courses().GetByID(ctx, id)
		if err != nil {
			// Seed data references a few courses that only exist in the
			// full catalog; skip unknown ids instead of failing the page.
			s.logger.Warn("Unknown course id in profile", "course_id", id)
			continue
		}
		courses = append(courses, *course)
	}
	return courses, nil
}
