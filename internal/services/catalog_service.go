package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ai-buddy/student-support-service/internal/models"
	"github.com/ai-buddy/student-support-service/internal/repositories"
)

// ===== RESPONSE DTOs =====

// CourseView decorates a catalog course with viewer-specific access state.
type CourseView struct {
	models.Course
	Locked bool `json:"locked"`
}

// CourseQuery filters the catalog. "all" or empty disables a facet.
type CourseQuery struct {
	Stream string
	Grade  string
	Search string
}

// ===== SERVICE INTERFACE =====

type CatalogService interface {
	ListCourses(ctx context.Context, query CourseQuery, viewer *models.Account) ([]CourseView, error)
	GetCourse(ctx context.Context, id string, viewer *models.Account) (*CourseView, error)
}

// ===== SERVICE IMPLEMENTATION =====

type catalogService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewCatalogService(repo repositories.Repository, logger *slog.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) ListCourses(ctx context.Context, query CourseQuery, viewer *models.Account) ([]CourseView, error) {
	courses, err := s.repo.Courses().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	term := strings.ToLower(query.Search)
	views := make([]CourseView, 0, len(courses))
	for _, course := range courses {
		if !facetMatches(query.Stream, string(course.Stream)) {
			continue
		}
		if !facetMatches(query.Grade, course.Grade) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(course.Title), term) &&
			!strings.Contains(strings.ToLower(course.Description), term) &&
			!strings.Contains(strings.ToLower(course.Subject), term) {
			continue
		}
		views = append(views, CourseView{Course: course, Locked: locked(course, viewer)})
	}
	return views, nil
}

func (s *catalogService) GetCourse(ctx context.Context, id string, viewer *models.Account) (*CourseView, error) {
	course, err := s.repo.Courses().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &CourseView{Course: *course, Locked: locked(*course, viewer)}, nil
}

func facetMatches(facet, value string) bool {
	return facet == "" || facet == "all" || facet == value
}

// A premium course is locked unless the viewer's session is premium.
func locked(course models.Course, viewer *models.Account) bool {
	if !course.IsPremium {
		return false
	}
	return viewer == nil || !viewer.IsPremium
}
