package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ai-buddy/student-support-service/internal/models"
	"github.com/ai-buddy/student-support-service/internal/repositories"
)

// RecommendationThreshold is the minimum score at which a pathway is flagged
// as recommended.
const RecommendationThreshold = 2

// maxCourseRecommendations caps the course variant's result list.
const maxCourseRecommendations = 3

// ===== RESPONSE DTOs =====

type ScoredPathway struct {
	models.CareerPathway
	Score       int  `json:"score"`
	Recommended bool `json:"recommended"`
}

type PathwayQuery struct {
	Category string
	Search   string
	Profile  models.PersonalizationProfile
}

// ===== SERVICE INTERFACE =====

type RecommendationService interface {
	// Score is pure and deterministic: +3 on an interest substring match
	// against title/description, +2 on an eligibility/education substring
	// match, +1 when trending. Additive, uncapped.
	Score(pathway models.CareerPathway, profile models.PersonalizationProfile) int

	// QueryPathways filters by category and search term, then ranks the
	// filtered subset by score, descending. Ties keep filter order.
	QueryPathways(ctx context.Context, query PathwayQuery) ([]ScoredPathway, error)

	// RecommendedCourses returns catalog courses matching the student's
	// stream and grade exactly, in catalog order, capped at 3.
	RecommendedCourses(ctx context.Context, student *models.StudentProfile) ([]models.Course, error)

	// Categories lists the pathway category tabs.
	Categories(ctx context.Context) ([]models.PathwayCategory, error)
}

// ===== SERVICE IMPLEMENTATION =====

type recommendationService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	threshold int
}

func NewRecommendationService(repo repositories.Repository, logger *slog.Logger) RecommendationService {
	return &recommendationService{
		repo:      repo,
		logger:    logger,
		threshold: RecommendationThreshold,
	}
}

func (s *recommendationService) Score(pathway models.CareerPathway, profile models.PersonalizationProfile) int {
	score := 0

	title := strings.ToLower(pathway.Title)
	description := strings.ToLower(pathway.Description)

	for _, interest := range profile.Interests {
		needle := strings.ToLower(strings.TrimSpace(interest))
		if needle == "" {
			continue
		}
		if strings.Contains(title, needle) || strings.Contains(description, needle) {
			score += 3
			break
		}
	}

	if education := strings.ToLower(strings.TrimSpace(profile.Education)); education != "" {
		if strings.Contains(strings.ToLower(pathway.Eligibility), education) {
			score += 2
		}
	}

	if pathway.Trending {
		score++
	}

	return score
}

func (s *recommendationService) QueryPathways(ctx context.Context, query PathwayQuery) ([]ScoredPathway, error) {
	pathways, err := s.repo.Pathways().ListByCategory(ctx, query.Category)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []ScoredPathway{}, nil
		}
		return nil, fmt.Errorf("list pathways: %w", err)
	}

	// Filtering precedes scoring: only the filtered subset is ranked.
	term := strings.ToLower(query.Search)
	filtered := make([]ScoredPathway, 0, len(pathways))
	for _, p := range pathways {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		score := s.Score(p, query.Profile)
		filtered = append(filtered, ScoredPathway{
			CareerPathway: p,
			Score:         score,
			Recommended:   score >= s.threshold,
		})
	}

	// Stable sort: ties retain the filter order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	return filtered, nil
}

func (s *recommendationService) Categories(ctx context.Context) ([]models.PathwayCategory, error) {
	categories, err := s.repo.Pathways().Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pathway categories: %w", err)
	}
	return categories, nil
}

func (s *recommendationService) RecommendedCourses(ctx context.Context, student *models.StudentProfile) ([]models.Course, error) {
	if student == nil {
		return []models.Course{}, nil
	}

	courses, err := s.repo.Courses().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	recommended := make([]models.Course, 0, maxCourseRecommendations)
	for _, course := range courses {
		if course.Stream != student.Stream || course.Grade != student.Grade {
			continue
		}
		recommended = append(recommended, course)
		if len(recommended) == maxCourseRecommendations {
			break
		}
	}
	return recommended, nil
}
