package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ai-buddy/student-support-service/internal/models"
	"github.com/ai-buddy/student-support-service/internal/repositories"
)

// ===== RESPONSE DTOs =====

type AffirmationResponse struct {
	Text    string `json:"text"`
	Hindi   string `json:"hi"`
	English string `json:"en"`
	Index   int    `json:"index"`
}

// ===== SERVICE INTERFACE =====

type WellnessService interface {
	Tools(ctx context.Context) ([]models.WellnessTool, error)
	CrisisResources(ctx context.Context) ([]models.CrisisResource, error)
	BreathingExercise(ctx context.Context) (models.BreathingExercise, error)

	// NextAffirmation cycles through the fixed list, rendering the text in
	// the requested language with English fallback.
	NextAffirmation(ctx context.Context, language string) (*AffirmationResponse, error)

	// RecordMood appends a journal entry (mood 1..5).
	RecordMood(ctx context.Context, mood int, note string) (*models.MoodEntry, error)

	// MoodHistory lists entries, newest first.
	MoodHistory(ctx context.Context) ([]models.MoodEntry, error)
}

// ===== SERVICE IMPLEMENTATION =====

type wellnessService struct {
	repo   repositories.Repository
	logger *slog.Logger
	now    func() time.Time

	mu          sync.Mutex
	affirmIndex int
	moods       []models.MoodEntry
}

func NewWellnessService(repo repositories.Repository, logger *slog.Logger) WellnessService {
	return &wellnessService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		moods:  seedMoodHistory(),
	}
}

// The demo journal starts with a little history, like the original client.
func seedMoodHistory() []models.MoodEntry {
	return []models.MoodEntry{
		{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Mood: 4, Note: "Feeling good about studies"},
		{Date: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), Mood: 3, Note: "Stressed about exams"},
		{Date: time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), Mood: 5, Note: "Great day with friends"},
	}
}

func (s *wellnessService) Tools(ctx context.Context) ([]models.WellnessTool, error) {
	return s.repo.Wellness().Tools(ctx)
}

func (s *wellnessService) CrisisResources(ctx context.Context) ([]models.CrisisResource, error) {
	return s.repo.Wellness().CrisisResources(ctx)
}

func (s *wellnessService) BreathingExercise(ctx context.Context) (models.BreathingExercise, error) {
	return s.repo.Wellness().BreathingExercise(ctx)
}

func (s *wellnessService) NextAffirmation(ctx context.Context, language string) (*AffirmationResponse, error) {
	affirmations, err := s.repo.Wellness().Affirmations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load affirmations: %w", err)
	}
	if len(affirmations) == 0 {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	index := s.affirmIndex % len(affirmations)
	s.affirmIndex = (index + 1) % len(affirmations)
	s.mu.Unlock()

	a := affirmations[index]
	return &AffirmationResponse{
		Text:    a.Text(language),
		Hindi:   a.Hindi,
		English: a.English,
		Index:   index,
	}, nil
}

func (s *wellnessService) RecordMood(ctx context.Context, mood int, note string) (*models.MoodEntry, error) {
	if mood < 1 || mood > 5 {
		return nil, fmt.Errorf("%w: mood must be between 1 and 5", ErrValidationFailed)
	}

	entry := models.MoodEntry{
		Date: s.now(),
		Mood: mood,
		Note: note,
	}

	s.mu.Lock()
	// Newest first, like the journal view renders it.
	s.moods = append([]models.MoodEntry{entry}, s.moods...)
	s.mu.Unlock()

	return &entry, nil
}

func (s *wellnessService) MoodHistory(ctx context.Context) ([]models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MoodEntry(nil), s.moods...), nil
}
