package repositories

import (
	"context"
	"errors"

	"github.com/ai-buddy/student-support-service/internal/models"
)

// ErrNotFound is returned by exact-match lookups that miss.
var ErrNotFound = errors.New("repository: not found")

// UserDirectory is the fixed credential directory. Read-only: the premium
// flag and last-login mutate only on the session's copy, never here.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.CredentialEntry, error)
}

// CourseCatalog serves the static course seed list.
type CourseCatalog interface {
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
}

// PathwayCatalog serves the static career pathway seed list.
type PathwayCatalog interface {
	Categories(ctx context.Context) ([]models.PathwayCategory, error)
	ListByCategory(ctx context.Context, category string) ([]models.CareerPathway, error)
}

// WellnessContent serves the static wellness toolkit content.
type WellnessContent interface {
	Tools(ctx context.Context) ([]models.WellnessTool, error)
	Affirmations(ctx context.Context) ([]models.Affirmation, error)
	CrisisResources(ctx context.Context) ([]models.CrisisResource, error)
	BreathingExercise(ctx context.Context) (models.BreathingExercise, error)
}

// Repository aggregates all content repositories.
type Repository interface {
	Directory() UserDirectory
	Courses() CourseCatalog
	Pathways() PathwayCatalog
	Wellness() WellnessContent

	Ping(ctx context.Context) error
	Close() error
}
