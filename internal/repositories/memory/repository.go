package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/ai-buddy/student-support-service/internal/models"
	"github.com/ai-buddy/student-support-service/internal/repositories"
)

// Repository is the in-memory implementation backed by the compiled-in seed
// data. All content is immutable after construction, so lookups need no
// locking.
type Repository struct {
	directory *userDirectory
	courses   *courseCatalog
	pathways  *pathwayCatalog
	wellness  *wellnessContent
}

// NewRepository builds the seeded repository. It fails if the seed violates
// the account role/variant invariant; the seed is trusted, so this guards
// against programming errors only.
func NewRepository() (*Repository, error) {
	entries := seedCredentials()
	byEmail := make(map[string]*models.CredentialEntry, len(entries))
	for i := range entries {
		e := &entries[i]
		if err := e.Account.Validate(); err != nil {
			return nil, fmt.Errorf("invalid directory seed: %w", err)
		}
		if _, dup := byEmail[e.Email]; dup {
			return nil, fmt.Errorf("invalid directory seed: duplicate email %s", e.Email)
		}
		byEmail[e.Email] = e
	}

	courses := seedCourses()
	courseByID := make(map[string]*models.Course, len(courses))
	for i := range courses {
		courseByID[courses[i].ID] = &courses[i]
	}

	return &Repository{
		directory: &userDirectory{byEmail: byEmail},
		courses:   &courseCatalog{all: courses, byID: courseByID},
		pathways:  &pathwayCatalog{categories: seedPathwayCategories(), byCategory: seedPathways()},
		wellness: &wellnessContent{
			tools:        seedWellnessTools(),
			affirmations: seedAffirmations(),
			crisis:       seedCrisisResources(),
		},
	}, nil
}

func (r *Repository) Directory() repositories.UserDirectory  { return r.directory }
func (r *Repository) Courses() repositories.CourseCatalog    { return r.courses }
func (r *Repository) Pathways() repositories.PathwayCatalog  { return r.pathways }
func (r *Repository) Wellness() repositories.WellnessContent { return r.wellness }

func (r *Repository) Ping(ctx context.Context) error { return nil }
func (r *Repository) Close() error                   { return nil }

// ===== USER DIRECTORY =====

type userDirectory struct {
	byEmail map[string]*models.CredentialEntry
}

func (d *userDirectory) FindByEmail(ctx context.Context, email string) (*models.CredentialEntry, error) {
	entry, ok := d.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	// Copy so callers cannot reach the directory's account.
	cp := *entry
	cp.Account = *entry.Account.Clone()
	return &cp, nil
}

// ===== COURSE CATALOG =====

type courseCatalog struct {
	all  []models.Course
	byID map[string]*models.Course
}

func (c *courseCatalog) List(ctx context.Context) ([]models.Course, error) {
	return append([]models.Course(nil), c.all...), nil
}

func (c *courseCatalog) GetByID(ctx context.Context, id string) (*models.Course, error) {
	course, ok := c.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *course
	return &cp, nil
}

// ===== PATHWAY CATALOG =====

type pathwayCatalog struct {
	categories []models.PathwayCategory
	byCategory map[string][]models.CareerPathway
}

func (p *pathwayCatalog) Categories(ctx context.Context) ([]models.PathwayCategory, error) {
	return append([]models.PathwayCategory(nil), p.categories...), nil
}

func (p *pathwayCatalog) ListByCategory(ctx context.Context, category string) ([]models.CareerPathway, error) {
	pathways, ok := p.byCategory[strings.ToLower(category)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return append([]models.CareerPathway(nil), pathways...), nil
}

// ===== WELLNESS CONTENT =====

type wellnessContent struct {
	tools        []models.WellnessTool
	affirmations []models.Affirmation
	crisis       []models.CrisisResource
}

func (w *wellnessContent) Tools(ctx context.Context) ([]models.WellnessTool, error) {
	return append([]models.WellnessTool(nil), w.tools...), nil
}

func (w *wellnessContent) Affirmations(ctx context.Context) ([]models.Affirmation, error) {
	return append([]models.Affirmation(nil), w.affirmations...), nil
}

func (w *wellnessContent) CrisisResources(ctx context.Context) ([]models.CrisisResource, error) {
	return append([]models.CrisisResource(nil), w.crisis...), nil
}

func (w *wellnessContent) BreathingExercise(ctx context.Context) (models.BreathingExercise, error) {
	return models.BreathingExercise{
		InhaleSeconds:  4,
		HoldSeconds:    7,
		ExhaleSeconds:  8,
		DefaultSeconds: 300,
	}, nil
}
