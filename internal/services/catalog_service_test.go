package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-buddy/student-support-service/internal/models"
)

func TestListCoursesFacets(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), testLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		query   CourseQuery
		wantIDs []string
	}{
		{
			name:    "no filters returns everything",
			query:   CourseQuery{},
			wantIDs: []string{"math-12", "physics-12", "biology-10", "accounts-11", "english-8", "nursery-basics"},
		},
		{
			name:    "all disables the facet",
			query:   CourseQuery{Stream: "all", Grade: "all"},
			wantIDs: []string{"math-12", "physics-12", "biology-10", "accounts-11", "english-8", "nursery-basics"},
		},
		{
			name:    "stream facet",
			query:   CourseQuery{Stream: "PCM"},
			wantIDs: []string{"math-12", "physics-12"},
		},
		{
			name:    "grade facet",
			query:   CourseQuery{Grade: "10th"},
			wantIDs: []string{"biology-10"},
		},
		{
			name:    "search matches title",
			query:   CourseQuery{Search: "physics"},
			wantIDs: []string{"physics-12"},
		},
		{
			name:    "search matches description",
			query:   CourseQuery{Search: "genetics"},
			wantIDs: []string{"biology-10"},
		},
		{
			name:    "combined facets and search",
			query:   CourseQuery{Stream: "PCM", Grade: "12th", Search: "mathematics"},
			wantIDs: []string{"math-12"},
		},
		{
			name:    "no match",
			query:   CourseQuery{Search: "astrophysics"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := svc.ListCourses(ctx, tt.query, nil)
			require.NoError(t, err)

			ids := make([]string, 0, len(views))
			for _, v := range views {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCourseLocking(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), testLogger())
	ctx := context.Background()

	premium := &models.Account{ID: "2", Role: models.RoleStudent, IsPremium: true,
		Student: &models.StudentProfile{}}
	free := &models.Account{ID: "1", Role: models.RoleStudent, IsPremium: false,
		Student: &models.StudentProfile{}}

	tests := []struct {
		name       string
		courseID   string
		viewer     *models.Account
		wantLocked bool
	}{
		{"premium course, no session", "math-12", nil, true},
		{"premium course, free viewer", "math-12", free, true},
		{"premium course, premium viewer", "math-12", premium, false},
		{"free course, no session", "biology-10", nil, false},
		{"free course, free viewer", "biology-10", free, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := svc.GetCourse(ctx, tt.courseID, tt.viewer)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLocked, view.Locked)
		})
	}
}

func TestGetCourseNotFound(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), testLogger())

	_, err := svc.GetCourse(context.Background(), "no-such-course", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
