package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffirmationCycling(t *testing.T) {
	svc := NewWellnessService(newTestRepo(t), testLogger())
	ctx := context.Background()

	// Six affirmations; the seventh call wraps back to the first.
	for i := 0; i < 7; i++ {
		a, err := svc.NextAffirmation(ctx, "hi")
		require.NoError(t, err)
		assert.Equal(t, i%6, a.Index)
		assert.Equal(t, a.Hindi, a.Text)
	}
}

func TestAffirmationLanguageFallback(t *testing.T) {
	svc := NewWellnessService(newTestRepo(t), testLogger())
	ctx := context.Background()

	english, err := svc.NextAffirmation(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, english.English, english.Text)

	// Unknown language codes fall back to English.
	unknown, err := svc.NextAffirmation(ctx, "fr")
	require.NoError(t, err)
	assert.Equal(t, unknown.English, unknown.Text)
}

func TestRecordMood(t *testing.T) {
	svc := NewWellnessService(newTestRepo(t), testLogger()).(*wellnessService)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	entry, err := svc.RecordMood(ctx, 4, "good study session")
	require.NoError(t, err)
	assert.Equal(t, 4, entry.Mood)
	assert.Equal(t, fixed, entry.Date)

	history, err := svc.MoodHistory(ctx)
	require.NoError(t, err)
	// Three seeded entries plus the new one, newest first.
	require.Len(t, history, 4)
	assert.Equal(t, fixed, history[0].Date)
	assert.Equal(t, "good study session", history[0].Note)
}

func TestRecordMoodOutOfRange(t *testing.T) {
	svc := NewWellnessService(newTestRepo(t), testLogger())
	ctx := context.Background()

	for _, mood := range []int{0, -1, 6} {
		_, err := svc.RecordMood(ctx, mood, "")
		assert.ErrorIs(t, err, ErrValidationFailed, "mood %d", mood)
	}
}

func TestWellnessStaticContent(t *testing.T) {
	svc := NewWellnessService(newTestRepo(t), testLogger())
	ctx := context.Background()

	tools, err := svc.Tools(ctx)
	require.NoError(t, err)
	assert.Len(t, tools, 4)

	resources, err := svc.CrisisResources(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 4)
	assert.Equal(t, "iCall Helpline", resources[0].Name)

	exercise, err := svc.BreathingExercise(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, exercise.InhaleSeconds)
	assert.Equal(t, 7, exercise.HoldSeconds)
	assert.Equal(t, 8, exercise.ExhaleSeconds)
	assert.Equal(t, 300, exercise.DefaultSeconds)
}
