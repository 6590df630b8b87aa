package models

import "time"

// WellnessTool describes one of the static toolkit entries.
type WellnessTool struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Affirmation is a bilingual positive statement. English is the fallback
// when the requested language has no translation.
type Affirmation struct {
	Hindi   string `json:"hi"`
	English string `json:"en"`
}

// Text returns the affirmation in the requested language code.
func (a Affirmation) Text(lang string) string {
	if lang == "hi" && a.Hindi != "" {
		return a.Hindi
	}
	return a.English
}

type CrisisResource struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Hours  string `json:"hours"`
}

// BreathingExercise is the static 4-7-8 exercise configuration.
type BreathingExercise struct {
	InhaleSeconds  int `json:"inhale_seconds"`
	HoldSeconds    int `json:"hold_seconds"`
	ExhaleSeconds  int `json:"exhale_seconds"`
	DefaultSeconds int `json:"default_seconds"`
}

type MoodEntry struct {
	Date time.Time `json:"date"`
	Mood int       `json:"mood"`
	Note string    `json:"note"`
}
