package models

import "time"

// Course is a static catalog entry. Seeded at startup, never mutated.
type Course struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Stream           Stream    `json:"stream"`
	Grade            string    `json:"grade"`
	Subject          string    `json:"subject"`
	TeacherID        string    `json:"teacher_id"`
	TeacherName      string    `json:"teacher_name"`
	Duration         string    `json:"duration"`
	EnrolledStudents int       `json:"enrolled_students"`
	Rating           float64   `json:"rating"`
	IsPremium        bool      `json:"is_premium"`
	Price            int       `json:"price"`
	CreatedAt        time.Time `json:"created_at"`
}

type PathwayCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CareerPathway is a static catalog entry describing a career track.
type CareerPathway struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Duration     string   `json:"duration"`
	Difficulty   string   `json:"difficulty"`
	Salary       string   `json:"salary"`
	Eligibility  string   `json:"eligibility"`
	Steps        []string `json:"steps"`
	Scholarships string   `json:"scholarships"`
	Locations    []string `json:"locations"`
	Trending     bool     `json:"trending"`
}
