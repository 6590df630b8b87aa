package validator

// LoginRequest carries demo credentials. Failures surface as a generic
// "invalid credentials" message regardless of which field was wrong.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// ChatMessageRequest is a message sent to the AI companion.
type ChatMessageRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=2000"`
	Language string `json:"language" validate:"omitempty,oneof=en hi bn ta te"`
}

// MoodEntryRequest records a mood journal entry (1 = very sad, 5 = very happy).
type MoodEntryRequest struct {
	Mood int    `json:"mood" validate:"required,min=1,max=5"`
	Note string `json:"note" validate:"omitempty,max=500"`
}

// PathwayQueryRequest filters and personalizes the career pathway listing.
type PathwayQueryRequest struct {
	Category  string   `json:"category" validate:"required,oneof=government technical healthcare education"`
	Search    string   `json:"search" validate:"omitempty,max=100"`
	Location  string   `json:"location" validate:"omitempty,max=100"`
	Education string   `json:"education" validate:"omitempty,max=200"`
	Interests []string `json:"interests" validate:"omitempty,dive,max=50"`
}

// CourseQueryRequest filters the course catalog. "all" disables a facet.
type CourseQueryRequest struct {
	Stream string `json:"stream" validate:"omitempty,oneof=all PCM PCB Commerce Arts Nursery Primary Middle"`
	Grade  string `json:"grade" validate:"omitempty,max=20"`
	Search string `json:"search" validate:"omitempty,max=100"`
}
