package models

import (
	"fmt"
	"time"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
)

type Stream string

const (
	StreamPCM      Stream = "PCM"
	StreamPCB      Stream = "PCB"
	StreamCommerce Stream = "Commerce"
	StreamArts     Stream = "Arts"
	StreamNursery  Stream = "Nursery"
	StreamPrimary  Stream = "Primary"
	StreamMiddle   Stream = "Middle"
)

// CourseProgress tracks completion of a single enrolled course.
type CourseProgress struct {
	CourseID         string    `json:"course_id"`
	CompletedLessons int       `json:"completed_lessons"`
	TotalLessons     int       `json:"total_lessons"`
	LastAccessed     time.Time `json:"last_accessed"`
}

type StudentProfile struct {
	Grade           string           `json:"grade"`
	Stream          Stream           `json:"stream"`
	SchoolName      string           `json:"school_name"`
	GuardianContact string           `json:"guardian_contact"`
	EnrolledCourses []string         `json:"enrolled_courses"`
	Progress        []CourseProgress `json:"progress"`
}

type TeacherProfile struct {
	Subjects       []string `json:"subjects"`
	Qualification  string   `json:"qualification"`
	Experience     int      `json:"experience"`
	SchoolName     string   `json:"school_name"`
	CreatedCourses []string `json:"created_courses"`
	StudentsCount  int      `json:"students_count"`
}

// Account is a tagged union over the two role variants. Role determines which
// of Student/Teacher is populated; exactly one must be set. Use AsStudent or
// AsTeacher to narrow before touching variant fields.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	IsPremium bool      `json:"is_premium"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`

	Student *StudentProfile `json:"student,omitempty"`
	Teacher *TeacherProfile `json:"teacher,omitempty"`
}

// AsStudent narrows the account to its student variant.
func (a *Account) AsStudent() (*StudentProfile, bool) {
	if a.Role != RoleStudent || a.Student == nil {
		return nil, false
	}
	return a.Student, true
}

// AsTeacher narrows the account to its teacher variant.
func (a *Account) AsTeacher() (*TeacherProfile, bool) {
	if a.Role != RoleTeacher || a.Teacher == nil {
		return nil, false
	}
	return a.Teacher, true
}

// Validate enforces the role/variant invariant. The directory seed is fixed
// and trusted, so a violation here is a programming error, not user input.
func (a *Account) Validate() error {
	switch a.Role {
	case RoleStudent:
		if a.Student == nil || a.Teacher != nil {
			return fmt.Errorf("account %s: role %q requires exactly the student variant", a.ID, a.Role)
		}
	case RoleTeacher:
		if a.Teacher == nil || a.Student != nil {
			return fmt.Errorf("account %s: role %q requires exactly the teacher variant", a.ID, a.Role)
		}
	default:
		return fmt.Errorf("account %s: unknown role %q", a.ID, a.Role)
	}
	return nil
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing store-owned state.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	cp := *a
	if a.Student != nil {
		sp := *a.Student
		sp.EnrolledCourses = append([]string(nil), a.Student.EnrolledCourses...)
		sp.Progress = append([]CourseProgress(nil), a.Student.Progress...)
		cp.Student = &sp
	}
	if a.Teacher != nil {
		tp := *a.Teacher
		tp.Subjects = append([]string(nil), a.Teacher.Subjects...)
		tp.CreatedCourses = append([]string(nil), a.Teacher.CreatedCourses...)
		cp.Teacher = &tp
	}
	return &cp
}

// CredentialEntry pairs a directory account with its demo secret. Email is
// the unique lookup key. Secrets are plaintext by design in this demo; a
// production build must salt-hash and compare in constant time.
type CredentialEntry struct {
	Email   string
	Secret  string
	Account Account
}
