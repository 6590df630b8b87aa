package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountValidate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr bool
	}{
		{
			name: "valid student",
			account: Account{
				ID: "1", Role: RoleStudent,
				Student: &StudentProfile{Grade: "12th"},
			},
		},
		{
			name: "valid teacher",
			account: Account{
				ID: "2", Role: RoleTeacher,
				Teacher: &TeacherProfile{Experience: 10},
			},
		},
		{
			name:    "student without variant",
			account: Account{ID: "3", Role: RoleStudent},
			wantErr: true,
		},
		{
			name: "student with teacher variant",
			account: Account{
				ID: "4", Role: RoleStudent,
				Teacher: &TeacherProfile{},
			},
			wantErr: true,
		},
		{
			name: "both variants set",
			account: Account{
				ID: "5", Role: RoleTeacher,
				Student: &StudentProfile{},
				Teacher: &TeacherProfile{},
			},
			wantErr: true,
		},
		{
			name: "unknown role",
			account: Account{
				ID: "6", Role: "admin",
				Student: &StudentProfile{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountNarrowing(t *testing.T) {
	student := Account{Role: RoleStudent, Student: &StudentProfile{Grade: "10th"}}
	teacher := Account{Role: RoleTeacher, Teacher: &TeacherProfile{Experience: 5}}

	profile, ok := student.AsStudent()
	require.True(t, ok)
	assert.Equal(t, "10th", profile.Grade)

	_, ok = student.AsTeacher()
	assert.False(t, ok)

	tp, ok := teacher.AsTeacher()
	require.True(t, ok)
	assert.Equal(t, 5, tp.Experience)

	_, ok = teacher.AsStudent()
	assert.False(t, ok)

	// Role tag wins over a stray variant pointer.
	mismatched := Account{Role: RoleStudent, Teacher: &TeacherProfile{}}
	_, ok = mismatched.AsStudent()
	assert.False(t, ok)
	_, ok = mismatched.AsTeacher()
	assert.False(t, ok)
}

func TestAccountClone(t *testing.T) {
	original := &Account{
		ID:   "1",
		Name: "Rahul Kumar",
		Role: RoleStudent,
		Student: &StudentProfile{
			Grade:           "12th",
			EnrolledCourses: []string{"math-12"},
			Progress:        []CourseProgress{{CourseID: "math-12", CompletedLessons: 3}},
		},
	}

	clone := original.Clone()
	clone.Name = "mutated"
	clone.Student.Grade = "11th"
	clone.Student.EnrolledCourses[0] = "mutated"
	clone.Student.Progress[0].CompletedLessons = 99

	assert.Equal(t, "Rahul Kumar", original.Name)
	assert.Equal(t, "12th", original.Student.Grade)
	assert.Equal(t, "math-12", original.Student.EnrolledCourses[0])
	assert.Equal(t, 3, original.Student.Progress[0].CompletedLessons)

	var nilAccount *Account
	assert.Nil(t, nilAccount.Clone())
}

func TestProfileForAccount(t *testing.T) {
	student := &Account{
		Name: "Rahul Kumar",
		Role: RoleStudent,
		Student: &StudentProfile{
			Grade:  "12th",
			Stream: StreamPCM,
		},
	}
	p := ProfileForAccount(student)
	assert.Equal(t, "Rahul Kumar", p.Name)
	assert.Equal(t, "12th", p.Education)
	assert.Equal(t, []string{"PCM"}, p.Interests)

	teacher := &Account{
		Name: "Dr. Sunita Verma",
		Role: RoleTeacher,
		Teacher: &TeacherProfile{
			Qualification: "M.Sc. Physics, B.Ed",
			Subjects:      []string{"Mathematics", "Physics"},
		},
	}
	p = ProfileForAccount(teacher)
	assert.Equal(t, "M.Sc. Physics, B.Ed", p.Education)
	assert.Equal(t, []string{"Mathematics", "Physics"}, p.Interests)

	assert.Equal(t, PersonalizationProfile{}, ProfileForAccount(nil))
}
