package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLoginRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		request    LoginRequest
		wantFields []string
	}{
		{
			name:    "valid",
			request: LoginRequest{Email: "student1@demo.com", Password: "student123"},
		},
		{
			name:       "missing email",
			request:    LoginRequest{Password: "student123"},
			wantFields: []string{"email"},
		},
		{
			name:       "malformed email",
			request:    LoginRequest{Email: "not-an-email", Password: "student123"},
			wantFields: []string{"email"},
		},
		{
			name:       "password too short",
			request:    LoginRequest{Email: "student1@demo.com", Password: "abc"},
			wantFields: []string{"password"},
		},
		{
			name:       "everything missing",
			request:    LoginRequest{},
			wantFields: []string{"email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(tt.request)
			if len(tt.wantFields) == 0 {
				assert.False(t, errs.HasErrors())
				return
			}

			require.True(t, errs.HasErrors())
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidatePathwayQueryRequest(t *testing.T) {
	v := New()

	valid := PathwayQueryRequest{Category: "government", Search: "banking"}
	assert.False(t, v.Validate(valid).HasErrors())

	missing := PathwayQueryRequest{}
	assert.True(t, v.Validate(missing).HasErrors())

	unknown := PathwayQueryRequest{Category: "astrology"}
	errs := v.Validate(unknown)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "oneof", errs[0].Rule)
}

func TestValidateMoodEntryRequest(t *testing.T) {
	v := New()

	assert.False(t, v.Validate(MoodEntryRequest{Mood: 3}).HasErrors())
	assert.True(t, v.Validate(MoodEntryRequest{Mood: 6}).HasErrors())
	// required rejects the zero value, so mood 0 fails too.
	assert.True(t, v.Validate(MoodEntryRequest{Mood: 0}).HasErrors())
}

func TestValidationErrorsMessage(t *testing.T) {
	v := New()

	errs := v.Validate(LoginRequest{Email: "bad"})
	require.True(t, errs.HasErrors())
	assert.Contains(t, errs.Error(), "email: must be a valid email address")
	assert.Contains(t, errs.Error(), "password: is required")
}
