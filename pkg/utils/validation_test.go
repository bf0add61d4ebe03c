package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type usernameProbe struct {
	Username string `validate:"required,max=150,username"`
}

func TestUsernameValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantOK   bool
	}{
		{"plain", "alice", true},
		{"with allowed symbols", "a.b@c+d-e_f", true},
		{"digits", "user123", true},
		{"reserved me", "me", false},
		{"space", "a b", false},
		{"slash", "a/b", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(usernameProbe{Username: tt.username})
			if tt.wantOK {
				assert.Nil(t, errs)
			} else {
				assert.Contains(t, errs, "Username")
			}
		})
	}
}

func TestValidateStructMessages(t *testing.T) {
	type probe struct {
		Email string `validate:"required,email"`
	}

	errs := ValidateStruct(probe{})
	assert.Equal(t, "This field is required", errs["Email"])

	errs = ValidateStruct(probe{Email: "nope"})
	assert.Equal(t, "Invalid email format", errs["Email"])
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	assert.Equal(t, "Email: Invalid email format", out)

	assert.Empty(t, FormatValidationErrors(nil))
}
