package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shareprompts/internal/errors"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"valid with underscore and digits", "valid_user123", true},
		{"valid with dot", "maya.okafor", true},
		{"minimum length", "abcd1234", true},
		{"maximum length", "a2345678901234567890", true},
		{"too short", "ab", false},
		{"seven characters", "abcdefg", false},
		{"too long", "a23456789012345678901", false},
		{"leading dot", ".leading1", false},
		{"leading underscore", "_leading1", false},
		{"trailing dot", "trailing1.", false},
		{"trailing underscore", "trailing1_", false},
		{"consecutive dots", "user..name", false},
		{"consecutive underscores", "user__name", false},
		{"mixed separators", "user._name", false},
		{"illegal character", "user name123", false},
		{"illegal symbol", "user-name123", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errors.ErrInvalidUsername)
			}
		})
	}
}
