package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shareprompts/internal/errors"
)

// User represents an account provisioned by the identity provider or by
// seeding. Email is the only store-enforced unique field; username
// uniqueness is a documented convention, not a constraint.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username  string    `json:"username" gorm:"size:20;not null"`
	Image     string    `json:"image,omitempty" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the id and validates the username so both the API and
// the seeding path go through the same checks.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return ValidateUsername(u.Username)
}

var usernameChars = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)

// ValidateUsername enforces the username rule: 8-20 characters drawn from
// letters, digits, '.' and '_', with no leading, trailing or consecutive
// separators.
func ValidateUsername(username string) error {
	if len(username) < 8 || len(username) > 20 {
		return errors.ErrInvalidUsername
	}
	if !usernameChars.MatchString(username) {
		return errors.ErrInvalidUsername
	}
	if isSeparator(username[0]) || isSeparator(username[len(username)-1]) {
		return errors.ErrInvalidUsername
	}
	for _, pair := range []string{"..", "__", "._", "_."} {
		if strings.Contains(username, pair) {
			return errors.ErrInvalidUsername
		}
	}
	return nil
}

func isSeparator(c byte) bool {
	return c == '.' || c == '_'
}
