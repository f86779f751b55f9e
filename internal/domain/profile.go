package domain

import (
	"strings"
	"time"
)

// IncomeBrackets are the only accepted values for Profile.IncomeBracket.
var IncomeBrackets = []string{
	"0-30k", "30k-50k", "50k-75k", "75k-100k", "100k-150k", "150k-200k", "200k+",
}

// GenderIdentities are the only accepted values for Profile.GenderIdentity.
var GenderIdentities = []string{
	"male", "female", "non-binary", "genderqueer", "agender", "other",
}

// Profile is a presentable entity that spectators swipe on. A profile may
// exist without an owner (seeded demo data); owned profiles cascade away
// with their user.
type Profile struct {
	ID             int       `json:"id" db:"id"`
	UserID         *int      `json:"user_id" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Age            int       `json:"age" db:"age"`
	Description    *string   `json:"description" db:"description"`
	Height         *int      `json:"height" db:"height"`
	IncomeBracket  *string   `json:"income_bracket" db:"income_bracket"`
	GenderIdentity *string   `json:"gender_identity" db:"gender_identity"`
	Active         bool      `json:"active" db:"active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// OwnedBy reports whether the profile belongs to the given user.
func (p *Profile) OwnedBy(userID int) bool {
	return p.UserID != nil && *p.UserID == userID
}

// Validate checks field constraints before persisting.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "can't be blank")
	}
	if p.Age < 18 || p.Age > 99 {
		return NewValidationError("age", "must be between 18 and 99")
	}
	if p.Description != nil && len(*p.Description) > 500 {
		return NewValidationError("description", "is too long (maximum is 500 characters)")
	}
	if p.Height != nil && (*p.Height < 1 || *p.Height > 299) {
		return NewValidationError("height", "must be between 1 and 299")
	}
	if p.IncomeBracket != nil && !contains(IncomeBrackets, *p.IncomeBracket) {
		return NewValidationError("income_bracket", "is not included in the list")
	}
	if p.GenderIdentity != nil && !contains(GenderIdentities, *p.GenderIdentity) {
		return NewValidationError("gender_identity", "is not included in the list")
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// ProfileImage is one attached image, ordered by zero-based position.
type ProfileImage struct {
	ID          int       `json:"id" db:"id"`
	ProfileID   int       `json:"profile_id" db:"profile_id"`
	Position    int       `json:"position" db:"position"`
	Filename    string    `json:"filename" db:"filename"`
	ContentType string    `json:"content_type" db:"content_type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
