package auth

import (
	"fmt"
	"regexp"
	"time"
)

// Gender is the self-reported gender on a patient profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EmergencyContact is the nested contact record on a patient profile.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// User is the authenticated patient. Created at registration, mutated by
// profile edits, only ever cleared from the session client-side.
type User struct {
	ID                string           `json:"id"`
	Email             string           `json:"email"`
	FirstName         string           `json:"firstName"`
	LastName          string           `json:"lastName"`
	Phone             string           `json:"phone"`
	DateOfBirth       string           `json:"dateOfBirth"`
	Gender            Gender           `json:"gender"`
	Address           string           `json:"address"`
	EmergencyContact  EmergencyContact `json:"emergencyContact"`
	PreferredLanguage string           `json:"preferredLanguage"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// Session is the login/register response pair.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(c.Email) {
		return fmt.Errorf("email %q is not a valid address", c.Email)
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// Registration is the register payload: profile fields plus a password.
type Registration struct {
	Email             string            `json:"email"`
	Password          string            `json:"password"`
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	Phone             string            `json:"phone,omitempty"`
	DateOfBirth       string            `json:"dateOfBirth,omitempty"`
	Gender            Gender            `json:"gender,omitempty"`
	Address           string            `json:"address,omitempty"`
	EmergencyContact  *EmergencyContact `json:"emergencyContact,omitempty"`
	PreferredLanguage string            `json:"preferredLanguage,omitempty"`
}

func (r Registration) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("email %q is not a valid address", r.Email)
	}
	if r.FirstName == "" {
		return fmt.Errorf("first name is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("last name is required")
	}
	if len(r.Password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// ProfilePatch is a partial profile update; nil fields are left unchanged.
type ProfilePatch struct {
	FirstName         *string           `json:"firstName,omitempty"`
	LastName          *string           `json:"lastName,omitempty"`
	Phone             *string           `json:"phone,omitempty"`
	DateOfBirth       *string           `json:"dateOfBirth,omitempty"`
	Gender            *Gender           `json:"gender,omitempty"`
	Address           *string           `json:"address,omitempty"`
	EmergencyContact  *EmergencyContact `json:"emergencyContact,omitempty"`
	PreferredLanguage *string           `json:"preferredLanguage,omitempty"`
}
