// ABOUTME: Trainer profile model plus its sign-up and update payloads.
// ABOUTME: Sign-up accepts years of experience as raw text and validates it.
package models

import (
	"strconv"
	"strings"
)

// Trainer mirrors the remote trainer record.
type Trainer struct {
	ID              int64  `json:"id" yaml:"id"`
	Username        string `json:"username" yaml:"username"`
	Email           string `json:"email" yaml:"email"`
	Name            string `json:"name" yaml:"name"`
	YearsExperience int    `json:"years_experience" yaml:"years_experience"`
	Bio             string `json:"bio" yaml:"bio"`
}

// TrainerSignUp is the form a new trainer fills in. YearsExperience is kept
// as typed text until Payload parses it.
type TrainerSignUp struct {
	Username        string
	Email           string
	Password        string
	Name            string
	YearsExperience string
	Bio             string
}

// TrainerSignUpPayload is the body of POST /trainers.
type TrainerSignUpPayload struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	YearsExperience int    `json:"years_experience"`
	Bio             string `json:"bio,omitempty"`
}

// Payload validates the form and converts it into the request body.
func (s *TrainerSignUp) Payload() (*TrainerSignUpPayload, error) {
	if err := requireFields(map[string]string{
		"username": s.Username,
		"email":    s.Email,
		"password": s.Password,
		"name":     s.Name,
	}); err != nil {
		return nil, err
	}
	years, err := ParseYears(s.YearsExperience)
	if err != nil {
		return nil, err
	}
	return &TrainerSignUpPayload{
		Username:        s.Username,
		Email:           s.Email,
		Password:        s.Password,
		Name:            s.Name,
		YearsExperience: years,
		Bio:             s.Bio,
	}, nil
}

// ParseYears parses a years-of-experience value typed by a user.
func ParseYears(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &FieldError{Field: "years_experience", Reason: "is required"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FieldError{Field: "years_experience", Reason: "must be a whole number"}
	}
	if n < 0 {
		return 0, &FieldError{Field: "years_experience", Reason: "must not be negative"}
	}
	return n, nil
}

// TrainerUpdate is the body of PUT /trainers/{id}. Nil fields are not sent.
type TrainerUpdate struct {
	Username        *string `json:"username,omitempty"`
	Email           *string `json:"email,omitempty"`
	Name            *string `json:"name,omitempty"`
	YearsExperience *int    `json:"years_experience,omitempty"`
	Bio             *string `json:"bio,omitempty"`
}

// Filtered returns a copy with blank string fields dropped.
func (u TrainerUpdate) Filtered() TrainerUpdate {
	u.Username = nonBlank(u.Username)
	u.Email = nonBlank(u.Email)
	u.Name = nonBlank(u.Name)
	u.Bio = nonBlank(u.Bio)
	if u.YearsExperience != nil && *u.YearsExperience < 0 {
		u.YearsExperience = nil
	}
	return u
}

// IsEmpty reports whether the update would send no fields.
func (u TrainerUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Name == nil && u.YearsExperience == nil && u.Bio == nil
}

// Apply copies the set fields onto t.
func (u TrainerUpdate) Apply(t *Trainer) {
	if u.Username != nil {
		t.Username = *u.Username
	}
	if u.Email != nil {
		t.Email = *u.Email
	}
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.YearsExperience != nil {
		t.YearsExperience = *u.YearsExperience
	}
	if u.Bio != nil {
		t.Bio = *u.Bio
	}
}
