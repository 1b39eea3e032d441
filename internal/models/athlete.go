// ABOUTME: Athlete profile model plus its sign-up and update payloads.
// ABOUTME: Updates only carry the fields the user actually changed.
package models

import (
	"fmt"
	"strings"
)

// Athlete mirrors the remote athlete record.
type Athlete struct {
	ID        int64  `json:"id" yaml:"id"`
	Username  string `json:"username" yaml:"username"`
	Email     string `json:"email" yaml:"email"`
	Name      string `json:"name" yaml:"name"`
	Age       int    `json:"age" yaml:"age"`
	Level     string `json:"level" yaml:"level"`
	TrainerID *int64 `json:"trainer_id,omitempty" yaml:"trainer_id,omitempty"`
}

// HasTrainer reports whether a trainer is assigned.
func (a *Athlete) HasTrainer() bool {
	return a.TrainerID != nil && *a.TrainerID != 0
}

// AthleteSignUp is the body of POST /athletes.
type AthleteSignUp struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Level    string `json:"level"`
}

// Validate checks required fields before anything is sent.
func (s *AthleteSignUp) Validate() error {
	if err := requireFields(map[string]string{
		"username": s.Username,
		"email":    s.Email,
		"password": s.Password,
		"name":     s.Name,
	}); err != nil {
		return err
	}
	if s.Age < 0 {
		return &FieldError{Field: "age", Reason: "must not be negative"}
	}
	return nil
}

// AthleteUpdate is the body of PUT /athletes/{id}. Nil fields are not sent.
type AthleteUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Level    *string `json:"level,omitempty"`
}

// Filtered returns a copy with blank string fields dropped.
func (u AthleteUpdate) Filtered() AthleteUpdate {
	u.Username = nonBlank(u.Username)
	u.Email = nonBlank(u.Email)
	u.Name = nonBlank(u.Name)
	u.Level = nonBlank(u.Level)
	if u.Age != nil && *u.Age <= 0 {
		u.Age = nil
	}
	return u
}

// IsEmpty reports whether the update would send no fields.
func (u AthleteUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Name == nil && u.Age == nil && u.Level == nil
}

// Apply copies the set fields onto a.
func (u AthleteUpdate) Apply(a *Athlete) {
	if u.Username != nil {
		a.Username = *u.Username
	}
	if u.Email != nil {
		a.Email = *u.Email
	}
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Age != nil {
		a.Age = *u.Age
	}
	if u.Level != nil {
		a.Level = *u.Level
	}
}

// FieldError reports a single invalid input field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func requireFields(fields map[string]string) error {
	// Stable order so the first missing field reported is predictable.
	for _, name := range []string{"username", "email", "password", "name", "drill_type", "description", "level"} {
		v, ok := fields[name]
		if ok && strings.TrimSpace(v) == "" {
			return &FieldError{Field: name, Reason: "is required"}
		}
	}
	return nil
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
