// ABOUTME: Training session, drill, and athlete-session join models.
// ABOUTME: Sessions are owned by a trainer and hold an ordered list of drills.
package models

import "strings"

// Drill is a reusable exercise owned by a trainer.
type Drill struct {
	ID          int64  `json:"id" yaml:"id"`
	DrillType   string `json:"drill_type" yaml:"drill_type"`
	Description string `json:"description" yaml:"description"`
	Level       string `json:"level" yaml:"level"`
	TrainerID   int64  `json:"trainer_id" yaml:"trainer_id"`
}

// Session is a scheduled training session.
type Session struct {
	ID        int64   `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Length    int     `json:"length" yaml:"length"`
	Level     string  `json:"level" yaml:"level"`
	TrainerID int64   `json:"trainer_id" yaml:"trainer_id"`
	Drills    []Drill `json:"drills,omitempty" yaml:"drills,omitempty"`
}

// AthleteSession links an athlete to an assigned session.
type AthleteSession struct {
	AthleteID int64 `json:"athlete_id"`
	SessionID int64 `json:"session_id"`
	Completed bool  `json:"completed"`
}

// NewDrill is the body of POST /drills.
type NewDrill struct {
	DrillType   string `json:"drill_type"`
	Description string `json:"description"`
	Level       string `json:"level"`
	TrainerID   int64  `json:"trainer_id"`
}

// Validate checks required drill fields.
func (d *NewDrill) Validate() error {
	return requireFields(map[string]string{
		"drill_type":  d.DrillType,
		"description": d.Description,
		"level":       d.Level,
	})
}

// NewSession is the body of POST /sessions.
type NewSession struct {
	Name      string `json:"name"`
	Length    int    `json:"length"`
	Level     string `json:"level"`
	TrainerID int64  `json:"trainer_id"`
}

// Validate checks required session fields.
func (s *NewSession) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return &FieldError{Field: "name", Reason: "is required"}
	}
	if s.Length <= 0 {
		return &FieldError{Field: "length", Reason: "must be a positive number of minutes"}
	}
	return requireFields(map[string]string{"level": s.Level})
}
