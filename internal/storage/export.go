// ABOUTME: Roster snapshot and its JSON and YAML export formats.
// ABOUTME: Snapshots are rendered on demand and never written to the credential store.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/coach/internal/models"
	"gopkg.in/yaml.v3"
)

// Roster is everything a trainer sees about their own program.
type Roster struct {
	Version    string           `json:"version" yaml:"version"`
	ExportedAt time.Time        `json:"exported_at" yaml:"exported_at"`
	Tool       string           `json:"tool" yaml:"tool"`
	Trainer    *models.Trainer  `json:"trainer" yaml:"trainer"`
	Athletes   []models.Athlete `json:"athletes" yaml:"athletes"`
	Sessions   []models.Session `json:"sessions" yaml:"sessions"`
	Drills     []models.Drill   `json:"drills" yaml:"drills"`
}

// NewRoster stamps a roster with export metadata.
func NewRoster(t *models.Trainer) *Roster {
	return &Roster{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "coach",
		Trainer:    t,
	}
}

// Formats lists the supported export formats.
var Formats = []string{"json", "yaml", "markdown", "xlsx"}

// ExportJSON exports the roster as indented JSON.
func ExportJSON(r *Roster) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ExportYAML exports the roster as YAML with drills nested by session name.
func ExportYAML(r *Roster) ([]byte, error) {
	yamlData := struct {
		Version    string                 `yaml:"version"`
		ExportedAt string                 `yaml:"exported_at"`
		Tool       string                 `yaml:"tool"`
		Trainer    *models.Trainer        `yaml:"trainer"`
		Athletes   []models.Athlete       `yaml:"athletes"`
		Sessions   map[string]yamlSession `yaml:"sessions"`
		Drills     []models.Drill         `yaml:"drills"`
	}{
		Version:    r.Version,
		ExportedAt: r.ExportedAt.Format(time.RFC3339),
		Tool:       r.Tool,
		Trainer:    r.Trainer,
		Athletes:   r.Athletes,
		Sessions:   make(map[string]yamlSession, len(r.Sessions)),
		Drills:     r.Drills,
	}

	for _, s := range r.Sessions {
		ys := yamlSession{
			ID:     s.ID,
			Length: fmt.Sprintf("%d min", s.Length),
			Level:  s.Level,
		}
		for _, d := range s.Drills {
			ys.Drills = append(ys.Drills, d.DrillType)
		}
		yamlData.Sessions[s.Name] = ys
	}

	return yaml.Marshal(yamlData)
}

type yamlSession struct {
	ID     int64    `yaml:"id"`
	Length string   `yaml:"length"`
	Level  string   `yaml:"level"`
	Drills []string `yaml:"drills,omitempty"`
}
