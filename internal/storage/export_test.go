// ABOUTME: Tests for roster export formats.
// ABOUTME: Covers JSON, YAML, Markdown, and XLSX rendering.
package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/coach/internal/models"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func sampleRoster() *Roster {
	r := NewRoster(&models.Trainer{ID: 1, Name: "Kim Lee", YearsExperience: 8})
	sprint := models.Drill{ID: 10, DrillType: "sprint", Description: "4x100m | flying", Level: "advanced", TrainerID: 1}
	ladder := models.Drill{ID: 11, DrillType: "ladder", Description: "footwork", Level: "beginner", TrainerID: 1}
	r.Drills = []models.Drill{sprint, ladder}
	r.Sessions = []models.Session{
		{ID: 20, Name: "Speed day", Length: 60, Level: "advanced", TrainerID: 1, Drills: []models.Drill{sprint}},
		{ID: 21, Name: "Intro", Length: 45, Level: "beginner", TrainerID: 1, Drills: []models.Drill{ladder}},
	}
	r.Athletes = []models.Athlete{
		{ID: 30, Name: "Sam", Age: 16, Level: "advanced", Email: "sam@x.io"},
		{ID: 31, Name: "Ari", Age: 14, Level: "beginner", Email: "ari@x.io"},
	}
	return r
}

func TestExportJSON(t *testing.T) {
	data, err := ExportJSON(sampleRoster())
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var got Roster
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Tool != "coach" || got.Trainer.Name != "Kim Lee" {
		t.Errorf("unexpected header: %+v", got)
	}
	if len(got.Sessions) != 2 || len(got.Sessions[0].Drills) != 1 {
		t.Errorf("sessions not exported with drills: %+v", got.Sessions)
	}
}

func TestExportYAMLGroupsSessionsByName(t *testing.T) {
	data, err := ExportYAML(sampleRoster())
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	sessions, ok := got["sessions"].(map[string]any)
	if !ok {
		t.Fatalf("sessions not a map: %T", got["sessions"])
	}
	speed, ok := sessions["Speed day"].(map[string]any)
	if !ok {
		t.Fatalf("missing Speed day session: %v", sessions)
	}
	if speed["length"] != "60 min" {
		t.Errorf("length = %v, want 60 min", speed["length"])
	}
}

func TestExportMarkdown(t *testing.T) {
	md := ExportMarkdown(sampleRoster(), "")

	for _, want := range []string{"# Kim Lee", "## Athletes", "## Sessions", "## Drills", "| 20 | Speed day | 60 min | advanced | sprint |"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if !strings.Contains(md, `4x100m \| flying`) {
		t.Error("expected pipe in description to be escaped")
	}
}

func TestExportMarkdownLevelFilter(t *testing.T) {
	md := ExportMarkdown(sampleRoster(), "Beginner")

	if strings.Contains(md, "Speed day") || strings.Contains(md, "| 30 | Sam") {
		t.Error("advanced rows should be filtered out")
	}
	if !strings.Contains(md, "Intro") || !strings.Contains(md, "| 31 | Ari") {
		t.Error("beginner rows should be kept")
	}
}

func TestExportXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportXLSX(sampleRoster(), &buf); err != nil {
		t.Fatalf("ExportXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 || sheets[0] != sheetAthletes {
		t.Fatalf("sheets = %v", sheets)
	}

	v, err := f.GetCellValue(sheetDrills, "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if v != "sprint" {
		t.Errorf("Drills!B2 = %q, want sprint", v)
	}

	rows, err := f.GetRows(sheetAthletes)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("athlete rows = %d, want 3 (header + 2)", len(rows))
	}
}
