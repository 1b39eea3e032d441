// ABOUTME: Markdown table export of a trainer roster.
// ABOUTME: Optionally restricted to a single training level.
package storage

import (
	"fmt"
	"strings"
	"time"
)

// ExportMarkdown renders the roster as Markdown tables. An empty level
// includes everything.
func ExportMarkdown(r *Roster, level string) string {
	var sb strings.Builder

	title := "Roster"
	if r.Trainer != nil {
		title = r.Trainer.Name
	}
	sb.WriteString(fmt.Sprintf("# %s - %s\n\n", title, r.ExportedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.ExportedAt.Format(time.RFC3339)))

	sb.WriteString("## Athletes\n\n")
	sb.WriteString("| ID | Name | Age | Level | Email |\n")
	sb.WriteString("|----|------|-----|-------|-------|\n")
	for _, a := range r.Athletes {
		if !levelMatches(a.Level, level) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %d | %s | %s |\n",
			a.ID, cell(a.Name), a.Age, cell(a.Level), cell(a.Email)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Sessions\n\n")
	sb.WriteString("| ID | Name | Length | Level | Drills |\n")
	sb.WriteString("|----|------|--------|-------|--------|\n")
	for _, s := range r.Sessions {
		if !levelMatches(s.Level, level) {
			continue
		}
		names := make([]string, 0, len(s.Drills))
		for _, d := range s.Drills {
			names = append(names, d.DrillType)
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %d min | %s | %s |\n",
			s.ID, cell(s.Name), s.Length, cell(s.Level), cell(strings.Join(names, ", "))))
	}
	sb.WriteString("\n")

	sb.WriteString("## Drills\n\n")
	sb.WriteString("| ID | Type | Level | Description |\n")
	sb.WriteString("|----|------|-------|-------------|\n")
	for _, d := range r.Drills {
		if !levelMatches(d.Level, level) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n",
			d.ID, cell(d.DrillType), cell(d.Level), cell(d.Description)))
	}

	return sb.String()
}

func levelMatches(have, want string) bool {
	return want == "" || strings.EqualFold(have, want)
}

// cell escapes pipes and newlines so values stay inside their column.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
