// ABOUTME: Excel workbook export of a trainer roster.
// ABOUTME: One sheet each for athletes, sessions, and drills.
package storage

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetAthletes = "Athletes"
	sheetSessions = "Sessions"
	sheetDrills   = "Drills"
)

// ExportXLSX writes the roster as an .xlsx workbook to w.
func ExportXLSX(r *Roster, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetAthletes); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{sheetSessions, sheetDrills} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	athleteRows := [][]any{{"ID", "Username", "Name", "Email", "Age", "Level"}}
	for _, a := range r.Athletes {
		athleteRows = append(athleteRows, []any{a.ID, a.Username, a.Name, a.Email, a.Age, a.Level})
	}

	sessionRows := [][]any{{"ID", "Name", "Length (min)", "Level", "Drill IDs"}}
	for _, s := range r.Sessions {
		ids := ""
		for i, d := range s.Drills {
			if i > 0 {
				ids += ","
			}
			ids += fmt.Sprint(d.ID)
		}
		sessionRows = append(sessionRows, []any{s.ID, s.Name, s.Length, s.Level, ids})
	}

	drillRows := [][]any{{"ID", "Type", "Level", "Description"}}
	for _, d := range r.Drills {
		drillRows = append(drillRows, []any{d.ID, d.DrillType, d.Level, d.Description})
	}

	for sheet, rows := range map[string][][]any{
		sheetAthletes: athleteRows,
		sheetSessions: sessionRows,
		sheetDrills:   drillRows,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
