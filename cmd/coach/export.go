// ABOUTME: CLI command for exporting a trainer's roster.
// ABOUTME: Supports JSON, YAML, Markdown, and XLSX export formats.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportLevel  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export your roster",
	Long: `Export the logged-in trainer's roster: profile, athletes, sessions, and
drills.

FORMATS:

  json       Full JSON export
  yaml       YAML export, sessions keyed by name
  markdown   Markdown tables (for documentation/sharing)
  xlsx       Excel workbook with one sheet per entity (requires --output)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --level        Only include rows at this level (markdown only)

EXAMPLES:

  coach export json                        # Export everything as JSON
  coach export json -o roster.json         # Save to file
  coach export yaml                        # Export as YAML
  coach export markdown --level beginner   # Beginner rows as Markdown
  coach export xlsx -o roster.xlsx         # Spreadsheet for the club office`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: storage.Formats,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		if !isFormat(format) {
			return fmt.Errorf("unknown format: %s (use %s)", format, strings.Join(storage.Formats, ", "))
		}
		if format == "xlsx" && exportOutput == "" {
			return fmt.Errorf("xlsx export needs --output")
		}

		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}
		roster, err := svc.Roster(context.Background(), who)
		if err != nil {
			return err
		}

		var data []byte
		switch format {
		case "json":
			data, err = storage.ExportJSON(roster)
		case "yaml":
			data, err = storage.ExportYAML(roster)
		case "markdown":
			data = []byte(storage.ExportMarkdown(roster, exportLevel))
		case "xlsx":
			var buf bytes.Buffer
			err = storage.ExportXLSX(roster, &buf)
			data = buf.Bytes()
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

func isFormat(f string) bool {
	for _, v := range storage.Formats {
		if v == f {
			return true
		}
	}
	return false
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportLevel, "level", "", "filter rows by level (markdown only)")

	rootCmd.AddCommand(exportCmd)
}
