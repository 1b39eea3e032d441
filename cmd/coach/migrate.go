// ABOUTME: CLI command for moving stored logins between backends.
// ABOUTME: Copies tokens and user ids, e.g. from SQLite to Charm before enabling sync.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/config"
	"github.com/harperreed/coach/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy stored logins to another backend",
	Long: `Copy stored login tokens and user ids from one credential backend to
another.

BACKENDS:

  sqlite   ~/.local/share/coach/coach.db (default)
  badger   ~/.local/share/coach/badger/
  charm    Charm KV, synced across your devices

IMPORTANT:

  - --from defaults to the configured backend
  - Existing logins in the destination are overwritten role by role
  - Nothing is deleted from the source
  - Run with --dry-run first to see what would be copied

USAGE:

  coach migrate --to charm --dry-run   # Preview
  coach migrate --to charm             # Copy
  coach config set backend charm       # Then switch over`,
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		from := migrateFrom
		if from == "" {
			from = cfg.GetBackend()
		}
		if migrateTo == "" {
			return fmt.Errorf("--to is required")
		}
		if from == migrateTo {
			return fmt.Errorf("source and destination are both %q", from)
		}

		src, err := config.OpenBackend(from, cfg.GetDataDir())
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", from, err)
		}
		defer src.Close()

		var dst storage.Store
		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()
			dst = storage.NewMemoryStore()
		} else {
			dst, err = config.OpenBackend(migrateTo, cfg.GetDataDir())
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", migrateTo, err)
			}
		}
		defer dst.Close()

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		if summary.Keys == 0 {
			fmt.Printf("No stored logins found in %s.\n", from)
			return nil
		}

		verb := "Copied"
		if migrateDryRun {
			verb = "Would copy"
		}
		color.Green("✓ %s %d keys from %s to %s", verb, summary.Keys, from, migrateTo)
		for _, role := range summary.Roles {
			fmt.Printf("  %s\n", role)
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source backend (default: configured backend)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
