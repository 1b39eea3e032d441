// ABOUTME: CLI commands for viewing and changing coach configuration.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show or change settings stored in ~/.config/coach/config.json.

KEYS:

  api_url          Platform base URL (default http://localhost:5000)
  timeout_seconds  Per-request timeout (default 5)
  backend          Credential store: sqlite, badger, or charm
  data_dir         Where local stores live
  device_id        Generated once; sent as X-Device-ID

EXAMPLES:

  coach config show
  coach config set api_url https://training.example.com
  coach config set backend charm`,
	Annotations: map[string]string{noStore: "true"},
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print effective settings",
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		values := cfg.Values()
		for _, key := range cfg.SortedKeys() {
			v := values[key]
			if v == "" {
				v = faint.Sprint("(unset)")
			}
			fmt.Printf("%s %s\n", padRight(key, 16), v)
		}
		fmt.Println()
		fmt.Println(faint.Sprint(config.GetConfigPath()))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Change a setting",
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Set %s", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
