// ABOUTME: Root Cobra command for coach CLI.
// ABOUTME: Loads config and opens the credential store via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/coach/internal/api"
	"github.com/harperreed/coach/internal/config"
	"github.com/harperreed/coach/internal/service"
	"github.com/harperreed/coach/internal/storage"
	"github.com/spf13/cobra"
)

// Commands annotated with noStore run without opening the credential store.
const noStore = "coach/no-store"

var (
	cfg     *config.Config
	store   storage.Store
	svc     *service.Service
	logger  *log.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "Athlete and trainer client for the training platform",
	Long: `Coach is a CLI client for the athlete/trainer training platform.

ROLES:

  athlete   Follows sessions assigned by a trainer and marks them complete
  trainer   Builds drills, groups them into sessions, and assigns sessions

QUICK START:

  $ coach login athlete ada             # Log in (prompts for password)
  $ coach athlete show                  # Your profile
  $ coach athlete sessions --watch      # Open sessions, refreshed live
  $ coach athlete complete 12           # Mark session 12 done

TRAINERS:

  $ coach login trainer coachk
  $ coach drill add --type ladder --description "Quick feet" --level beginner
  $ coach session create --name Agility --length 30 --level beginner
  $ coach session add-drill 4 7         # Append drill 7 to session 4
  $ coach trainer assign 3 4            # Give session 4 to athlete 3
  $ coach export markdown               # Whole roster as tables

CONFIGURATION:

  $ coach config show
  $ coach config set api_url https://training.example.com

  COACH_API_URL and COACH_BACKEND override the config file.

MCP INTEGRATION:

  Run 'coach mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Only login tokens and user ids are kept locally, in SQLite at
  ~/.local/share/coach/coach.db by default. Use 'backend: charm' to sync
  logins across devices.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Skip store init for commands that don't need it
		if cmd.Name() == "help" || cmd.Annotations[noStore] != "" {
			return nil
		}

		if cfg.EnsureDeviceID() {
			if err := cfg.Save(); err != nil {
				logger.Warn("could not persist device id", "err", err)
			}
		}

		if store != nil {
			_ = store.Close()
		}
		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open %s store: %w", cfg.GetBackend(), err)
		}

		opts := cfg.ClientOptions()
		opts.Logger = logger
		client := api.New(opts)
		svc = service.New(client, store, logger)
		logger.Debug("ready", "api", client.BaseURL(), "backend", cfg.GetBackend())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			err := store.Close()
			store = nil
			svc = nil
			return err
		}
		return nil
	},
}

func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "coach",
		Level:  log.WarnLevel,
	})
	if verbose || os.Getenv("COACH_DEBUG") != "" {
		l.SetLevel(log.DebugLevel)
		l.SetReportTimestamp(true)
	}
	return l
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests and storage activity to stderr")
}
