// ABOUTME: CLI commands for training sessions and their ordered drills.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/service"
	"github.com/harperreed/coach/internal/session"
	"github.com/spf13/cobra"
)

var (
	sessionName   string
	sessionLength int
	sessionLevel  string

	sessionWatch    bool
	sessionInterval time.Duration
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"sess"},
	Short:   "Manage training sessions",
	Long: `Create and organize training sessions. A session is an ordered list of
drills; drills are appended in the order you add them.

EXAMPLES:

  coach session list
  coach session create --name Agility --length 30 --level beginner
  coach session add-drill 4 7     # Append drill 7 to session 4
  coach session drills 4          # Show drills in order
  coach session delete 4`,
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}

		fetch := func(ctx context.Context) (service.Optional[[]models.Session], error) {
			return svc.FetchTrainerSessions(ctx, who)
		}
		render := func(res service.Optional[[]models.Session]) {
			if !res.OK() {
				notLoggedInHint(models.RoleTrainer)
				return
			}
			printSessions(res.OrZero())
		}

		if sessionWatch {
			return watch(sessionInterval, fetch, render)
		}
		res, err := fetch(context.Background())
		if err != nil {
			return err
		}
		render(res)
		return nil
	},
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}
		s, err := svc.CreateSession(context.Background(), who, models.NewSession{
			Name:   sessionName,
			Length: sessionLength,
			Level:  sessionLevel,
		})
		if err != nil {
			return err
		}
		color.Green("✓ Created session %s", s.Name)
		fmt.Printf("  %s %d min, %s\n", color.New(color.Faint).Sprintf("#%d", s.ID), s.Length, s.Level)
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <session-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := parseID(args[0], "session id")
		if err != nil {
			return err
		}
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}
		if err := svc.DeleteSession(context.Background(), who, sessionID); err != nil {
			return err
		}
		color.Green("✓ Deleted session #%d", sessionID)
		return nil
	},
}

var sessionDrillsCmd = &cobra.Command{
	Use:   "drills <session-id>",
	Short: "List the drills in a session, in order",
	Long: `List a session's drills in order. Works for trainers and for athletes
the session is assigned to.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := parseID(args[0], "session id")
		if err != nil {
			return err
		}
		who, err := anyIdentity()
		if err != nil {
			return err
		}
		res, err := svc.FetchSessionDrills(context.Background(), who, sessionID)
		if err != nil {
			return err
		}
		drills, ok := res.Get()
		if !ok {
			if !who.Valid() {
				notLoggedInHint(models.RoleTrainer)
			} else {
				color.Yellow("⚠ Session #%d not found", sessionID)
			}
			return nil
		}
		printDrills(drills)
		return nil
	},
}

var sessionAddDrillCmd = &cobra.Command{
	Use:   "add-drill <session-id> <drill-id>",
	Short: "Append a drill to a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := parseID(args[0], "session id")
		if err != nil {
			return err
		}
		drillID, err := parseID(args[1], "drill id")
		if err != nil {
			return err
		}
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}
		if err := svc.AddDrillToSession(context.Background(), who, sessionID, drillID); err != nil {
			return err
		}
		color.Green("✓ Added drill #%d to session #%d", drillID, sessionID)
		return nil
	},
}

// anyIdentity prefers the trainer login and falls back to the athlete one.
func anyIdentity() (session.Identity, error) {
	who, err := loadIdentity(models.RoleTrainer)
	if err != nil || who.Valid() {
		return who, err
	}
	return loadIdentity(models.RoleAthlete)
}

func init() {
	sessionCreateCmd.Flags().StringVarP(&sessionName, "name", "n", "", "session name")
	sessionCreateCmd.Flags().IntVar(&sessionLength, "length", 0, "length in minutes")
	sessionCreateCmd.Flags().StringVarP(&sessionLevel, "level", "l", "", "skill level")

	sessionListCmd.Flags().BoolVarP(&sessionWatch, "watch", "w", false, "refresh until interrupted")
	sessionListCmd.Flags().DurationVar(&sessionInterval, "interval", 10*time.Second, "refresh interval for --watch")

	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionCreateCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	sessionCmd.AddCommand(sessionDrillsCmd)
	sessionCmd.AddCommand(sessionAddDrillCmd)
	rootCmd.AddCommand(sessionCmd)
}
