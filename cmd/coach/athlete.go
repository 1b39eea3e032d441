// ABOUTME: CLI commands for the athlete role.
// ABOUTME: Profile, assigned sessions, completion, and trainer pairing.
package main

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/service"
	"github.com/spf13/cobra"
)

var (
	athleteUpdateUsername string
	athleteUpdateEmail    string
	athleteUpdateName     string
	athleteUpdateAge      int
	athleteUpdateLevel    string

	athleteWatch    bool
	athleteInterval time.Duration
)

var athleteCmd = &cobra.Command{
	Use:     "athlete",
	Aliases: []string{"a"},
	Short:   "Athlete profile and sessions",
	Long: `Commands for a logged-in athlete.

EXAMPLES:

  coach athlete show                    # Profile
  coach athlete update --level advanced # Change only the level
  coach athlete sessions                # Open sessions with their drills
  coach athlete sessions --watch        # Refresh every 10s until Ctrl-C
  coach athlete complete 12             # Mark session 12 done
  coach athlete trainers                # Pick a trainer
  coach athlete assign-trainer 2        # Pair with trainer 2`,
}

var athleteShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your athlete profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := loadIdentity(models.RoleAthlete)
		if err != nil {
			return err
		}
		res, err := svc.FetchAthlete(context.Background(), who)
		if err != nil {
			return err
		}
		a, ok := res.Get()
		if !ok {
			notLoggedInHint(models.RoleAthlete)
			return nil
		}
		printAthlete(a)
		return nil
	},
}

var athleteUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your athlete profile",
	Long: `Update profile fields. Only the flags you pass are sent; blank values
are ignored.

EXAMPLES:

  coach athlete update --name "Ada Lovelace"
  coach athlete update --age 29 --level intermediate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := loadIdentity(models.RoleAthlete)
		if err != nil {
			return err
		}

		var upd models.AthleteUpdate
		flags := cmd.Flags()
		if flags.Changed("username") {
			upd.Username = &athleteUpdateUsername
		}
		if flags.Changed("email") {
			upd.Email = &athleteUpdateEmail
		}
		if flags.Changed("name") {
			upd.Name = &athleteUpdateName
		}
		if flags.Changed("age") {
			upd.Age = &athleteUpdateAge
		}
		if flags.Changed("level") {
			upd.Level = &athleteUpdateLevel
		}

		a, err := svc.UpdateAthlete(context.Background(), who, upd)
		if err != nil {
			return err
		}
		color.Green("✓ Profile updated")
		printAthlete(*a)
		return nil
	},
}

var athleteSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List your open sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := loadIdentity(models.RoleAthlete)
		if err != nil {
			return err
		}

		fetch := func(ctx context.Context) (service.Optional[[]models.Session], error) {
			return svc.FetchAthleteSessions(ctx, who)
		}
		render := func(res service.Optional[[]models.Session]) {
			if !res.OK() {
				notLoggedInHint(models.RoleAthlete)
				return
			}
			printSessions(res.OrZero())
		}

		if athleteWatch {
			return watch(athleteInterval, fetch, render)
		}
		res, err := fetch(context.Background())
		if err != nil {
			return err
		}
		render(res)
		return nil
	},
}

var athleteCompleteCmd = &cobra.Command{
	Use:   "complete <session-id>",
	Short: "Mark an assigned session as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := parseID(args[0], "session id")
		if err != nil {
			return err
		}
		who, err := loadIdentity(models.RoleAthlete)
		if err != nil {
			return err
		}
		if err := svc.CompleteAthleteSession(context.Background(), who, sessionID); err != nil {
			return err
		}
		color.Green("✓ Completed session #%d", sessionID)
		return nil
	},
}

var athleteTrainersCmd = &cobra.Command{
	Use:   "trainers",
	Short: "List trainers you can pair with",
	RunE: func(cmd *cobra.Command, args []string) error {
		trainers, err := svc.ListTrainers(context.Background())
		if err != nil {
			return err
		}
		printTrainers(trainers)
		return nil
	},
}

var athleteAssignTrainerCmd = &cobra.Command{
	Use:   "assign-trainer <trainer-id>",
	Short: "Pair with a trainer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trainerID, err := parseID(args[0], "trainer id")
		if err != nil {
			return err
		}
		who, err := loadIdentity(models.RoleAthlete)
		if err != nil {
			return err
		}
		if _, err := svc.AssignTrainer(context.Background(), who, trainerID); err != nil {
			return err
		}
		color.Green("✓ Paired with trainer #%d", trainerID)
		return nil
	},
}

func init() {
	f := athleteUpdateCmd.Flags()
	f.StringVar(&athleteUpdateUsername, "username", "", "new username")
	f.StringVar(&athleteUpdateEmail, "email", "", "new email")
	f.StringVar(&athleteUpdateName, "name", "", "new display name")
	f.IntVar(&athleteUpdateAge, "age", 0, "new age")
	f.StringVar(&athleteUpdateLevel, "level", "", "new skill level")

	athleteSessionsCmd.Flags().BoolVarP(&athleteWatch, "watch", "w", false, "refresh until interrupted")
	athleteSessionsCmd.Flags().DurationVar(&athleteInterval, "interval", 10*time.Second, "refresh interval for --watch")

	athleteCmd.AddCommand(athleteShowCmd)
	athleteCmd.AddCommand(athleteUpdateCmd)
	athleteCmd.AddCommand(athleteSessionsCmd)
	athleteCmd.AddCommand(athleteCompleteCmd)
	athleteCmd.AddCommand(athleteTrainersCmd)
	athleteCmd.AddCommand(athleteAssignTrainerCmd)
	rootCmd.AddCommand(athleteCmd)
}
