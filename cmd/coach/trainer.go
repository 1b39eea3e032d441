// ABOUTME: CLI commands for the trainer role.
// ABOUTME: Profile, paired athletes, and session assignment.
package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/service"
	"github.com/spf13/cobra"
)

var (
	trainerUpdateUsername string
	trainerUpdateEmail    string
	trainerUpdateName     string
	trainerUpdateYears    string
	trainerUpdateBio      string
)

var trainerCmd = &cobra.Command{
	Use:     "trainer",
	Aliases: []string{"t"},
	Short:   "Trainer profile and athletes",
	Long: `Commands for a logged-in trainer.

EXAMPLES:

  coach trainer show
  coach trainer update --bio "Twenty years on the court"
  coach trainer athletes
  coach trainer assign 3 4     # Give session 4 to athlete 3

See also 'coach drill' and 'coach session'.`,
}

var trainerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your trainer profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}
		res, err := svc.FetchTrainer(context.Background(), who)
		if err != nil {
			return err
		}
		t, ok := res.Get()
		if !ok {
			notLoggedInHint(models.RoleTrainer)
			return nil
		}
		printTrainer(t)
		return nil
	},
}

var trainerUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your trainer profile",
	Long: `Update profile fields. Only the flags you pass are sent; blank values
are ignored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}

		var upd models.TrainerUpdate
		flags := cmd.Flags()
		if flags.Changed("username") {
			upd.Username = &trainerUpdateUsername
		}
		if flags.Changed("email") {
			upd.Email = &trainerUpdateEmail
		}
		if flags.Changed("name") {
			upd.Name = &trainerUpdateName
		}
		if flags.Changed("years") {
			years, err := models.ParseYears(trainerUpdateYears)
			if err != nil {
				return fmt.Errorf("%w: %w", service.ErrInvalidInput, err)
			}
			upd.YearsExperience = &years
		}
		if flags.Changed("bio") {
			upd.Bio = &trainerUpdateBio
		}

		t, err := svc.UpdateTrainer(context.Background(), who, upd)
		if err != nil {
			return err
		}
		color.Green("✓ Profile updated")
		printTrainer(*t)
		return nil
	},
}

var trainerAthletesCmd = &cobra.Command{
	Use:   "athletes",
	Short: "List athletes paired with you",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}
		res, err := svc.FetchTrainerAthletes(context.Background(), who)
		if err != nil {
			return err
		}
		athletes, ok := res.Get()
		if !ok {
			notLoggedInHint(models.RoleTrainer)
			return nil
		}
		printAthletes(athletes)
		return nil
	},
}

var trainerAssignCmd = &cobra.Command{
	Use:   "assign <athlete-id> <session-id>",
	Short: "Assign one of your sessions to an athlete",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		athleteID, err := parseID(args[0], "athlete id")
		if err != nil {
			return err
		}
		sessionID, err := parseID(args[1], "session id")
		if err != nil {
			return err
		}
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}
		if _, err := svc.AssignSession(context.Background(), who, athleteID, sessionID); err != nil {
			return err
		}
		color.Green("✓ Assigned session #%d to athlete #%d", sessionID, athleteID)
		return nil
	},
}

func init() {
	f := trainerUpdateCmd.Flags()
	f.StringVar(&trainerUpdateUsername, "username", "", "new username")
	f.StringVar(&trainerUpdateEmail, "email", "", "new email")
	f.StringVar(&trainerUpdateName, "name", "", "new display name")
	f.StringVar(&trainerUpdateYears, "years", "", "years of coaching experience")
	f.StringVar(&trainerUpdateBio, "bio", "", "short bio")

	trainerCmd.AddCommand(trainerShowCmd)
	trainerCmd.AddCommand(trainerUpdateCmd)
	trainerCmd.AddCommand(trainerAthletesCmd)
	trainerCmd.AddCommand(trainerAssignCmd)
	rootCmd.AddCommand(trainerCmd)
}
