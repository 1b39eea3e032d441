// ABOUTME: CLI commands for logging in, logging out, and signing up.
// ABOUTME: Both roles log in independently; each keeps its own token.
package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var (
	loginPassword string

	signupUsername string
	signupEmail    string
	signupPassword string
	signupName     string
	signupAge      int
	signupLevel    string
	signupYears    string
	signupBio      string
)

var loginCmd = &cobra.Command{
	Use:   "login <athlete|trainer> <username>",
	Short: "Log in as an athlete or trainer",
	Long: `Log in and store the session token locally.

The password is prompted for, without echo, unless --password is given.

EXAMPLES:

  coach login athlete ada
  coach login trainer coachk -p hunter2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := models.ParseRole(args[0])
		if err != nil {
			return err
		}

		password := loginPassword
		if password == "" {
			password, err = promptPassword("Password: ")
			if err != nil {
				return err
			}
		}

		name, err := svc.Login(context.Background(), role, models.Credentials{
			Username: args[1],
			Password: password,
		})
		if err != nil {
			return err
		}

		color.Green("✓ Logged in as %s (%s)", name, role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout [athlete|trainer]",
	Short: "Forget the stored login",
	Long: `Remove the stored token and user id.

With no argument both roles are logged out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roles := models.AllRoles
		if len(args) == 1 {
			role, err := models.ParseRole(args[0])
			if err != nil {
				return err
			}
			roles = []models.Role{role}
		}

		for _, role := range roles {
			if err := svc.Logout(role); err != nil {
				return err
			}
			color.Green("✓ Logged out %s", role)
		}
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show stored logins",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, role := range models.AllRoles {
			who, err := loadIdentity(role)
			if err != nil {
				return err
			}
			if who.Valid() {
				fmt.Printf("%s %s\n", padRight(string(role), 8), color.GreenString("#%d", who.UserID))
			} else {
				fmt.Printf("%s %s\n", padRight(string(role), 8), faint.Sprint("not logged in"))
			}
		}
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new athlete or trainer account",
	Long: `Create a new account. If the server returns a token you are logged in
right away; otherwise run 'coach login' next.

EXAMPLES:

  coach signup athlete --username ada --email ada@example.com \
    --password pw --name "Ada L" --age 28 --level beginner

  coach signup trainer --username coachk --email k@example.com \
    --password pw --name "Coach K" --years 12 --bio "Footwork nerd"`,
}

var signupAthleteCmd = &cobra.Command{
	Use:   "athlete",
	Short: "Sign up as an athlete",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := svc.SignUpAthlete(context.Background(), models.AthleteSignUp{
			Username: signupUsername,
			Email:    signupEmail,
			Password: signupPassword,
			Name:     signupName,
			Age:      signupAge,
			Level:    signupLevel,
		})
		if err != nil {
			return err
		}

		color.Green("✓ Created athlete %s", a.Username)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprintf("#%d", a.ID), a.Name)
		printLoginState(models.RoleAthlete)
		return nil
	},
}

var signupTrainerCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Sign up as a trainer",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := svc.SignUpTrainer(context.Background(), models.TrainerSignUp{
			Username:        signupUsername,
			Email:           signupEmail,
			Password:        signupPassword,
			Name:            signupName,
			YearsExperience: signupYears,
			Bio:             signupBio,
		})
		if err != nil {
			return err
		}

		color.Green("✓ Created trainer %s", t.Username)
		fmt.Printf("  %s %s, %s years\n", color.New(color.Faint).Sprintf("#%d", t.ID), t.Name, strconv.Itoa(t.YearsExperience))
		printLoginState(models.RoleTrainer)
		return nil
	},
}

func printLoginState(role models.Role) {
	who, err := loadIdentity(role)
	if err == nil && who.Valid() {
		fmt.Println("  Logged in.")
		return
	}
	fmt.Printf("  Run 'coach login %s <username>' to log in.\n", role)
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted if omitted)")

	for _, c := range []*cobra.Command{signupAthleteCmd, signupTrainerCmd} {
		c.Flags().StringVar(&signupUsername, "username", "", "login name")
		c.Flags().StringVar(&signupEmail, "email", "", "email address")
		c.Flags().StringVar(&signupPassword, "password", "", "password")
		c.Flags().StringVar(&signupName, "name", "", "display name")
	}
	signupAthleteCmd.Flags().IntVar(&signupAge, "age", 0, "age in years")
	signupAthleteCmd.Flags().StringVar(&signupLevel, "level", "", "skill level (beginner, intermediate, advanced)")
	signupTrainerCmd.Flags().StringVar(&signupYears, "years", "", "years of coaching experience")
	signupTrainerCmd.Flags().StringVar(&signupBio, "bio", "", "short bio")

	signupCmd.AddCommand(signupAthleteCmd)
	signupCmd.AddCommand(signupTrainerCmd)

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(signupCmd)
}
