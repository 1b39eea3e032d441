// ABOUTME: CLI commands for managing a trainer's drills.
package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var (
	drillType        string
	drillDescription string
	drillLevel       string
)

var drillCmd = &cobra.Command{
	Use:     "drill",
	Aliases: []string{"d"},
	Short:   "Manage your drills",
	Long: `Create, list, and delete drills. Drills belong to the logged-in trainer
and can be added to any of their sessions.

EXAMPLES:

  coach drill list
  coach drill add --type ladder --description "Quick feet" --level beginner
  coach drill delete 7`,
}

var drillListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your drills",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}
		res, err := svc.FetchTrainerDrills(context.Background(), who)
		if err != nil {
			return err
		}
		drills, ok := res.Get()
		if !ok {
			notLoggedInHint(models.RoleTrainer)
			return nil
		}
		printDrills(drills)
		return nil
	},
}

var drillAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a drill",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}
		d, err := svc.CreateDrill(context.Background(), who, models.NewDrill{
			DrillType:   drillType,
			Description: drillDescription,
			Level:       drillLevel,
		})
		if err != nil {
			return err
		}
		color.Green("✓ Created drill %s", d.DrillType)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprintf("#%d", d.ID), d.Level)
		return nil
	},
}

var drillDeleteCmd = &cobra.Command{
	Use:     "delete <drill-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a drill",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drillID, err := parseID(args[0], "drill id")
		if err != nil {
			return err
		}
		who, err := loadIdentity(models.RoleTrainer)
		if err != nil {
			return err
		}
		if err := svc.DeleteDrill(context.Background(), who, drillID); err != nil {
			return err
		}
		color.Green("✓ Deleted drill #%d", drillID)
		return nil
	},
}

func init() {
	drillAddCmd.Flags().StringVarP(&drillType, "type", "t", "", "drill type or name")
	drillAddCmd.Flags().StringVarP(&drillDescription, "description", "d", "", "what the athlete does")
	drillAddCmd.Flags().StringVarP(&drillLevel, "level", "l", "", "skill level")

	drillCmd.AddCommand(drillListCmd)
	drillCmd.AddCommand(drillAddCmd)
	drillCmd.AddCommand(drillDeleteCmd)
	rootCmd.AddCommand(drillCmd)
}
