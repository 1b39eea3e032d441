// ABOUTME: Hidden command serving the in-memory platform API for local testing.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/fakeapi"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var (
	fakeAddr string
	fakeSeed bool
)

var fakeapiCmd = &cobra.Command{
	Use:    "fakeapi",
	Short:  "Serve an in-memory platform API",
	Hidden: true,
	Long: `Serve an in-memory implementation of the platform API. State is lost on
exit. With --seed, a demo trainer (coachk/pw) and athlete (ada/pw) exist.

EXAMPLES:

  coach fakeapi --seed &
  COACH_API_URL=http://localhost:5000 coach login trainer coachk -p pw`,
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fake := fakeapi.New()
		if fakeSeed {
			seedDemo(fake)
		}

		srv := &http.Server{
			Addr:              fakeAddr,
			Handler:           fake.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		color.Green("✓ Fake API listening on %s", fakeAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("fake API stopped", "requests", fake.RequestCount())
		return nil
	},
}

func seedDemo(fake *fakeapi.Server) {
	trainerID := fake.SeedTrainer(models.Trainer{
		Username:        "coachk",
		Email:           "coachk@example.com",
		Name:            "Coach K",
		YearsExperience: 12,
		Bio:             "Footwork first.",
	}, "pw")
	athleteID := fake.SeedAthlete(models.Athlete{
		Username:  "ada",
		Email:     "ada@example.com",
		Name:      "Ada",
		Age:       28,
		Level:     "beginner",
		TrainerID: &trainerID,
	}, "pw")

	ladder := fake.SeedDrill(models.Drill{DrillType: "Ladder", Description: "Two feet in each box", Level: "beginner", TrainerID: trainerID})
	cones := fake.SeedDrill(models.Drill{DrillType: "Cone weave", Description: "Cut around five cones", Level: "beginner", TrainerID: trainerID})
	sess := fake.SeedSession(models.Session{Name: "Agility basics", Length: 30, Level: "beginner", TrainerID: trainerID}, ladder, cones)
	fake.Assign(athleteID, sess)
}

func init() {
	fakeapiCmd.Flags().StringVar(&fakeAddr, "addr", ":5000", "listen address")
	fakeapiCmd.Flags().BoolVar(&fakeSeed, "seed", false, "create a demo trainer, athlete, and session")
	rootCmd.AddCommand(fakeapiCmd)
}
