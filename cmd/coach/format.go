// ABOUTME: Shared CLI helpers for identities, prompts, and table output.
// ABOUTME: Keeps the per-resource command files focused on one API area.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/api"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/service"
	"github.com/harperreed/coach/internal/session"
	"github.com/harperreed/coach/internal/view"
	"golang.org/x/term"
)

// loadIdentity returns the stored identity for role. A missing login is not
// an error here; the service decides what an anonymous identity means.
func loadIdentity(role models.Role) (session.Identity, error) {
	who, err := svc.Identity(role)
	if err != nil && !errors.Is(err, session.ErrNotLoggedIn) {
		return who, err
	}
	return who, nil
}

func notLoggedInHint(role models.Role) {
	color.Yellow("⚠ Nothing to show. Log in first:")
	fmt.Printf("  coach login %s <username>\n", role)
}

// userMessage turns an error into the line shown to the user.
func userMessage(err error) string {
	var fe *models.FieldError
	switch {
	case errors.Is(err, session.ErrNotLoggedIn):
		return err.Error() + " (run 'coach login <athlete|trainer> <username>')"
	case errors.Is(err, view.ErrBusy):
		return "still working on the previous request"
	case errors.As(err, &fe) && errors.Is(err, service.ErrInvalidInput):
		return fe.Error()
	case errors.Is(err, api.ErrTimeout):
		return "the server did not answer in time; try again"
	case api.IsNetwork(err):
		return fmt.Sprintf("could not reach %s; check your connection and try again", apiHost())
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

func parseID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", what, s)
	}
	return id, nil
}

// prompt reads one line from in after printing label.
func prompt(in io.Reader, label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo when stdin is a terminal.
// Piped input falls back to a plain line read.
func promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt(os.Stdin, label)
	}
	fmt.Print(label)
	pw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}

// truncate shortens s to maxLen runes, ending in "..." when cut.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", max(maxLen, 0))
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

// apiHost names the configured server for messages.
func apiHost() string {
	if cfg == nil {
		return "the server"
	}
	return cfg.GetAPIURL()
}

func printAthlete(a models.Athlete) {
	faint := color.New(color.Faint)
	fmt.Printf("%s %s\n", faint.Sprintf("#%d", a.ID), color.New(color.Bold).Sprint(a.Name))
	fmt.Printf("  Username: %s\n", a.Username)
	fmt.Printf("  Email:    %s\n", a.Email)
	if a.Age > 0 {
		fmt.Printf("  Age:      %d\n", a.Age)
	}
	fmt.Printf("  Level:    %s\n", a.Level)
	if a.HasTrainer() {
		fmt.Printf("  Trainer:  #%d\n", *a.TrainerID)
	} else {
		fmt.Printf("  Trainer:  %s\n", faint.Sprint("none"))
	}
}

func printTrainer(t models.Trainer) {
	faint := color.New(color.Faint)
	fmt.Printf("%s %s\n", faint.Sprintf("#%d", t.ID), color.New(color.Bold).Sprint(t.Name))
	fmt.Printf("  Username:   %s\n", t.Username)
	fmt.Printf("  Email:      %s\n", t.Email)
	fmt.Printf("  Experience: %d years\n", t.YearsExperience)
	if t.Bio != "" {
		fmt.Printf("  Bio:        %s\n", t.Bio)
	}
}

func printSessions(sessions []models.Session) {
	if len(sessions) == 0 {
		fmt.Println("No sessions found.")
		return
	}
	faint := color.New(color.Faint)
	for _, s := range sessions {
		fmt.Printf("%s %s %s %s\n",
			faint.Sprint(padRight(fmt.Sprintf("#%d", s.ID), 6)),
			padRight(truncate(s.Name, 28), 28),
			padRight(fmt.Sprintf("%d min", s.Length), 8),
			s.Level)
		for i, d := range s.Drills {
			fmt.Printf("       %s %s\n", faint.Sprintf("%d.", i+1), d.DrillType)
		}
	}
}

func printDrills(drills []models.Drill) {
	if len(drills) == 0 {
		fmt.Println("No drills found.")
		return
	}
	faint := color.New(color.Faint)
	for _, d := range drills {
		fmt.Printf("%s %s %s %s\n",
			faint.Sprint(padRight(fmt.Sprintf("#%d", d.ID), 6)),
			padRight(truncate(d.DrillType, 20), 20),
			padRight(d.Level, 14),
			faint.Sprint(truncate(d.Description, 40)))
	}
}

func printAthletes(athletes []models.Athlete) {
	if len(athletes) == 0 {
		fmt.Println("No athletes found.")
		return
	}
	faint := color.New(color.Faint)
	for _, a := range athletes {
		fmt.Printf("%s %s %s %s\n",
			faint.Sprint(padRight(fmt.Sprintf("#%d", a.ID), 6)),
			padRight(truncate(a.Name, 24), 24),
			padRight(a.Username, 16),
			a.Level)
	}
}

func printTrainers(trainers []models.Trainer) {
	if len(trainers) == 0 {
		fmt.Println("No trainers found.")
		return
	}
	faint := color.New(color.Faint)
	for _, t := range trainers {
		fmt.Printf("%s %s %s\n",
			faint.Sprint(padRight(fmt.Sprintf("#%d", t.ID), 6)),
			padRight(truncate(t.Name, 24), 24),
			faint.Sprintf("%d yrs", t.YearsExperience))
	}
}
