// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs commands end to end against the in-memory API and a temp SQLite store.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/coach/internal/api"
	"github.com/harperreed/coach/internal/config"
	"github.com/harperreed/coach/internal/fakeapi"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/service"
	"github.com/harperreed/coach/internal/session"
	"github.com/harperreed/coach/internal/storage"
	"github.com/harperreed/coach/internal/view"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string no truncation",
			input:  "Ladder",
			maxLen: 10,
			want:   "Ladder",
		},
		{
			name:   "exact length",
			input:  "Cones",
			maxLen: 5,
			want:   "Cones",
		},
		{
			name:   "needs truncation",
			input:  "Agility basics for first year players",
			maxLen: 10,
			want:   "Agility...",
		},
		{
			name:   "empty string",
			input:  "",
			maxLen: 10,
			want:   "",
		},
		{
			name:   "very short maxLen",
			input:  "hello",
			maxLen: 3,
			want:   "...",
		},
		{
			name:   "maxLen below ellipsis",
			input:  "hello",
			maxLen: 2,
			want:   "..",
		},
		{
			name:   "zero maxLen",
			input:  "hello",
			maxLen: 0,
			want:   "",
		},
		{
			name:   "multibyte cut on rune boundary",
			input:  "Übungsleiter Ärger",
			maxLen: 8,
			want:   "Übung...",
		},
		{
			name:   "multibyte fits",
			input:  "Sprünge",
			maxLen: 7,
			want:   "Sprünge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{"needs padding", "hi", 5, "hi   "},
		{"exact length", "hello", 5, "hello"},
		{"longer than length", "hello world", 5, "hello world"},
		{"empty string", "", 5, "     "},
		{"zero length", "hello", 0, "hello"},
		{"multibyte counts runes", "Ü", 3, "Ü  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.length)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"7", 7, false},
		{" 12 ", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseID(tt.input, "drill id")
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseID(%q) expected error, got %d", tt.input, got)
			} else if !strings.Contains(err.Error(), "invalid drill id") {
				t.Errorf("parseID(%q) error = %v, want mention of drill id", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseID(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseID(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPrompt(t *testing.T) {
	got, err := prompt(strings.NewReader("  coachk \nignored\n"), "Username: ")
	if err != nil {
		t.Fatalf("prompt failed: %v", err)
	}
	if got != "coachk" {
		t.Errorf("prompt = %q, want %q", got, "coachk")
	}

	if _, err := prompt(strings.NewReader(""), "Username: "); err == nil {
		t.Error("Expected error on empty input")
	}
}

// withStdin replaces os.Stdin with a pipe carrying input.
func withStdin(t *testing.T, input string) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %v", err)
	}
	if _, err := w.WriteString(input); err != nil {
		t.Fatalf("write stdin: %v", err)
	}
	w.Close()

	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = orig
		r.Close()
	})
}

func TestPromptPasswordPiped(t *testing.T) {
	withStdin(t, "hunter2\n")

	got, err := promptPassword("Password: ")
	if err != nil {
		t.Fatalf("promptPassword failed: %v", err)
	}
	if got != "hunter2" {
		t.Errorf("promptPassword = %q, want %q", got, "hunter2")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not logged in",
			err:  fmt.Errorf("%w as trainer", session.ErrNotLoggedIn),
			want: "not logged in as trainer (run 'coach login <athlete|trainer> <username>')",
		},
		{
			name: "invalid input",
			err:  fmt.Errorf("%w: %w", service.ErrInvalidInput, &models.FieldError{Field: "level", Reason: "is required"}),
			want: "level is required",
		},
		{
			name: "busy",
			err:  view.ErrBusy,
			want: "still working on the previous request",
		},
		{
			name: "timeout",
			err:  fmt.Errorf("get /trainers: %w", api.ErrTimeout),
			want: "the server did not answer in time; try again",
		},
		{
			name: "api error",
			err:  fmt.Errorf("create drill: %w", &api.Error{Status: 409, Message: "Drill already in session"}),
			want: "Drill already in session (409)",
		},
		{
			name: "plain",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	network := fmt.Errorf("list trainers: %w", &api.Error{Message: "network error: connection refused", Err: errors.New("refused")})
	if got := userMessage(network); !strings.Contains(got, "check your connection and try again") {
		t.Errorf("userMessage(network) = %q, want a retry hint", got)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userMessage(tt.err); got != tt.want {
				t.Errorf("userMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "coach" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "coach")
	}
	if rootCmd.Short == "" {
		t.Error("Expected rootCmd.Short to be non-empty")
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("Expected --verbose persistent flag")
	}
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		parent string
		want   []string
	}{
		{"athlete", []string{"assign-trainer", "complete", "sessions", "show", "trainers", "update"}},
		{"trainer", []string{"assign", "athletes", "show", "update"}},
		{"drill", []string{"add", "delete", "list"}},
		{"session", []string{"add-drill", "create", "delete", "drills", "list"}},
		{"signup", []string{"athlete", "trainer"}},
		{"config", []string{"set", "show"}},
		{"sync", []string{"link", "repair", "reset", "status", "unlink", "wipe"}},
	}

	for _, tt := range tests {
		t.Run(tt.parent, func(t *testing.T) {
			parent, _, err := rootCmd.Find([]string{tt.parent})
			if err != nil || parent == rootCmd {
				t.Fatalf("command %q not registered", tt.parent)
			}
			names := make(map[string]bool)
			for _, c := range parent.Commands() {
				names[c.Name()] = true
			}
			for _, want := range tt.want {
				if !names[want] {
					t.Errorf("Expected %s subcommand %q", tt.parent, want)
				}
			}
		})
	}
}

func TestCmdAliases(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"d", "ls"}, "list"},
		{[]string{"sess", "rm"}, "delete"},
		{[]string{"drill", "rm"}, "delete"},
	}

	for _, tt := range tests {
		cmd, _, err := rootCmd.Find(tt.args)
		if err != nil {
			t.Errorf("Find(%v) failed: %v", tt.args, err)
			continue
		}
		if cmd.Name() != tt.want {
			t.Errorf("Find(%v) = %q, want %q", tt.args, cmd.Name(), tt.want)
		}
	}
}

func TestCmdFlags(t *testing.T) {
	if f := loginCmd.Flags().Lookup("password"); f == nil || f.Shorthand != "p" {
		t.Error("Expected -p/--password on login")
	}
	for _, name := range []string{"type", "description", "level"} {
		if drillAddCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s on drill add", name)
		}
	}
	for _, name := range []string{"name", "length", "level"} {
		if sessionCreateCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s on session create", name)
		}
	}
	interval := athleteSessionsCmd.Flags().Lookup("interval")
	if interval == nil {
		t.Fatal("Expected --interval on athlete sessions")
	}
	if interval.DefValue != "10s" {
		t.Errorf("Expected default interval 10s, got %s", interval.DefValue)
	}
	if exportCmd.Flags().Lookup("output") == nil {
		t.Error("Expected --output on export")
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	want := map[string]bool{"json": true, "yaml": true, "markdown": true, "xlsx": true}
	for _, arg := range exportCmd.ValidArgs {
		if !want[arg] {
			t.Errorf("Unexpected export format %q", arg)
		}
		delete(want, arg)
	}
	for missing := range want {
		t.Errorf("Missing export format %q", missing)
	}
}

func TestNoStoreAnnotations(t *testing.T) {
	for _, c := range []string{"config", "migrate", "install-skill", "fakeapi"} {
		cmd, _, err := rootCmd.Find([]string{c})
		if err != nil {
			t.Fatalf("Find(%s) failed: %v", c, err)
		}
		if cmd.Annotations[noStore] == "" {
			t.Errorf("%s should not open the store", c)
		}
	}
}

// cliEnv points config, data, and API at temp locations for one test.
type cliEnv struct {
	fake    *fakeapi.Server
	dataDir string

	trainerID int64
	athleteID int64
	drillID   int64
	sessionID int64
}

func setupTestCLI(t *testing.T) *cliEnv {
	t.Helper()

	fake := fakeapi.New()
	srv := httptest.NewServer(fake.Handler())
	t.Cleanup(srv.Close)

	configHome := t.TempDir()
	dataHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("COACH_API_URL", srv.URL)
	t.Setenv("COACH_BACKEND", "sqlite")
	t.Setenv("COACH_DEBUG", "")

	resetFlags()
	t.Cleanup(func() {
		resetFlags()
		if store != nil {
			_ = store.Close()
			store = nil
		}
	})

	env := &cliEnv{fake: fake, dataDir: filepath.Join(dataHome, "coach")}
	env.trainerID = fake.SeedTrainer(models.Trainer{
		Username: "coachk", Email: "k@example.com", Name: "Coach K", YearsExperience: 12,
	}, "pw")
	env.athleteID = fake.SeedAthlete(models.Athlete{
		Username: "ada", Email: "ada@example.com", Name: "Ada", Age: 28, Level: "beginner",
	}, "pw")
	env.drillID = fake.SeedDrill(models.Drill{
		DrillType: "Ladder", Description: "Two feet in each box", Level: "beginner", TrainerID: env.trainerID,
	})
	env.sessionID = fake.SeedSession(models.Session{
		Name: "Agility basics", Length: 30, Level: "beginner", TrainerID: env.trainerID,
	})
	return env
}

// resetFlags clears flag globals that persist between Execute calls.
func resetFlags() {
	loginPassword = ""
	drillType, drillDescription, drillLevel = "", "", ""
	sessionName, sessionLength, sessionLevel = "", 0, ""
	exportOutput, exportLevel = "", ""
	migrateFrom, migrateTo, migrateDryRun = "", "", false
	verbose = false
}

func (e *cliEnv) run(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func (e *cliEnv) mustRun(t *testing.T, args ...string) {
	t.Helper()
	if err := e.run(t, args...); err != nil {
		t.Fatalf("coach %s failed: %v", strings.Join(args, " "), err)
	}
}

// openStore reads the SQLite store the CLI wrote to.
func (e *cliEnv) openStore(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(e.dataDir, "coach.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func (e *cliEnv) lastRequest(t *testing.T) fakeapi.Request {
	t.Helper()
	req, ok := e.fake.LastRequest()
	if !ok {
		t.Fatal("Expected a request to the API")
	}
	return req
}

func TestLoginCmdPersistsIdentity(t *testing.T) {
	env := setupTestCLI(t)

	env.mustRun(t, "login", "trainer", "coachk", "-p", "pw")

	db := env.openStore(t)
	who, err := session.Load(db, models.RoleTrainer)
	if err != nil {
		t.Fatalf("Load trainer identity: %v", err)
	}
	if who.UserID != env.trainerID {
		t.Errorf("Expected trainer id %d, got %d", env.trainerID, who.UserID)
	}
	if who.Token == "" {
		t.Error("Expected a stored token")
	}

	if _, err := session.Load(db, models.RoleAthlete); !errors.Is(err, session.ErrNotLoggedIn) {
		t.Errorf("Athlete should not be logged in, got %v", err)
	}
}

func TestLoginCmdReadsPasswordFromStdin(t *testing.T) {
	env := setupTestCLI(t)
	withStdin(t, "pw\n")

	env.mustRun(t, "login", "athlete", "ada")

	who, err := session.Load(env.openStore(t), models.RoleAthlete)
	if err != nil {
		t.Fatalf("Load athlete identity: %v", err)
	}
	if who.UserID != env.athleteID {
		t.Errorf("Expected athlete id %d, got %d", env.athleteID, who.UserID)
	}
}

func TestLoginCmdWrongPassword(t *testing.T) {
	env := setupTestCLI(t)

	if err := env.run(t, "login", "athlete", "ada", "-p", "nope"); err == nil {
		t.Fatal("Expected login to fail with wrong password")
	}

	keys, err := env.openStore(t).Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Expected nothing stored, got %v", keys)
	}
}

func TestLoginCmdUnknownRole(t *testing.T) {
	env := setupTestCLI(t)
	before := env.fake.RequestCount()

	if err := env.run(t, "login", "coach", "ada", "-p", "pw"); err == nil {
		t.Fatal("Expected error for unknown role")
	}
	if env.fake.RequestCount() != before {
		t.Error("Unknown role should not reach the API")
	}
}

func TestLogoutCmdSingleRole(t *testing.T) {
	env := setupTestCLI(t)
	env.mustRun(t, "login", "trainer", "coachk", "-p", "pw")
	env.mustRun(t, "login", "athlete", "ada", "-p", "pw")

	env.mustRun(t, "logout", "athlete")

	db := env.openStore(t)
	if _, err := session.Load(db, models.RoleAthlete); !errors.Is(err, session.ErrNotLoggedIn) {
		t.Errorf("Athlete should be logged out, got %v", err)
	}
	if _, err := session.Load(db, models.RoleTrainer); err != nil {
		t.Errorf("Trainer should still be logged in: %v", err)
	}
}

func TestWhoamiCmdAnonymous(t *testing.T) {
	env := setupTestCLI(t)
	before := env.fake.RequestCount()

	env.mustRun(t, "whoami")

	if env.fake.RequestCount() != before {
		t.Error("whoami should not call the API")
	}
}

func TestDrillListCmdAnonymousMakesNoRequest(t *testing.T) {
	env := setupTestCLI(t)
	before := env.fake.RequestCount()

	env.mustRun(t, "drill", "list")

	if env.fake.RequestCount() != before {
		t.Error("Anonymous read should not call the API")
	}
}

func TestDrillAddCmdRequiresLogin(t *testing.T) {
	env := setupTestCLI(t)
	before := env.fake.RequestCount()

	err := env.run(t, "drill", "add", "--type", "Ladder", "--description", "x", "--level", "beginner")
	if !errors.Is(err, session.ErrNotLoggedIn) {
		t.Fatalf("Expected ErrNotLoggedIn, got %v", err)
	}
	if env.fake.RequestCount() != before {
		t.Error("Rejected write should not call the API")
	}
}

func TestDrillAddCmd(t *testing.T) {
	env := setupTestCLI(t)
	env.mustRun(t, "login", "trainer", "coachk", "-p", "pw")

	env.mustRun(t, "drill", "add", "-t", "Cone weave", "-d", "Cut around five cones", "-l", "beginner")

	req := env.lastRequest(t)
	if req.Method != http.MethodPost || req.Path != "/drills" {
		t.Errorf("Expected POST /drills, got %s %s", req.Method, req.Path)
	}
	var body models.NewDrill
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("Bad request body: %v", err)
	}
	if body.TrainerID != env.trainerID {
		t.Errorf("Expected trainer_id %d, got %d", env.trainerID, body.TrainerID)
	}
	if body.DrillType != "Cone weave" {
		t.Errorf("Expected drill_type 'Cone weave', got %q", body.DrillType)
	}
}

func TestDrillAddCmdMissingLevel(t *testing.T) {
	env := setupTestCLI(t)
	env.mustRun(t, "login", "trainer", "coachk", "-p", "pw")
	before := env.fake.RequestCount()

	err := env.run(t, "drill", "add", "-t", "Ladder", "-d", "Quick feet")
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
	if env.fake.RequestCount() != before {
		t.Error("Invalid input should not reach the API")
	}
}

func TestSessionCmdFlow(t *testing.T) {
	env := setupTestCLI(t)
	env.mustRun(t, "login", "trainer", "coachk", "-p", "pw")

	env.mustRun(t, "session", "create", "--name", "Footwork", "--length", "45", "-l", "intermediate")
	req := env.lastRequest(t)
	if req.Method != http.MethodPost || req.Path != "/sessions" {
		t.Errorf("Expected POST /sessions, got %s %s", req.Method, req.Path)
	}

	sid := fmt.Sprint(env.sessionID)
	did := fmt.Sprint(env.drillID)
	env.mustRun(t, "session", "add-drill", sid, did)
	req = env.lastRequest(t)
	if req.Path != "/sessions/session_drills/"+sid {
		t.Errorf("Unexpected add-drill path %s", req.Path)
	}

	// Adding the same drill twice is rejected by the server.
	if err := env.run(t, "session", "add-drill", sid, did); err == nil {
		t.Error("Expected duplicate drill to fail")
	}

	env.mustRun(t, "session", "drills", sid)
	env.mustRun(t, "session", "list")
}

func TestSessionAddDrillCmdBadID(t *testing.T) {
	env := setupTestCLI(t)
	before := env.fake.RequestCount()

	if err := env.run(t, "session", "add-drill", "four", "7"); err == nil {
		t.Fatal("Expected error for non-numeric session id")
	}
	if env.fake.RequestCount() != before {
		t.Error("Bad id should not reach the API")
	}
}

func TestAthleteCompleteCmd(t *testing.T) {
	env := setupTestCLI(t)
	env.fake.Assign(env.athleteID, env.sessionID)
	env.mustRun(t, "login", "athlete", "ada", "-p", "pw")

	env.mustRun(t, "athlete", "sessions")
	req := env.lastRequest(t)
	if want := fmt.Sprintf("/athletes/athlete_sessions/%d", env.athleteID); req.Path != want {
		t.Errorf("Expected GET %s, got %s", want, req.Path)
	}

	env.mustRun(t, "athlete", "complete", fmt.Sprint(env.sessionID))

	req = env.lastRequest(t)
	want := fmt.Sprintf("/athletes/session/%d/%d", env.athleteID, env.sessionID)
	if req.Method != http.MethodDelete || req.Path != want {
		t.Errorf("Expected DELETE %s, got %s %s", want, req.Method, req.Path)
	}
}

func TestExportCmdJSON(t *testing.T) {
	env := setupTestCLI(t)
	env.mustRun(t, "login", "trainer", "coachk", "-p", "pw")

	out := filepath.Join(t.TempDir(), "roster.json")
	env.mustRun(t, "export", "json", "-o", out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Export file not written: %v", err)
	}
	var roster storage.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if roster.Trainer.Username != "coachk" {
		t.Errorf("Expected trainer coachk, got %q", roster.Trainer.Username)
	}
	if len(roster.Drills) != 1 || len(roster.Sessions) != 1 {
		t.Errorf("Expected 1 drill and 1 session, got %d and %d", len(roster.Drills), len(roster.Sessions))
	}
}

func TestExportCmdXLSXNeedsOutput(t *testing.T) {
	env := setupTestCLI(t)
	env.mustRun(t, "login", "trainer", "coachk", "-p", "pw")

	if err := env.run(t, "export", "xlsx"); err == nil {
		t.Error("Expected xlsx without --output to fail")
	}
	if err := env.run(t, "export", "csv"); err == nil {
		t.Error("Expected unknown format to fail")
	}
}

func TestExportCmdRequiresTrainer(t *testing.T) {
	env := setupTestCLI(t)

	err := env.run(t, "export", "json")
	if !errors.Is(err, session.ErrNotLoggedIn) {
		t.Errorf("Expected ErrNotLoggedIn, got %v", err)
	}
}

func TestConfigSetCmd(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"config", "set", "timeout_seconds", "9"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	loaded, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.TimeoutSeconds != 9 {
		t.Errorf("Expected timeout 9, got %d", loaded.TimeoutSeconds)
	}

	rootCmd.SetArgs([]string{"config", "set", "backend", "postgres"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected unknown backend to be rejected")
	}
}

func TestMigrateCmdDryRun(t *testing.T) {
	env := setupTestCLI(t)
	env.mustRun(t, "login", "trainer", "coachk", "-p", "pw")

	env.mustRun(t, "migrate", "--to", "badger", "--dry-run")

	if _, err := os.Stat(filepath.Join(env.dataDir, "badger")); err == nil {
		t.Error("Dry run should not create the destination store")
	}
}

func TestMigrateCmdToBadger(t *testing.T) {
	env := setupTestCLI(t)
	env.mustRun(t, "login", "trainer", "coachk", "-p", "pw")

	env.mustRun(t, "migrate", "--to", "badger")

	dst, err := storage.OpenBadger(filepath.Join(env.dataDir, "badger"))
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	defer dst.Close()

	who, err := session.Load(dst, models.RoleTrainer)
	if err != nil {
		t.Fatalf("Trainer login not migrated: %v", err)
	}
	if who.UserID != env.trainerID {
		t.Errorf("Expected trainer id %d, got %d", env.trainerID, who.UserID)
	}
}

func TestMigrateCmdSameBackend(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"migrate", "--to", "sqlite"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error when source equals destination")
	}
}
