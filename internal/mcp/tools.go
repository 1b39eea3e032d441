// ABOUTME: MCP tool implementations for athletes and trainers.
// ABOUTME: Each tool resolves the stored login and calls one service function.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// whoami
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "whoami",
		Description: "Show which roles are logged in and their user ids",
	}, s.handleWhoami)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the logged-in athlete or trainer profile",
	}, s.handleGetProfile)

	// list_sessions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List an athlete's open sessions or a trainer's own sessions",
	}, s.handleListSessions)

	// complete_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_session",
		Description: "Mark one of the athlete's assigned sessions as completed",
	}, s.handleCompleteSession)

	// list_trainers
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_trainers",
		Description: "List every trainer on the platform",
	}, s.handleListTrainers)

	// assign_trainer
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "assign_trainer",
		Description: "Pair the logged-in athlete with a trainer",
	}, s.handleAssignTrainer)

	// assign_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "assign_session",
		Description: "Assign one of the trainer's sessions to an athlete",
	}, s.handleAssignSession)

	// list_drills
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_drills",
		Description: "List the trainer's drills, or the drills of one session",
	}, s.handleListDrills)

	// create_drill
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_drill",
		Description: "Create a drill owned by the logged-in trainer",
	}, s.handleCreateDrill)

	// delete_drill
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_drill",
		Description: "Delete one of the trainer's drills",
	}, s.handleDeleteDrill)

	// create_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_session",
		Description: "Create a training session owned by the logged-in trainer",
	}, s.handleCreateSession)

	// delete_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_session",
		Description: "Delete one of the trainer's sessions",
	}, s.handleDeleteSession)

	// add_session_drill
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_session_drill",
		Description: "Append a drill to the end of a session",
	}, s.handleAddSessionDrill)

	// list_athletes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_athletes",
		Description: "List the athletes paired with the logged-in trainer",
	}, s.handleListAthletes)
}

// Tool input/output types

type emptyInput struct{}

type roleInput struct {
	Role string `json:"role" jsonschema:"athlete or trainer"`
}

type loginStatus struct {
	LoggedIn bool  `json:"logged_in"`
	UserID   int64 `json:"user_id,omitempty"`
}

type whoamiOutput struct {
	Athlete loginStatus `json:"athlete"`
	Trainer loginStatus `json:"trainer"`
}

type profileOutput struct {
	Role    string          `json:"role"`
	Found   bool            `json:"found"`
	Athlete *models.Athlete `json:"athlete,omitempty"`
	Trainer *models.Trainer `json:"trainer,omitempty"`
}

type sessionsOutput struct {
	Sessions []models.Session `json:"sessions"`
	Count    int              `json:"count"`
}

type drillsOutput struct {
	Drills []models.Drill `json:"drills"`
	Count  int            `json:"count"`
}

type trainersOutput struct {
	Trainers []models.Trainer `json:"trainers"`
	Count    int              `json:"count"`
}

type athletesOutput struct {
	Athletes []models.Athlete `json:"athletes"`
	Count    int              `json:"count"`
}

type sessionIDInput struct {
	SessionID int64 `json:"session_id" jsonschema:"Session id"`
}

type drillIDInput struct {
	DrillID int64 `json:"drill_id" jsonschema:"Drill id"`
}

type trainerIDInput struct {
	TrainerID int64 `json:"trainer_id" jsonschema:"Trainer id to pair with"`
}

type assignSessionInput struct {
	AthleteID int64 `json:"athlete_id" jsonschema:"Athlete id"`
	SessionID int64 `json:"session_id" jsonschema:"Session id"`
}

type listDrillsInput struct {
	SessionID int64 `json:"session_id,omitempty" jsonschema:"Only list drills in this session"`
}

type createDrillInput struct {
	DrillType   string `json:"drill_type" jsonschema:"Drill name or type, e.g. ladder or cone weave"`
	Description string `json:"description" jsonschema:"What the athlete does"`
	Level       string `json:"level" jsonschema:"Skill level (beginner, intermediate, advanced)"`
}

type createSessionInput struct {
	Name   string `json:"name" jsonschema:"Session name"`
	Length int    `json:"length" jsonschema:"Length in minutes"`
	Level  string `json:"level" jsonschema:"Skill level (beginner, intermediate, advanced)"`
}

type addSessionDrillInput struct {
	SessionID int64 `json:"session_id" jsonschema:"Session to extend"`
	DrillID   int64 `json:"drill_id" jsonschema:"Drill to append"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleWhoami(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, whoamiOutput, error) {
	var out whoamiOutput
	if who, err := s.svc.Identity(models.RoleAthlete); err == nil {
		out.Athlete = loginStatus{LoggedIn: true, UserID: who.UserID}
	}
	if who, err := s.svc.Identity(models.RoleTrainer); err == nil {
		out.Trainer = loginStatus{LoggedIn: true, UserID: who.UserID}
	}
	return nil, out, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input roleInput) (*mcp.CallToolResult, profileOutput, error) {
	role, err := models.ParseRole(input.Role)
	if err != nil {
		return nil, profileOutput{}, err
	}
	who, err := s.identity(role)
	if err != nil {
		return nil, profileOutput{}, err
	}

	out := profileOutput{Role: string(role)}
	switch role {
	case models.RoleAthlete:
		res, err := s.svc.FetchAthlete(ctx, who)
		if err != nil {
			return nil, profileOutput{}, err
		}
		if a, ok := res.Get(); ok {
			out.Found = true
			out.Athlete = &a
		}
	case models.RoleTrainer:
		res, err := s.svc.FetchTrainer(ctx, who)
		if err != nil {
			return nil, profileOutput{}, err
		}
		if t, ok := res.Get(); ok {
			out.Found = true
			out.Trainer = &t
		}
	}
	return nil, out, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input roleInput) (*mcp.CallToolResult, sessionsOutput, error) {
	role, err := models.ParseRole(input.Role)
	if err != nil {
		return nil, sessionsOutput{}, err
	}
	who, err := s.identity(role)
	if err != nil {
		return nil, sessionsOutput{}, err
	}

	var sessions []models.Session
	if role == models.RoleAthlete {
		res, err := s.svc.FetchAthleteSessions(ctx, who)
		if err != nil {
			return nil, sessionsOutput{}, err
		}
		sessions = res.OrZero()
	} else {
		res, err := s.svc.FetchTrainerSessions(ctx, who)
		if err != nil {
			return nil, sessionsOutput{}, err
		}
		sessions = res.OrZero()
	}
	return nil, sessionsOutput{Sessions: sessions, Count: len(sessions)}, nil
}

func (s *Server) handleCompleteSession(ctx context.Context, req *mcp.CallToolRequest, input sessionIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	who, err := s.identity(models.RoleAthlete)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	err = s.submit(ctx, "complete_session", func(ctx context.Context) error {
		return s.svc.CompleteAthleteSession(ctx, who, input.SessionID)
	})
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Completed session %d", input.SessionID)}, nil
}

func (s *Server) handleListTrainers(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, trainersOutput, error) {
	trainers, err := s.svc.ListTrainers(ctx)
	if err != nil {
		return nil, trainersOutput{}, err
	}
	return nil, trainersOutput{Trainers: trainers, Count: len(trainers)}, nil
}

func (s *Server) handleAssignTrainer(ctx context.Context, req *mcp.CallToolRequest, input trainerIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	who, err := s.identity(models.RoleAthlete)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	err = s.submit(ctx, "assign_trainer", func(ctx context.Context) error {
		_, err := s.svc.AssignTrainer(ctx, who, input.TrainerID)
		return err
	})
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Assigned trainer %d", input.TrainerID)}, nil
}

func (s *Server) handleAssignSession(ctx context.Context, req *mcp.CallToolRequest, input assignSessionInput) (*mcp.CallToolResult, simpleOutput, error) {
	who, err := s.identity(models.RoleTrainer)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	err = s.submit(ctx, "assign_session", func(ctx context.Context) error {
		_, err := s.svc.AssignSession(ctx, who, input.AthleteID, input.SessionID)
		return err
	})
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Assigned session %d to athlete %d", input.SessionID, input.AthleteID),
	}, nil
}

func (s *Server) handleListDrills(ctx context.Context, req *mcp.CallToolRequest, input listDrillsInput) (*mcp.CallToolResult, drillsOutput, error) {
	if input.SessionID > 0 {
		who, err := s.anyIdentity()
		if err != nil {
			return nil, drillsOutput{}, err
		}
		res, err := s.svc.FetchSessionDrills(ctx, who, input.SessionID)
		if err != nil {
			return nil, drillsOutput{}, err
		}
		drills := res.OrZero()
		return nil, drillsOutput{Drills: drills, Count: len(drills)}, nil
	}

	who, err := s.identity(models.RoleTrainer)
	if err != nil {
		return nil, drillsOutput{}, err
	}
	res, err := s.svc.FetchTrainerDrills(ctx, who)
	if err != nil {
		return nil, drillsOutput{}, err
	}
	drills := res.OrZero()
	return nil, drillsOutput{Drills: drills, Count: len(drills)}, nil
}

func (s *Server) handleCreateDrill(ctx context.Context, req *mcp.CallToolRequest, input createDrillInput) (*mcp.CallToolResult, models.Drill, error) {
	who, err := s.identity(models.RoleTrainer)
	if err != nil {
		return nil, models.Drill{}, err
	}
	var d *models.Drill
	err = s.submit(ctx, "create_drill", func(ctx context.Context) error {
		var err error
		d, err = s.svc.CreateDrill(ctx, who, models.NewDrill{
			DrillType:   input.DrillType,
			Description: input.Description,
			Level:       input.Level,
		})
		return err
	})
	if err != nil {
		return nil, models.Drill{}, err
	}
	return nil, *d, nil
}

func (s *Server) handleDeleteDrill(ctx context.Context, req *mcp.CallToolRequest, input drillIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	who, err := s.identity(models.RoleTrainer)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	err = s.submit(ctx, "delete_drill", func(ctx context.Context) error {
		return s.svc.DeleteDrill(ctx, who, input.DrillID)
	})
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted drill %d", input.DrillID)}, nil
}

func (s *Server) handleCreateSession(ctx context.Context, req *mcp.CallToolRequest, input createSessionInput) (*mcp.CallToolResult, models.Session, error) {
	who, err := s.identity(models.RoleTrainer)
	if err != nil {
		return nil, models.Session{}, err
	}
	var sess *models.Session
	err = s.submit(ctx, "create_session", func(ctx context.Context) error {
		var err error
		sess, err = s.svc.CreateSession(ctx, who, models.NewSession{
			Name:   input.Name,
			Length: input.Length,
			Level:  input.Level,
		})
		return err
	})
	if err != nil {
		return nil, models.Session{}, err
	}
	return nil, *sess, nil
}

func (s *Server) handleDeleteSession(ctx context.Context, req *mcp.CallToolRequest, input sessionIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	who, err := s.identity(models.RoleTrainer)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	err = s.submit(ctx, "delete_session", func(ctx context.Context) error {
		return s.svc.DeleteSession(ctx, who, input.SessionID)
	})
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted session %d", input.SessionID)}, nil
}

func (s *Server) handleAddSessionDrill(ctx context.Context, req *mcp.CallToolRequest, input addSessionDrillInput) (*mcp.CallToolResult, simpleOutput, error) {
	who, err := s.identity(models.RoleTrainer)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	err = s.submit(ctx, "add_session_drill", func(ctx context.Context) error {
		return s.svc.AddDrillToSession(ctx, who, input.SessionID, input.DrillID)
	})
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added drill %d to session %d", input.DrillID, input.SessionID),
	}, nil
}

func (s *Server) handleListAthletes(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, athletesOutput, error) {
	who, err := s.identity(models.RoleTrainer)
	if err != nil {
		return nil, athletesOutput{}, err
	}
	res, err := s.svc.FetchTrainerAthletes(ctx, who)
	if err != nil {
		return nil, athletesOutput{}, err
	}
	athletes := res.OrZero()
	return nil, athletesOutput{Athletes: athletes, Count: len(athletes)}, nil
}
