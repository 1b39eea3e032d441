// ABOUTME: MCP server exposing the training platform to assistants.
// ABOUTME: Wraps the MCP server around the coach service and stored logins.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/service"
	"github.com/harperreed/coach/internal/session"
	"github.com/harperreed/coach/internal/view"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with service access.
type Server struct {
	mcpServer *mcp.Server
	svc       *service.Service

	// One guard per write tool; an overlapping call to the same tool fails
	// with view.ErrBusy instead of reaching the API twice.
	writes map[string]*view.Loader[struct{}]
}

var writeTools = []string{
	"complete_session", "assign_trainer", "assign_session",
	"create_drill", "delete_drill", "create_session", "delete_session",
	"add_session_drill",
}

// NewServer creates a new MCP server backed by svc.
func NewServer(svc *service.Service) (*Server, error) {
	if svc == nil {
		return nil, fmt.Errorf("service is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "coach",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
		writes:    make(map[string]*view.Loader[struct{}], len(writeTools)),
	}
	for _, name := range writeTools {
		s.writes[name] = view.NewLoader[struct{}]()
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	defer s.close()
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// submit runs a write tool's action through that tool's guard.
func (s *Server) submit(ctx context.Context, tool string, action func(context.Context) error) error {
	guard, ok := s.writes[tool]
	if !ok {
		return fmt.Errorf("unknown write tool %q", tool)
	}
	err := guard.Submit(ctx, action)
	if errors.Is(err, view.ErrBusy) {
		return fmt.Errorf("%s is still running; wait for it to finish: %w", tool, err)
	}
	return err
}

// close cancels in-flight writes.
func (s *Server) close() {
	for _, guard := range s.writes {
		guard.Close()
	}
}

// identity loads the stored login for role. Identities are read per call so
// a login made in another terminal is picked up without a restart.
func (s *Server) identity(role models.Role) (session.Identity, error) {
	who, err := s.svc.Identity(role)
	if errors.Is(err, session.ErrNotLoggedIn) {
		return who, fmt.Errorf("not logged in as %s; run `coach login %s` first", role, role)
	}
	return who, err
}

// anyIdentity prefers the trainer login and falls back to the athlete one.
func (s *Server) anyIdentity() (session.Identity, error) {
	if who, err := s.svc.Identity(models.RoleTrainer); err == nil {
		return who, nil
	}
	return s.identity(models.RoleAthlete)
}
