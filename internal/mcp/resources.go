// ABOUTME: MCP resource implementations for trainer data.
// ABOUTME: Provides coach://roster, the logged-in trainer's full program.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const rosterURI = "coach://roster"

func (s *Server) registerResources() {
	// coach://roster - trainer profile, athletes, sessions, drills
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         rosterURI,
		Name:        "Trainer Roster",
		Description: "The logged-in trainer's athletes, sessions, and drills",
		MIMEType:    "application/json",
	}, s.handleRosterResource)
}

// Resource handlers

func (s *Server) handleRosterResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	who, err := s.identity(models.RoleTrainer)
	if err != nil {
		return nil, err
	}

	roster, err := s.svc.Roster(ctx, who)
	if err != nil {
		return nil, fmt.Errorf("failed to build roster: %w", err)
	}

	data, err := storage.ExportJSON(roster)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      rosterURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
