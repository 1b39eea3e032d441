// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/coach/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to read and manage your training data
through a standardized protocol. The server communicates via stdin/stdout
and acts as whichever roles you are logged in as.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "coach": {
        "command": "coach",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  whoami             Show which roles are logged in
  get_profile        Athlete or trainer profile
  list_sessions      Athlete's open sessions or trainer's own sessions
  complete_session   Mark an assigned session done
  list_trainers      All trainers
  assign_trainer     Pair the athlete with a trainer
  assign_session     Give a session to an athlete
  list_drills        Trainer drills, or one session's drills
  create_drill       Create a drill
  delete_drill       Delete a drill
  create_session     Create a session
  delete_session     Delete a session
  add_session_drill  Append a drill to a session
  list_athletes      Athletes paired with the trainer

AVAILABLE RESOURCES:

  coach://roster     Trainer profile, athletes, sessions, and drills`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
