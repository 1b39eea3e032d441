// ABOUTME: Install Claude Code skill for coach
// ABOUTME: Embeds the skill definition and writes it under ~/.claude/skills/coach/

package main

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

const skillFile = "skill/SKILL.md"

var (
	skillSkipConfirm bool
	skillPrint       bool
)

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install Claude Code skill",
	Long: `Install the coach skill for Claude Code.

The skill tells Claude when to reach for the coach MCP tools and which role
each tool acts as. Pair it with 'coach mcp' configured as an MCP server.

EXAMPLES:

  coach install-skill           # Asks before writing
  coach install-skill -y        # No prompt
  coach install-skill --print   # Show the skill without installing`,
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if skillPrint {
			content, err := skillFS.ReadFile(skillFile)
			if err != nil {
				return fmt.Errorf("failed to read embedded skill: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return installSkill(home, os.Stdin)
	},
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	installSkillCmd.Flags().BoolVar(&skillPrint, "print", false, "Print the skill instead of installing it")
	rootCmd.AddCommand(installSkillCmd)
}

func skillPath(home string) string {
	return filepath.Join(home, ".claude", "skills", "coach", "SKILL.md")
}

// installSkill writes the embedded skill under home. in answers the
// confirmation unless --yes was given.
func installSkill(home string, in io.Reader) error {
	content, err := skillFS.ReadFile(skillFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}

	dest := skillPath(home)
	existing, err := os.ReadFile(dest)
	switch {
	case err == nil && bytes.Equal(existing, content):
		color.Green("✓ Coach skill is already up to date")
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(dest))
		return nil
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("failed to read %s: %w", dest, err)
	}

	fmt.Println(color.New(color.Bold).Sprint("Coach skill for Claude Code"))
	fmt.Println()
	fmt.Println("Lets Claude check open sessions, mark them complete, build drills and")
	fmt.Println("sessions, and assign them to athletes, acting as your stored logins.")
	fmt.Println()
	fmt.Printf("Destination: %s\n", dest)
	if existing != nil {
		color.Yellow("⚠ An older skill file exists and will be replaced.")
	}
	fmt.Println()

	if !skillSkipConfirm {
		ok, err := confirm(in, "Install the coach skill? [y/N] ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Installation canceled.")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(dest, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	color.Green("✓ Installed coach skill")
	fmt.Println("  Try: \"What's on my training plan?\" or \"Add a ladder drill for beginners\"")
	return nil
}

// confirm asks a yes/no question; anything but y or yes is no.
func confirm(in io.Reader, question string) (bool, error) {
	fmt.Print(question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
