// Package cli provides Cobra-based CLI commands for the claude-notifier
// tool. It defines the hook entry point Claude Code invokes per
// lifecycle event, plus management commands for installing the hooks
// into Claude settings, inspecting tracked tasks, and testing delivery.
package cli

import (
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupHooks      = "hooks"
	GroupManagement = "management"
)

var rootCmd = &cobra.Command{
	Use:   "claude-notifier",
	Short: "desktop notifications for Claude Code",
	Long: `claude-notifier - desktop notifications for Claude Code

Sits behind Claude Code's lifecycle hooks: tracks how long each task
takes per session, and alerts you when Claude finishes, stalls, or
needs your approval. Click a notification to jump back to the project
in your editor.`,
	Example: `  # Install the hooks into ~/.claude/settings.json
  claude-notifier enable

  # Send a test notification
  claude-notifier test

  # Show recent tracked tasks
  claude-notifier tasks --limit 10

  # What Claude Code invokes per event (payload on stdin)
  echo '{"hook_event_name":"Stop","session_id":"s1","cwd":"/proj"}' | claude-notifier hook Stop`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupHooks, Title: "Hooks:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupManagement, Title: "Management:"})

	rootCmd.SetHelpCommandGroupID(GroupManagement)
	rootCmd.SetCompletionCommandGroupID(GroupManagement)
}
