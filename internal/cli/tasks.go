package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notifier/internal/config"
	"github.com/ariel-frischer/claude-notifier/internal/task"
	"github.com/ariel-frischer/claude-notifier/internal/tracker"
)

var tasksCmd = &cobra.Command{
	Use:           "tasks",
	Short:         "List recently tracked tasks",
	GroupID:       GroupManagement,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, _ := cmd.Flags().GetString("session")
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			return NewExitError(ExitFailure)
		}

		store, err := task.NewStore(cfg.DBPath(), cfg.BusyTimeoutMillis)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open task store: %v\n", err)
			return NewExitError(ExitFailure)
		}
		defer store.Close()

		tasks, err := store.RecentTasks(cmd.Context(), sessionID, limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to list tasks: %v\n", err)
			return NewExitError(ExitFailure)
		}

		if len(tasks) == 0 {
			color.Yellow("No tracked tasks yet")
			return nil
		}

		for _, t := range tasks {
			printTask(t)
		}
		return nil
	},
}

func printTask(t task.Task) {
	status := color.YellowString("open")
	duration := "-"
	if !t.Open() {
		status = color.GreenString("done")
		duration = tracker.FormatDuration(*t.DurationSeconds)
	}
	prompt := t.Prompt
	if len(prompt) > 60 {
		prompt = prompt[:57] + "..."
	}
	fmt.Printf("%s  #%-3d %-8s %-7s %s  %s\n",
		t.CreatedAt.Local().Format("2006-01-02 15:04"),
		t.Seq,
		shortSession(t.SessionID),
		status,
		color.New(color.Bold).Sprintf("%-8s", duration),
		prompt,
	)
}

// shortSession trims a session UUID down to a readable prefix.
func shortSession(sessionID string) string {
	if len(sessionID) > 8 {
		return sessionID[:8]
	}
	return sessionID
}

func init() {
	tasksCmd.Flags().String("session", "", "Only show tasks for this session ID")
	tasksCmd.Flags().Int("limit", 20, "Maximum number of tasks to show")
	rootCmd.AddCommand(tasksCmd)
}
