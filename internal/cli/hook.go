package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notifier/internal/config"
	"github.com/ariel-frischer/claude-notifier/internal/hook"
	"github.com/ariel-frischer/claude-notifier/internal/logging"
	"github.com/ariel-frischer/claude-notifier/internal/notify"
	"github.com/ariel-frischer/claude-notifier/internal/task"
	"github.com/ariel-frischer/claude-notifier/internal/tracker"
)

var hookCmd = &cobra.Command{
	Use:       "hook <event>",
	Short:     "Handle one Claude Code hook event (payload JSON on stdin)",
	Long: `Handle one Claude Code hook event.

The event payload arrives as a single JSON object on stdin. Supported
events: UserPromptSubmit, Stop, SubagentStop, Notification,
SessionStart, SessionEnd.

Exits 0 on success and on recognized no-ops (empty stdin, stop with no
open task); exits 1 on malformed JSON, an unknown event, or a storage
failure. A failed notification delivery alone never fails the hook.`,
	GroupID:   GroupHooks,
	Args:      cobra.ExactArgs(1),
	ValidArgs: hook.EventNames(),
	// Hook stderr ends up in Claude's hook output; keep it quiet.
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		eventName := args[0]

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "claude-notifier: %v\n", err)
			return NewExitError(ExitFailure)
		}

		logger := logging.New(cfg.LogPath(), cfg.LogMaxSizeMB, cfg.LogMaxBackups)

		if !hook.ValidEvent(eventName) {
			logger.Warnf("unknown hook event: %s", eventName)
			return NewExitError(ExitFailure)
		}

		payload, err := hook.ParsePayload(cmd.InOrStdin())
		if errors.Is(err, hook.ErrNoInput) {
			// Claude sometimes fires hooks with no payload; nothing to do.
			logger.Warnf("no input data for %s", eventName)
			return nil
		}
		if err != nil {
			logger.Errorf("parsing %s payload: %v", eventName, err)
			return NewExitError(ExitFailure)
		}

		store, err := task.NewStore(cfg.DBPath(), cfg.BusyTimeoutMillis)
		if err != nil {
			logger.Errorf("opening task store: %v", err)
			return NewExitError(ExitFailure)
		}
		defer store.Close()

		gateway := notify.NewGateway(cfg.Editor, time.Duration(cfg.DeliveryTimeoutSecs)*time.Second, logger)
		tr := tracker.New(store, gateway, logger, cfg.Sound)

		if err := tr.Handle(cmd.Context(), hook.Event(eventName), payload); err != nil {
			logger.Errorf("handling %s: %v", eventName, err)
			return NewExitError(ExitFailure)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
