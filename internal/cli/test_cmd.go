package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notifier/internal/config"
	"github.com/ariel-frischer/claude-notifier/internal/hook"
	"github.com/ariel-frischer/claude-notifier/internal/logging"
	"github.com/ariel-frischer/claude-notifier/internal/notify"
	"github.com/ariel-frischer/claude-notifier/internal/progress"
	"github.com/ariel-frischer/claude-notifier/internal/task"
	"github.com/ariel-frischer/claude-notifier/internal/tracker"
)

var testCmd = &cobra.Command{
	Use:   "test [event]",
	Short: "Send a test notification through the configured transports",
	Long: `Send a test notification. With no argument a plain notification is
delivered directly. With an event name a synthetic payload for that
event is run through the full pipeline, task store included.`,
	GroupID:       GroupManagement,
	Args:          cobra.MaximumNArgs(1),
	ValidArgs:     hook.EventNames(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			return NewExitError(ExitFailure)
		}

		logger := logging.New(cfg.LogPath(), cfg.LogMaxSizeMB, cfg.LogMaxBackups)

		cwd, _ := os.Getwd()
		gateway := notify.NewGateway(cfg.Editor, time.Duration(cfg.DeliveryTimeoutSecs)*time.Second, logger)

		indicator := progress.NewIndicator(progress.DetectTerminalCapabilities())

		if len(args) == 1 {
			return runEventTest(cmd, cfg, logger, gateway, indicator, args[0], cwd)
		}

		indicator.Start("Sending test notification...")
		outcome := gateway.Deliver(cmd.Context(), notify.Presentation{
			Subtitle: "Test notification",
			Message:  "Notifications are working • " + time.Now().Format("15:04"),
			Sound:    cfg.Sound,
			Urgency:  notify.UrgencyNormal,
			Focus:    true,
		}, cwd)

		if !outcome.Delivered {
			indicator.Fail("Notification could not be delivered")
			fmt.Printf("See %s for details\n", cfg.LogPath())
			return NewExitError(ExitFailure)
		}

		indicator.Succeed("Notification delivered via " + outcome.Transport)
		return nil
	},
}

// runEventTest synthesizes a payload for event and runs it through the
// real tracker, store included.
func runEventTest(cmd *cobra.Command, cfg *config.Configuration, logger *logging.Logger, gateway *notify.Gateway, indicator *progress.Indicator, event, cwd string) error {
	if !hook.ValidEvent(event) {
		fmt.Fprintf(os.Stderr, "unknown hook event: %s\n", event)
		return NewExitError(ExitFailure)
	}

	store, err := task.NewStore(cfg.DBPath(), cfg.BusyTimeoutMillis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open task store: %v\n", err)
		return NewExitError(ExitFailure)
	}
	defer store.Close()

	payload := hook.Payload{
		HookEventName:    event,
		SessionID:        "test-session",
		Prompt:           "Test prompt",
		CWD:              cwd,
		NotificationType: "permission_prompt",
		Message:          "Test notification",
		Source:           "startup",
		Reason:           "exit",
	}

	indicator.Start("Running " + event + " through the pipeline...")
	tr := tracker.New(store, gateway, logger, cfg.Sound)
	if err := tr.Handle(cmd.Context(), hook.Event(event), payload); err != nil {
		indicator.Fail(fmt.Sprintf("%s failed: %v", event, err))
		return NewExitError(ExitFailure)
	}

	indicator.Succeed(event + " handled")
	return nil
}

func init() {
	rootCmd.AddCommand(testCmd)
}
