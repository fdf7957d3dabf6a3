package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notifier/internal/claude"
	"github.com/ariel-frischer/claude-notifier/internal/config"
)

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Install the notifier hooks into Claude settings",
	Long: `Install one notifier hook per lifecycle event into Claude settings
(~/.claude/settings.json by default), preserving hooks owned by other
tools. Re-running replaces the notifier's own entries, so enable is
safe to repeat after upgrading.`,
	GroupID: GroupManagement,
	RunE: func(cmd *cobra.Command, args []string) error {
		settingsPath, err := resolveSettingsPath(cmd)
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		binPath, err := os.Executable()
		if err != nil {
			binPath = "claude-notifier"
		}

		settings, err := claude.Load(settingsPath)
		if err != nil {
			return err
		}

		settings.EnableHooks(binPath)
		settings.SetEnv(map[string]string{
			"NOTIFICATION_SOUND":  cfg.Sound,
			"NOTIFICATION_EDITOR": cfg.Editor,
		})

		if err := settings.Save(); err != nil {
			return err
		}

		color.Green("✓ Notification hooks enabled")
		fmt.Printf("Settings updated: %s\n", settings.FilePath())
		fmt.Println("\nTest with: claude-notifier test")
		return nil
	},
}

var disableCmd = &cobra.Command{
	Use:     "disable",
	Short:   "Remove the notifier hooks from Claude settings",
	GroupID: GroupManagement,
	RunE: func(cmd *cobra.Command, args []string) error {
		settingsPath, err := resolveSettingsPath(cmd)
		if err != nil {
			return err
		}

		settings, err := claude.Load(settingsPath)
		if err != nil {
			return err
		}

		if len(settings.EnabledHooks()) == 0 {
			color.Yellow("No notifier hooks configured")
			return nil
		}

		settings.DisableHooks()
		if err := settings.Save(); err != nil {
			return err
		}

		color.Green("✓ Notification hooks disabled")
		return nil
	},
}

// resolveSettingsPath honors --settings, defaulting to ~/.claude/settings.json.
func resolveSettingsPath(cmd *cobra.Command) (string, error) {
	settingsPath, _ := cmd.Flags().GetString("settings")
	if settingsPath != "" {
		return settingsPath, nil
	}
	return claude.DefaultSettingsPath()
}

func init() {
	enableCmd.Flags().String("settings", "", "Path to Claude settings.json (default ~/.claude/settings.json)")
	disableCmd.Flags().String("settings", "", "Path to Claude settings.json (default ~/.claude/settings.json)")
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}
