package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notifier/internal/claude"
	"github.com/ariel-frischer/claude-notifier/internal/config"
	"github.com/ariel-frischer/claude-notifier/internal/notify"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show resolved configuration and installed hooks",
	GroupID: GroupManagement,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		bold := color.New(color.Bold)

		bold.Println("Configuration")
		fmt.Printf("  Sound:            %s\n", cfg.Sound)
		fmt.Printf("  Editor:           %s\n", cfg.Editor)
		fmt.Printf("  Data directory:   %s\n", cfg.DataDir)
		fmt.Printf("  Database:         %s\n", cfg.DBPath())
		fmt.Printf("  Log file:         %s\n", cfg.LogPath())
		fmt.Printf("  Delivery timeout: %ds\n", cfg.DeliveryTimeoutSecs)

		fmt.Println()
		bold.Println("Transports")
		primary, fallback := notify.Transports()
		printTransport("primary", primary)
		printTransport("fallback", fallback)

		fmt.Println()
		bold.Println("Hooks")
		settingsPath, err := resolveSettingsPath(cmd)
		if err != nil {
			return err
		}
		settings, err := claude.Load(settingsPath)
		if err != nil {
			return err
		}
		hooks := settings.EnabledHooks()
		if len(hooks) == 0 {
			color.Yellow("  Not installed (run: claude-notifier enable)")
			return nil
		}
		for _, event := range hooks {
			fmt.Printf("  %s %s\n", color.GreenString("✓"), event)
		}
		return nil
	},
}

func printTransport(role string, t notify.Transport) {
	if t.Available() {
		fmt.Printf("  %-9s %s %s\n", role+":", t.Name(), color.GreenString("(available)"))
		return
	}
	fmt.Printf("  %-9s %s %s\n", role+":", t.Name(), color.YellowString("(not found)"))
}

func init() {
	statusCmd.Flags().String("settings", "", "Path to Claude settings.json (default ~/.claude/settings.json)")
	rootCmd.AddCommand(statusCmd)
}
