package cli

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/claude-notifier/internal/hook"
)

func commandByUse(use string) *cobra.Command {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == use {
			return cmd
		}
	}
	return nil
}

func TestCommandRegistration(t *testing.T) {
	for _, use := range []string{"hook <event>", "enable", "disable", "status", "test [event]", "tasks"} {
		assert.NotNil(t, commandByUse(use), "%s command should be registered", use)
	}
}

func TestCommandGroups(t *testing.T) {
	assert.Equal(t, GroupHooks, hookCmd.GroupID)
	for _, cmd := range []string{"enable", "disable", "status", "test [event]", "tasks"} {
		c := commandByUse(cmd)
		require.NotNil(t, c)
		assert.Equal(t, GroupManagement, c.GroupID, "%s should be a management command", cmd)
	}
}

func TestHookCmdArgs(t *testing.T) {
	err := hookCmd.Args(hookCmd, []string{"Stop"})
	assert.NoError(t, err)

	err = hookCmd.Args(hookCmd, []string{})
	assert.Error(t, err)

	err = hookCmd.Args(hookCmd, []string{"Stop", "extra"})
	assert.Error(t, err)
}

func TestHookCmdValidArgs(t *testing.T) {
	assert.ElementsMatch(t, hook.EventNames(), hookCmd.ValidArgs)
}

func TestHookCmdSilencesCobraOutput(t *testing.T) {
	assert.True(t, hookCmd.SilenceUsage)
	assert.True(t, hookCmd.SilenceErrors)
}

func TestTasksCmdFlags(t *testing.T) {
	session := tasksCmd.Flags().Lookup("session")
	require.NotNil(t, session)
	assert.Equal(t, "", session.DefValue)

	limit := tasksCmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "20", limit.DefValue)
}

func TestSettingsFlagRegistered(t *testing.T) {
	for _, cmd := range []string{"enable", "disable", "status"} {
		c := commandByUse(cmd)
		require.NotNil(t, c)
		assert.NotNil(t, c.Flags().Lookup("settings"), "%s should accept --settings", cmd)
	}
}

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil error":       {err: nil, want: ExitSuccess},
		"exit error":      {err: NewExitError(ExitFailure), want: ExitFailure},
		"plain error":     {err: errors.New("boom"), want: ExitFailure},
		"zero exit error": {err: NewExitError(ExitSuccess), want: ExitSuccess},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestShortSession(t *testing.T) {
	assert.Equal(t, "abcd1234", shortSession("abcd1234-ef56-7890"))
	assert.Equal(t, "short", shortSession("short"))
}
