// claude-notifier - Desktop Notifications for Claude Code
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/claude-notifier

package main

import (
	"os"

	"github.com/ariel-frischer/claude-notifier/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
