//go:build windows

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// powershellTransport shows Windows toast notifications via PowerShell.
type powershellTransport struct {
	available bool
}

func newPowershellTransport() Transport {
	return &powershellTransport{available: toolAvailable("powershell")}
}

// newTerminalNotifierTransport returns a no-op transport on windows
func newTerminalNotifierTransport() Transport { return &noopTransport{} }

// newOsascriptTransport returns a no-op transport on windows
func newOsascriptTransport() Transport { return &noopTransport{} }

// newNotifySendTransport returns a no-op transport on windows
func newNotifySendTransport() Transport { return &noopTransport{} }

func (t *powershellTransport) Name() string    { return "powershell" }
func (t *powershellTransport) Available() bool { return t.available }

func (t *powershellTransport) Send(ctx context.Context, p Presentation, _ string) error {
	if !t.available {
		return ErrTransportMissing
	}

	body := p.Subtitle
	if p.Message != "" {
		body += " - " + p.Message
	}

	script := fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$textNodes = $template.GetElementsByTagName('text')
$textNodes.Item(0).AppendChild($template.CreateTextNode('%s')) | Out-Null
$textNodes.Item(1).AppendChild($template.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('claude-notifier').Show($toast)
`, escapeForPowerShell(p.Title), escapeForPowerShell(body))

	cmd := exec.CommandContext(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script)
	return cmd.Run()
}

// escapeForPowerShell escapes single quotes for PowerShell string literals
func escapeForPowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
