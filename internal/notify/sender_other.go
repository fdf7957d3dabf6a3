//go:build !darwin && !linux && !windows

package notify

func newTerminalNotifierTransport() Transport { return &noopTransport{} }
func newOsascriptTransport() Transport        { return &noopTransport{} }
func newNotifySendTransport() Transport       { return &noopTransport{} }
func newPowershellTransport() Transport       { return &noopTransport{} }
