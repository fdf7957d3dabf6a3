package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Indicator shows a spinner while a single step runs, degrading to
// plain line output when stdout is not a terminal.
type Indicator struct {
	capabilities TerminalCapabilities
	symbols      Symbols
	spinner      *spinner.Spinner
}

// NewIndicator creates an Indicator for the given terminal.
func NewIndicator(caps TerminalCapabilities) *Indicator {
	return &Indicator{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// Start begins showing activity with the given message.
func (p *Indicator) Start(message string) {
	if !p.capabilities.IsTTY {
		fmt.Println(message)
		return
	}

	p.spinner = spinner.New(
		spinner.CharSets[p.symbols.SpinnerSet],
		100*time.Millisecond,
	)
	p.spinner.Writer = os.Stderr
	p.spinner.Suffix = " " + message
	p.spinner.Start()
}

// Succeed stops the spinner and prints a success line.
func (p *Indicator) Succeed(message string) {
	p.stop()
	fmt.Printf("%s %s\n", p.mark(p.symbols.Checkmark, color.FgGreen), message)
}

// Fail stops the spinner and prints a failure line.
func (p *Indicator) Fail(message string) {
	p.stop()
	fmt.Printf("%s %s\n", p.mark(p.symbols.Failure, color.FgRed), message)
}

func (p *Indicator) stop() {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}

func (p *Indicator) mark(symbol string, c color.Attribute) string {
	if p.capabilities.SupportsColor {
		return color.New(c).Sprint(symbol)
	}
	return symbol
}
