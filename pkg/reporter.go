package versync

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives the user-visible status lines produced while a version is
// written and synced.
type Reporter interface {
	Success(msg string)
	Warning(msg string)
	Failure(msg string)
}

// Color palette.
var (
	successColor = lipgloss.Color("#10B981") // Green
	warningColor = lipgloss.Color("#F59E0B") // Amber
	errorColor   = lipgloss.Color("#EF4444") // Red
	titleColor   = lipgloss.Color("#3B82F6") // Blue
)

// ConsoleReporter writes success lines to Out and warnings and failures to Err.
type ConsoleReporter struct {
	Out io.Writer
	Err io.Writer

	color   bool
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	title   lipgloss.Style
}

// NewConsoleReporter creates a reporter. Styles are only applied when color is
// true.
func NewConsoleReporter(out, errOut io.Writer, color bool) *ConsoleReporter {
	r := lipgloss.NewRenderer(out)
	return &ConsoleReporter{
		Out:     out,
		Err:     errOut,
		color:   color,
		success: r.NewStyle().Foreground(successColor),
		warning: r.NewStyle().Foreground(warningColor),
		failure: r.NewStyle().Foreground(errorColor),
		title:   r.NewStyle().Bold(true).Foreground(titleColor),
	}
}

func (c *ConsoleReporter) render(s lipgloss.Style, msg string) string {
	if !c.color {
		return msg
	}
	return s.Render(msg)
}

// Success prints "✓ msg".
func (c *ConsoleReporter) Success(msg string) {
	fmt.Fprintln(c.Out, c.render(c.success, "✓ "+msg))
}

// Warning prints "⚠ msg".
func (c *ConsoleReporter) Warning(msg string) {
	fmt.Fprintln(c.Err, c.render(c.warning, "⚠ "+msg))
}

// Failure prints msg in red.
func (c *ConsoleReporter) Failure(msg string) {
	fmt.Fprintln(c.Err, c.render(c.failure, msg))
}

// Title renders a heading for usage output.
func (c *ConsoleReporter) Title(msg string) string {
	return c.render(c.title, msg)
}

type nopReporter struct{}

func (nopReporter) Success(string) {}
func (nopReporter) Warning(string) {}
func (nopReporter) Failure(string) {}
