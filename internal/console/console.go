// Package console writes styled status lines for the txtclean CLI.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme defines the styles and icons of status lines.
type Theme struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   Icons
}

// Icons prefix each kind of status line.
type Icons struct {
	Pass string
	Fail string
	Warn string
	Info string
}

// ColorTheme returns the default color theme. Its color profile is
// detected from w, the writer the theme renders for.
func ColorTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Success: r.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   r.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    r.NewStyle().Bold(true),
		Icons:   Icons{Pass: "✓", Fail: "✗", Warn: "⚠", Info: "●"},
	}
}

// MonoTheme returns a theme without colors or non-ASCII icons, for pipes,
// logs and NO_COLOR.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Success: plain,
		Warning: plain,
		Error:   plain,
		Muted:   plain,
		Bold:    plain,
		Icons:   Icons{Pass: "ok:", Fail: "error:", Warn: "warning:", Info: "-"},
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Reporter writes status lines to w.
type Reporter struct {
	w     io.Writer
	theme Theme
	debug bool
	quiet bool
}

// New creates a reporter. Colors are used only when color is true and w is
// a terminal.
func New(w io.Writer, color, debug, quiet bool) *Reporter {
	theme := MonoTheme()
	if color && IsTerminal(w) {
		theme = ColorTheme(w)
	}
	return &Reporter{w: w, theme: theme, debug: debug, quiet: quiet}
}

// WithTheme replaces the reporter's theme.
func (r *Reporter) WithTheme(t Theme) *Reporter {
	r.theme = t
	return r
}

// Success reports a completed step. Suppressed in quiet mode.
func (r *Reporter) Success(format string, args ...any) {
	if r.quiet {
		return
	}
	r.line(r.theme.Success, r.theme.Icons.Pass, fmt.Sprintf(format, args...))
}

// Warn reports a recoverable problem.
func (r *Reporter) Warn(format string, args ...any) {
	r.line(r.theme.Warning, r.theme.Icons.Warn, fmt.Sprintf(format, args...))
}

// Error reports a failure.
func (r *Reporter) Error(format string, args ...any) {
	r.line(r.theme.Error, r.theme.Icons.Fail, fmt.Sprintf(format, args...))
}

// Hint prints muted guidance below an error or warning.
func (r *Reporter) Hint(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.w, "  %s\n", r.theme.Muted.Render(msg))
}

// Debugf prints a debug line when debugging is enabled.
func (r *Reporter) Debugf(format string, args ...any) {
	if !r.debug {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.w, "%s\n", r.theme.Muted.Render("[debug] "+msg))
}

// Block writes a titled block of pre-rendered text, such as a preview
// table. Suppressed in quiet mode.
func (r *Reporter) Block(title, body string) {
	if r.quiet || body == "" {
		return
	}
	fmt.Fprintln(r.w, r.theme.Bold.Render(title))
	fmt.Fprint(r.w, body)
	if !strings.HasSuffix(body, "\n") {
		fmt.Fprintln(r.w)
	}
}

func (r *Reporter) line(style lipgloss.Style, icon, msg string) {
	fmt.Fprintf(r.w, "%s %s\n", style.Render(icon), msg)
}
