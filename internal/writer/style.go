// internal/writer/style.go
package writer

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tamzrod/mongo-prompt/internal/status"
)

// Role colors.
var (
	PrimaryColor   = lipgloss.Color("2") // green: writable
	SecondaryColor = lipgloss.Color("3") // yellow
	ArbiterColor   = lipgloss.Color("8") // grey: holds no data
)

// Readline non-printing markers. Bash emits these for \[ and \] in PS1.
const (
	ReadlineIgnoreStart = "\x01"
	ReadlineIgnoreEnd   = "\x02"
)

type roleStyler struct {
	primary   lipgloss.Style
	secondary lipgloss.Style
	arbiter   lipgloss.Style
	readline  bool
}

// NewRoleStyler colors role labels with plain ANSI codes. The profile is
// forced because prompts are usually captured by the shell, not a TTY.
//
// Raw escapes suit the mongo shell and tmux status lines. A bash or zsh
// PS1 hook needs readline set, which wraps each escape sequence in
// \x01..\x02 so line-width accounting skips it.
func NewRoleStyler(out io.Writer, readline bool) Styler {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI)

	return &roleStyler{
		primary:   r.NewStyle().Foreground(PrimaryColor).Bold(true),
		secondary: r.NewStyle().Foreground(SecondaryColor),
		arbiter:   r.NewStyle().Foreground(ArbiterColor),
		readline:  readline,
	}
}

func (s *roleStyler) Label(role status.Role, label string) string {
	var out string
	switch role {
	case status.RolePrimary:
		out = s.primary.Render(label)
	case status.RoleSecondary:
		out = s.secondary.Render(label)
	default:
		out = s.arbiter.Render(label)
	}

	if s.readline {
		return markNonPrinting(out, label)
	}
	return out
}

// markNonPrinting wraps whatever surrounds label in readline ignore markers.
func markNonPrinting(styled, label string) string {
	i := strings.Index(styled, label)
	if i < 0 || label == "" {
		return styled
	}
	pre, post := styled[:i], styled[i+len(label):]

	var b strings.Builder
	if pre != "" {
		b.WriteString(ReadlineIgnoreStart + pre + ReadlineIgnoreEnd)
	}
	b.WriteString(label)
	if post != "" {
		b.WriteString(ReadlineIgnoreStart + post + ReadlineIgnoreEnd)
	}
	return b.String()
}
