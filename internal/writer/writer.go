// internal/writer/writer.go
package writer

import (
	"errors"
	"io"

	"github.com/tamzrod/mongo-prompt/internal/poller"
	"github.com/tamzrod/mongo-prompt/internal/prompt"
	"github.com/tamzrod/mongo-prompt/internal/status"
)

type promptWriter struct {
	plan Plan
}

func New(plan Plan) Writer {
	if plan.Fallback == "" {
		plan.Fallback = status.Terminator
	}
	return &promptWriter{plan: plan}
}

// Write delivers one render. A failed render still writes the fallback
// so the host shell has something to show, and the render error is returned.
func (w *promptWriter) Write(res poller.PollResult) error {
	if w.plan.Out == nil {
		return errors.New("writer: no output")
	}

	s := w.plan.Fallback
	if res.Err == nil {
		s = w.render(res.Line)
	}
	if w.plan.Newline {
		s += "\n"
	}

	if _, err := io.WriteString(w.plan.Out, s); err != nil {
		return errors.Join(res.Err, err)
	}
	return res.Err
}

func (w *promptWriter) render(l prompt.Line) string {
	if w.plan.Styler == nil || l.Role == status.RoleStandalone {
		return l.String()
	}
	head, label, tail := status.Split(l.Role, l.SetName)
	return l.Prefix() + head + w.plan.Styler.Label(l.Role, label) + tail
}
