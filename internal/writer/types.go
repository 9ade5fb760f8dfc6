// internal/writer/types.go
package writer

import (
	"io"

	"github.com/tamzrod/mongo-prompt/internal/poller"
	"github.com/tamzrod/mongo-prompt/internal/status"
)

// Styler decorates the bracketed role label. The rest of the prompt is
// written verbatim.
type Styler interface {
	Label(r status.Role, label string) string
}

// Plan is the fully-built delivery plan.
type Plan struct {
	Out io.Writer

	// Fallback is written in place of a failed render.
	Fallback string

	// Newline terminates every prompt (watch mode).
	Newline bool

	// Styler is optional; nil writes plain text.
	Styler Styler
}

// Writer writes poll snapshots to the terminal.
type Writer interface {
	Write(res poller.PollResult) error
}
