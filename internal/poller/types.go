// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/mongo-prompt/internal/prompt"
)

// PollResult is a snapshot produced by one render cycle.
type PollResult struct {
	At time.Time

	// Line holds the prompt parts; zero when Err is set.
	Line prompt.Line

	Err error // non-nil means the render failed
}

// Prompt returns the rendered string, empty on failure.
func (r PollResult) Prompt() string {
	if r.Err != nil {
		return ""
	}
	return r.Line.String()
}
