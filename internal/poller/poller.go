// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/mongo-prompt/internal/prompt"
)

// Config is the minimal runtime config the poller needs.
type Config struct {
	// Interval between renders. Zero means render once.
	Interval time.Duration
}

// Poller is a dumb, clock-driven renderer.
type Poller struct {
	cfg    Config
	handle prompt.Handle
}

// New creates a poller with immutable config.
func New(cfg Config, h prompt.Handle) (*Poller, error) {
	if h == nil {
		return nil, errors.New("poller: handle required")
	}
	if cfg.Interval < 0 {
		return nil, errors.New("poller: interval must be >= 0")
	}
	return &Poller{cfg: cfg, handle: h}, nil
}

// PollOnce performs exactly one render cycle.
// All-or-nothing: any failed query aborts the cycle.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	res := PollResult{At: time.Now()}

	line, err := prompt.Build(ctx, p.handle)
	if err != nil {
		res.Err = err
		return res
	}

	res.Line = line
	return res
}
