// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run renders immediately, then once per tick, and emits each PollResult
// on out. With a zero interval it renders once and returns.
// The first result is always delivered, even on a cancelled ctx, so the
// reader must be present. No overlap. No retries.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) {
	out <- p.PollOnce(ctx)
	if p.cfg.Interval == 0 || ctx.Err() != nil {
		return
	}

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.emit(ctx, out) {
				return
			}
		}
	}
}

func (p *Poller) emit(ctx context.Context, out chan<- PollResult) bool {
	res := p.PollOnce(ctx)
	select {
	case <-ctx.Done():
		return false
	case out <- res:
		return true
	}
}
