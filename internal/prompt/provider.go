// internal/prompt/provider.go
package prompt

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/mongo-prompt/internal/status"
)

// Provider is the callback a host shell invokes before each prompt render.
type Provider func() string

type ProviderOptions struct {
	// Fallback is returned when a render fails. Empty means "> ".
	Fallback string
	// Timeout bounds one render. Zero means no deadline.
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewProvider binds a handle to the no-argument prompt contract.
// The contract has no error channel, so failures are logged and the
// fallback prompt is returned instead.
func NewProvider(h Handle, opts ProviderOptions) Provider {
	fallback := opts.Fallback
	if fallback == "" {
		fallback = status.Terminator
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func() string {
		ctx := context.Background()
		if opts.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
			defer cancel()
		}

		s, err := Format(ctx, h)
		if err != nil {
			logger.Error("prompt render failed",
				zap.String("db", h.String()),
				zap.Error(err))
			return fallback
		}
		return s
	}
}
