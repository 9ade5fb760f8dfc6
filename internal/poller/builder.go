// internal/poller/builder.go
package poller

import (
	"context"
	"time"

	"go.uber.org/zap"

	cfg "github.com/tamzrod/mongo-prompt/internal/config"
	pmongo "github.com/tamzrod/mongo-prompt/internal/mongo"
)

// Build constructs a Poller and wires the MongoDB client lifecycle.
// The driver owns reconnection; the poller never re-dials.
// No retries, no loops, no semantics.
func Build(ctx context.Context, c cfg.Config, logger *zap.Logger) (*Poller, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := time.Duration(c.Mongo.TimeoutMs) * time.Millisecond

	// initial client (fail fast at startup)
	client, err := pmongo.New(ctx, pmongo.Config{
		URI:      c.Mongo.URI,
		Database: c.Mongo.Database,
		Timeout:  timeout,
		Direct:   c.Mongo.Direct,
		Logger:   logger.Named("mongo"),
	})
	if err != nil {
		return nil, nil, err
	}

	p, err := New(
		Config{
			Interval: time.Duration(c.Watch.IntervalMs) * time.Millisecond,
		},
		client,
	)
	if err != nil {
		_ = client.Close(context.Background())
		return nil, nil, err
	}

	closeFn := func() error {
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return client.Close(cctx)
	}

	return p, closeFn, nil
}
