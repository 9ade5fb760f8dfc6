// internal/mongo/client.go
package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/tamzrod/mongo-prompt/internal/prompt"
)

// commandRunner is the one driver call the handle needs.
// *mongo.Database satisfies it.
type commandRunner interface {
	RunCommand(ctx context.Context, runCommand interface{}, opts ...*options.RunCmdOptions) *mongo.SingleResult
}

// Client implements prompt.Handle over the official MongoDB driver.
// It is introspection-only: every call is a read-only admin command.
type Client struct {
	client  *mongo.Client
	db      commandRunner
	name    string
	timeout time.Duration
	logger  *zap.Logger
}

// Config is minimal connection config.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
	// Direct pins the connection to the addressed member, so the prompt
	// describes that node rather than whichever member the driver selects.
	Direct bool
	Logger *zap.Logger
}

// New creates a connected client and pings once (fail fast at startup).
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo client: uri required")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo client: database required")
	}

	opts := options.Client().ApplyURI(cfg.URI).SetAppName("mongoprompt")
	if cfg.Direct {
		opts.SetDirect(true)
	}
	if cfg.Timeout > 0 {
		opts.SetConnectTimeout(cfg.Timeout)
		opts.SetServerSelectionTimeout(cfg.Timeout)
	}

	mc, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "mongo client: connect")
	}

	c := &Client{
		client:  mc,
		db:      mc.Database(cfg.Database),
		name:    cfg.Database,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	pctx, cancel := c.commandContext(ctx)
	defer cancel()
	if err := mc.Ping(pctx, readpref.PrimaryPreferred()); err != nil {
		_ = mc.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo client: ping")
	}

	c.logger.Debug("connected", zap.String("db", cfg.Database), zap.Bool("direct", cfg.Direct))
	return c, nil
}

// Close disconnects the underlying driver client.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

// ---- prompt.Handle interface ----

func (c *Client) Version(ctx context.Context) (string, error) {
	var res buildInfoResult
	if err := c.run(ctx, "buildInfo", &res); err != nil {
		return "", err
	}
	return res.Version, nil
}

func (c *Client) ServerStatus(ctx context.Context) (prompt.ServerStatus, error) {
	var res serverStatusResult
	if err := c.run(ctx, "serverStatus", &res); err != nil {
		return prompt.ServerStatus{}, err
	}
	return prompt.ServerStatus{Host: res.Host}, nil
}

func (c *Client) IsMaster(ctx context.Context) (prompt.IsMasterResult, error) {
	var res isMasterResult
	if err := c.run(ctx, "isMaster", &res); err != nil {
		return prompt.IsMasterResult{}, err
	}
	return res.toPrompt(), nil
}

// String returns the current database name.
func (c *Client) String() string {
	return c.name
}

// ---- internal helpers ----

func (c *Client) commandContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) run(ctx context.Context, name string, out interface{}) error {
	if c == nil || c.db == nil {
		return errors.New("mongo client: not connected")
	}

	cctx, cancel := c.commandContext(ctx)
	defer cancel()

	start := time.Now()
	err := c.db.RunCommand(cctx, bson.D{{Key: name, Value: 1}}).Decode(out)
	c.logger.Debug("command",
		zap.String("cmd", name),
		zap.Duration("took", time.Since(start)),
		zap.Error(err))
	if err != nil {
		return errors.Wrapf(err, "mongo: %s", name)
	}
	return nil
}
