// cmd/mongoprompt/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tamzrod/mongo-prompt/internal/config"
	"github.com/tamzrod/mongo-prompt/internal/poller"
	"github.com/tamzrod/mongo-prompt/internal/writer"
)

var buildVersion = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Version: buildVersion,

	Use:   "mongoprompt",
	Short: "Print a MongoDB shell prompt describing the connected server",
	Long: `mongoprompt renders "mongo-v<version>@<host> (db:<name>)" followed by the
replica-set role of the connected member, e.g. " [rs0:PRIMARY]> ".
Run it from a shell prompt hook; with --watch-ms it re-renders on a timer.`,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), viper.GetViper(), os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "specifies a yaml config file to load")

	configFlags := pflag.NewFlagSet("", pflag.ContinueOnError)
	configFlags.String("uri", config.DefaultURI, "the mongodb connection string")
	configFlags.String("db", config.DefaultDatabase, "the current database name")
	configFlags.Int("timeout-ms", config.DefaultTimeoutMs, "per-command timeout in milliseconds")
	configFlags.Bool("direct", true, "describe the addressed member rather than the selected one")
	configFlags.Int("watch-ms", 0, "re-render every n milliseconds (0 renders once)")
	configFlags.Bool("color", false, "color the replica-set role label (raw ANSI, for the mongo shell or tmux)")
	configFlags.Bool("readline", false, "wrap color escapes in readline markers, for bash/zsh PS1")
	configFlags.String("fallback", config.DefaultFallback, "prompt printed when the server cannot be queried")
	configFlags.String("log-level", config.DefaultLogLevel, "the log level to run at")
	rootCmd.Flags().AddFlagSet(configFlags)

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.SetEnvPrefix("mongoprompt")
	viper.AutomaticEnv()

	_ = viper.BindPFlags(configFlags)
}

// applyOverrides layers flags and MONGOPROMPT_* environment onto the file config.
// Only keys that were explicitly set win over the file.
func applyOverrides(cfg *config.Config, v *viper.Viper) {
	if v.IsSet("uri") {
		cfg.Mongo.URI = v.GetString("uri")
	}
	if v.IsSet("db") {
		cfg.Mongo.Database = v.GetString("db")
	}
	if v.IsSet("timeout-ms") {
		cfg.Mongo.TimeoutMs = v.GetInt("timeout-ms")
	}
	if v.IsSet("direct") {
		cfg.Mongo.Direct = v.GetBool("direct")
	}
	if v.IsSet("watch-ms") {
		cfg.Watch.IntervalMs = v.GetInt("watch-ms")
	}
	if v.IsSet("color") {
		cfg.Style.Color = v.GetBool("color")
	}
	if v.IsSet("readline") {
		cfg.Style.Readline = v.GetBool("readline")
	}
	if v.IsSet("fallback") {
		cfg.Style.Fallback = v.GetString("fallback")
	}
	if v.IsSet("log-level") {
		cfg.Log.Level = v.GetString("log-level")
	}
}

func newLogger(level string, errOut io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(errOut),
		lvl,
	)
	return zap.New(core), nil
}

func run(ctx context.Context, v *viper.Viper, out, errOut io.Writer) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyOverrides(cfg, v)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	logger, err := newLogger(cfg.Log.Level, errOut)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// --------------------
	// Delivery
	// --------------------

	plan, err := writer.BuildPlan(*cfg, out)
	if err != nil {
		return err
	}
	w := writer.New(plan)

	// --------------------
	// Source
	// --------------------

	p, closePoller, err := poller.Build(ctx, *cfg, logger)
	if err != nil {
		// the shell still needs a prompt
		_ = w.Write(poller.PollResult{Err: err})
		logger.Error("mongo connect failed", zap.String("uri", redactURI(cfg.Mongo.URI)), zap.Error(err))
		return err
	}
	defer func() {
		if err := closePoller(); err != nil {
			logger.Warn("mongo disconnect failed", zap.Error(err))
		}
	}()

	results := make(chan poller.PollResult)
	go func() {
		defer close(results)
		p.Run(ctx, results)
	}()

	var lastErr error
	for res := range results {
		lastErr = w.Write(res)
		if lastErr != nil {
			logger.Error("prompt render failed", zap.String("db", cfg.Mongo.Database), zap.Error(lastErr))
		}
	}

	// watch mode exits on signal; only a single-shot failure is fatal
	if cfg.Watch.IntervalMs > 0 {
		return nil
	}
	return lastErr
}

// redactURI strips credentials from a connection string for logging.
func redactURI(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	if at := strings.LastIndex(strings.SplitN(rest, "/", 2)[0], "@"); at >= 0 {
		rest = "***@" + rest[at+1:]
	}
	return scheme + "://" + rest
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "mongoprompt:", err)
		stop()
		os.Exit(1)
	}
}
