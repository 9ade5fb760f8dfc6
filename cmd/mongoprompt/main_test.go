// cmd/mongoprompt/main_test.go
package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/mongo-prompt/internal/config"
)

func TestApplyOverrides_OnlyExplicitKeys(t *testing.T) {
	cfg := config.Default()
	cfg.Mongo.Database = "fromfile"

	v := viper.New()
	v.Set("uri", "mongodb://node2:27017")
	v.Set("watch-ms", 500)
	v.Set("color", true)

	applyOverrides(&cfg, v)

	assert.Equal(t, "mongodb://node2:27017", cfg.Mongo.URI)
	assert.Equal(t, "fromfile", cfg.Mongo.Database)
	assert.Equal(t, 500, cfg.Watch.IntervalMs)
	assert.True(t, cfg.Style.Color)
	assert.Equal(t, config.DefaultTimeoutMs, cfg.Mongo.TimeoutMs)
}

func TestApplyOverrides_Env(t *testing.T) {
	t.Setenv("MONGOPROMPT_DB", "admin")

	v := viper.New()
	v.SetEnvPrefix("mongoprompt")
	v.AutomaticEnv()

	cfg := config.Default()
	applyOverrides(&cfg, v)

	assert.Equal(t, "admin", cfg.Mongo.Database)
}

func TestRun_InvalidConfig(t *testing.T) {
	v := viper.New()
	v.Set("uri", "http://nope")

	var out, errOut bytes.Buffer
	err := run(context.Background(), v, &out, &errOut)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Empty(t, out.String())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	l, err := newLogger("info", &buf)
	require.NoError(t, err)
	l.Info("hello")
	assert.Contains(t, buf.String(), "hello")

	_, err = newLogger("loud", &buf)
	assert.Error(t, err)
}

func TestRedactURI(t *testing.T) {
	assert.Equal(t, "mongodb://***@node1:27017/admin", redactURI("mongodb://user:p@ss@node1:27017/admin"))
	assert.Equal(t, "mongodb://node1:27017", redactURI("mongodb://node1:27017"))
	assert.Equal(t, "mongodb+srv://***@c0.example.net", redactURI("mongodb+srv://u:p@c0.example.net"))
	assert.Equal(t, "garbage", redactURI("garbage"))
}
