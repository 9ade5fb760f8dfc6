// internal/poller/poller_test.go
package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tamzrod/mongo-prompt/internal/prompt"
)

type fakeHandle struct {
	fail bool
}

func (f *fakeHandle) Version(ctx context.Context) (string, error) {
	if f.fail {
		return "", errors.New("fail version")
	}
	return "6.0.5", nil
}

func (f *fakeHandle) ServerStatus(ctx context.Context) (prompt.ServerStatus, error) {
	return prompt.ServerStatus{Host: "h1:27017"}, nil
}

func (f *fakeHandle) IsMaster(ctx context.Context) (prompt.IsMasterResult, error) {
	return prompt.IsMasterResult{}, nil
}

func (f *fakeHandle) String() string { return "test" }

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{}, nil)
	assert.Error(t, err)

	_, err = New(Config{Interval: -time.Second}, &fakeHandle{})
	assert.Error(t, err)

	_, err = New(Config{}, &fakeHandle{})
	assert.NoError(t, err)
}

func TestPollOnce_Success(t *testing.T) {
	p, err := New(Config{}, &fakeHandle{})
	require.NoError(t, err)

	res := p.PollOnce(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, "mongo-v6.0.5@h1:27017 (db:test)> ", res.Prompt())
	assert.False(t, res.At.IsZero())
}

func TestPollOnce_Failure(t *testing.T) {
	p, err := New(Config{}, &fakeHandle{fail: true})
	require.NoError(t, err)

	res := p.PollOnce(context.Background())
	require.Error(t, res.Err)
	assert.Empty(t, res.Prompt())
}

func TestRun_ZeroIntervalRendersOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	p, err := New(Config{}, &fakeHandle{})
	require.NoError(t, err)

	out := make(chan PollResult, 2)
	p.Run(context.Background(), out)
	close(out)

	var n int
	for range out {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	p, err := New(Config{Interval: 5 * time.Millisecond}, &fakeHandle{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan PollResult)
	done := make(chan struct{})

	go func() {
		defer close(done)
		p.Run(ctx, out)
	}()

	for i := 0; i < 3; i++ {
		select {
		case res := <-out:
			require.NoError(t, res.Err)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for render %d", i)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestRun_CancelledContextStillDeliversFirstRender(t *testing.T) {
	defer goleak.VerifyNone(t)

	p, err := New(Config{}, &fakeHandle{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 200; i++ {
		out := make(chan PollResult, 2)
		p.Run(ctx, out)
		close(out)

		var n int
		for range out {
			n++
		}
		require.Equal(t, 1, n, "iteration %d", i)
	}
}

func TestRun_CancelUnblocksPendingSend(t *testing.T) {
	defer goleak.VerifyNone(t)

	p, err := New(Config{Interval: time.Millisecond}, &fakeHandle{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan PollResult)
	done := make(chan struct{})

	go func() {
		defer close(done)
		p.Run(ctx, out)
	}()

	<-out // first render; later ticks are never read
	time.Sleep(20 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run blocked on send after cancel")
	}
}
