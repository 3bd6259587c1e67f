package server

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockService struct {
	started atomic.Bool
	stopped atomic.Bool
	startFn func() error
	onStop  func()
}

func (m *mockService) Start() error {
	m.started.Store(true)
	if m.startFn != nil {
		return m.startFn()
	}
	for !m.stopped.Load() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func (m *mockService) Stop() {
	if m.onStop != nil {
		m.onStop()
	}
	m.stopped.Store(true)
}

func waitStarted(t *testing.T, svcs ...*mockService) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		all := true
		for _, s := range svcs {
			all = all && s.started.Load()
		}
		if all {
			return
		}
		select {
		case <-deadline:
			t.Fatal("services did not start in time")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func TestLifecycleStartsAndStopsServicesInReverse(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))

	var mu sync.Mutex
	var order []string
	telnet := &mockService{onStop: func() { mu.Lock(); order = append(order, "telnet"); mu.Unlock() }}
	mcp := &mockService{onStop: func() { mu.Lock(); order = append(order, "mcp"); mu.Unlock() }}
	lc.Add("telnet", telnet)
	lc.Add("mcp", mcp)
	assert.Equal(t, []string{"telnet", "mcp"}, lc.Names())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- lc.Run(ctx) }()

	waitStarted(t, telnet, mcp)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}

	assert.True(t, telnet.stopped.Load())
	assert.True(t, mcp.stopped.Load())
	assert.Equal(t, []string{"mcp", "telnet"}, order)
}

func TestLifecycleReturnsServiceFailure(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	boom := errors.New("bind: address already in use")
	failing := &mockService{startFn: func() error { return boom }}
	healthy := &mockService{}
	lc.Add("healthy", healthy)
	lc.Add("failing", failing)

	done := make(chan error, 1)
	go func() { done <- lc.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "service failing")
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}
	assert.True(t, healthy.stopped.Load())
}

func TestLifecycleNoServices(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	assert.Error(t, lc.Run(context.Background()))
}

func TestFuncService(t *testing.T) {
	started := false
	stopped := false

	svc := &FuncService{
		StartFn: func() error {
			started = true
			return nil
		},
		StopFn: func() {
			stopped = true
		},
	}

	assert.NoError(t, svc.Start())
	assert.True(t, started)

	svc.Stop()
	assert.True(t, stopped)
}
