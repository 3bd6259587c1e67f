// Package telnet serves the JSON line protocol over plain TCP. Any
// telnet-compatible client works; each connection is handed to a
// SessionHandler in its own goroutine.
package telnet

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/glyphspeak/internal/config"
)

// SessionHandler runs the request loop for a single client.
type SessionHandler interface {
	HandleSession(ctx context.Context, conn *Conn) error
}

// Acceptor listens on a TCP port and dispatches each connection to a
// SessionHandler.
type Acceptor struct {
	cfg     config.TelnetConfig
	handler SessionHandler
	logger  *zap.Logger

	listener net.Listener
	wg       sync.WaitGroup
	quit     chan struct{}
	mu       sync.Mutex
	running  bool
	active   atomic.Int64
	served   atomic.Int64
}

// NewAcceptor creates an acceptor with the given configuration.
//
// Precondition: cfg must have a valid port; handler and logger must be non-nil.
// Postcondition: Returns an Acceptor ready to be started with ListenAndServe.
func NewAcceptor(cfg config.TelnetConfig, handler SessionHandler, logger *zap.Logger) *Acceptor {
	return &Acceptor{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		quit:    make(chan struct{}),
	}
}

// ListenAndServe accepts connections until Stop is called.
//
// Precondition: The acceptor must not already be running.
// Postcondition: The listener is closed when this method returns.
func (a *Acceptor) ListenAndServe() error {
	start := time.Now()

	listener, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.cfg.Addr(), err)
	}

	a.mu.Lock()
	a.listener = listener
	a.running = true
	a.mu.Unlock()

	a.logger.Info("line server listening",
		zap.String("addr", listener.Addr().String()),
		zap.Int("max_line_bytes", a.cfg.MaxLineBytes),
		zap.Duration("startup", time.Since(start)),
	)

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-a.quit:
				return nil
			default:
				a.logger.Error("accepting connection", zap.Error(err))
				continue
			}
		}

		a.wg.Add(1)
		go a.handleConn(conn)
	}
}

func (a *Acceptor) handleConn(raw net.Conn) {
	defer a.wg.Done()
	start := time.Now()
	addr := raw.RemoteAddr().String()

	a.active.Add(1)
	defer a.active.Add(-1)
	a.served.Add(1)

	a.logger.Info("client connected",
		zap.String("remote_addr", addr),
		zap.Int64("active", a.active.Load()),
	)

	conn := NewConn(raw, a.cfg.ReadTimeout, a.cfg.WriteTimeout, a.cfg.MaxLineBytes)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A blocked ReadLine only returns once the socket closes.
	go func() {
		select {
		case <-a.quit:
			cancel()
			_ = conn.Close()
		case <-ctx.Done():
		}
	}()

	if err := a.handler.HandleSession(ctx, conn); err != nil {
		a.logger.Debug("session ended",
			zap.String("remote_addr", addr),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return
	}
	a.logger.Info("session ended cleanly",
		zap.String("remote_addr", addr),
		zap.Duration("duration", time.Since(start)),
	)
}

// Stop closes the listener and every open session, then waits for the
// session goroutines to exit.
//
// Postcondition: All connections are closed and goroutines have exited.
func (a *Acceptor) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	close(a.quit)
	if a.listener != nil {
		a.listener.Close()
	}
	a.mu.Unlock()

	a.wg.Wait()
	a.logger.Info("line server stopped", zap.Int64("sessions_served", a.served.Load()))
}

// Addr returns the actual listening address, or empty string if not yet listening.
func (a *Acceptor) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener != nil {
		return a.listener.Addr().String()
	}
	return ""
}

// IsRunning reports whether the acceptor is accepting connections.
func (a *Acceptor) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// ActiveSessions returns the number of connected clients.
func (a *Acceptor) ActiveSessions() int64 {
	return a.active.Load()
}
