// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package ssh serves the handbook over SSH so nobody has to install
// anything to read it. Sessions are anonymous and read-only; the
// viewer only displays embedded content, so there is nothing to
// protect behind auth.
package ssh

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishtea "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"

	"grimm.is/quizdeck/internal/config"
	"grimm.is/quizdeck/internal/errors"
	"grimm.is/quizdeck/internal/handbook"
	qlog "grimm.is/quizdeck/internal/logging"
	"grimm.is/quizdeck/internal/tui"
)

// Server wraps the Wish SSH server
type Server struct {
	srv     *ssh.Server
	content *handbook.Content
	addr    string

	// Internal counters
	activeSessions   int32
	totalConnections uint64
}

// NewServer creates the handbook SSH server from the ssh config block.
func NewServer(cfg *config.Config, content *handbook.Content) (*Server, error) {
	if cfg.SSH == nil || !cfg.SSH.Enabled {
		return nil, errors.New(errors.KindValidation, "ssh server is not enabled")
	}

	srv := &Server{
		content: content,
		addr:    cfg.SSH.Listen,
	}

	// Route Wish logs to our internal logging package.
	// Wish 1.4.x uses MiddlewareWithLogger.
	loggerMiddleware := logging.MiddlewareWithLogger(newAdapter())

	ws, err := wish.NewServer(
		wish.WithAddress(srv.addr),
		wish.WithHostKeyPath(cfg.SSH.HostKey),
		wish.WithMiddleware(
			wishtea.Middleware(srv.sessionHandler),
			activeterm.Middleware(),
			loggerMiddleware,
			srv.measureMiddleware(),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to build ssh server")
	}

	srv.srv = ws
	return srv, nil
}

// sessionHandler hands every session its own viewer. The bubbletea
// middleware feeds the pty size in as WindowSizeMsg, so the model
// needs no session-specific setup.
func (s *Server) sessionHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	return tui.NewModel(s.content), []tea.ProgramOption{tea.WithAltScreen()}
}

// Start starts the SSH server in the background. Use Stop for a clean
// shutdown; ListenAndServe owns the listener.
func (s *Server) Start(ctx context.Context) error {
	qlog.Info("starting handbook ssh server", "addr", s.addr)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			qlog.Error("ssh server error", "err", err)
		}
	}()

	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	qlog.Info("stopping handbook ssh server")
	return s.srv.Shutdown(ctx)
}

// Addr returns the listen address the server was built with.
func (s *Server) Addr() string {
	return s.addr
}

// Stats reports the live session count and the connection total.
func (s *Server) Stats() (active int, total uint64) {
	return int(atomic.LoadInt32(&s.activeSessions)), atomic.LoadUint64(&s.totalConnections)
}

func (s *Server) measureMiddleware() wish.Middleware {
	return func(sh ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			id := uuid.New().String()
			active := atomic.AddInt32(&s.activeSessions, 1)
			atomic.AddUint64(&s.totalConnections, 1)
			qlog.Info("handbook session opened",
				"session", id,
				"user", sess.User(),
				"remote", sess.RemoteAddr().String(),
				"active", active,
			)

			defer func() {
				qlog.Info("handbook session closed",
					"session", id,
					"active", atomic.AddInt32(&s.activeSessions, -1),
				)
			}()

			sh(sess)
		}
	}
}

// adapter adapts quizdeck logging to the wish logging interface
type adapter struct{}

func newAdapter() *adapter {
	return &adapter{}
}

func (a *adapter) Printf(format string, args ...interface{}) {
	// Downgrade generic SSH logs to Debug to reduce spam
	qlog.Debug(fmt.Sprintf("[ssh] "+format, args...))
}
