package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/dodge/internal/core"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	RateLimit RateLimitConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    DefaultTickRate,
		RateLimit:   DefaultRateLimitConfig(),
	}
}

// GameFactory creates the game for one connection.
type GameFactory func() (Game, error)

// SSHServer serves an independent game session to every SSH connection.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	newGame GameFactory
	limiter *RateLimiter
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, newGame GameFactory, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dodge-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		newGame: newGame,
		limiter: NewRateLimiter(cfg.RateLimit),
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	// Middlewares run last to first: log, rate limit, require a PTY, play.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.limiter.Middleware(logger),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	game, err := s.newGame()
	if err != nil {
		s.logger.Error("cannot create game", "user", sess.User(), "err", err)
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	model, err := NewModel(game, cfg, s.logger.With("user", sess.User()))
	if err != nil {
		s.logger.Error("cannot start session", "user", sess.User(), "err", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if s.config.RateLimit.Enabled {
		go s.limiter.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
