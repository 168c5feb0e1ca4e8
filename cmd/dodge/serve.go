package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  time.Duration
	flagRateLimit    bool
	flagRateBurst    int
	flagRateInterval time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dodge SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game. Connections must request
a PTY, and each remote host may only open a few sessions in a short time.

Flags left unset are read from the environment (or a .env file):
  DODGE_SSH_ADDR      - listen address
  DODGE_HOST_KEY      - host key path
  DODGE_IDLE_TIMEOUT  - idle timeout, e.g. 30m

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  dodge serve                           # Listen on :23234 with auto-generated key
  dodge serve --ssh :2222               # Listen on port 2222
  dodge serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Idle timeout before disconnecting")
	serveCmd.Flags().BoolVar(&flagRateLimit, "rate-limit", defaults.RateLimit.Enabled, "Limit new sessions per remote host")
	serveCmd.Flags().IntVar(&flagRateBurst, "rate-burst", defaults.RateLimit.Burst, "Sessions a host may open at once")
	serveCmd.Flags().DurationVar(&flagRateInterval, "rate-interval", defaults.RateLimit.Interval, "Interval between sessions once the burst is spent")
}

func runServe(cmd *cobra.Command, _ []string) {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	flags := cmd.Flags()
	if !flags.Changed("ssh") {
		flagSSHAddr = config.GetEnv("DODGE_SSH_ADDR", flagSSHAddr)
	}
	if !flags.Changed("host-key") {
		flagHostKey = config.GetEnv("DODGE_HOST_KEY", flagHostKey)
	}
	if !flags.Changed("idle-timeout") {
		flagIdleTimeout = config.GetEnvDuration("DODGE_IDLE_TIMEOUT", flagIdleTimeout)
	}

	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger(os.Stderr, "dodge-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
		RateLimit: tui.RateLimitConfig{
			Enabled:  flagRateLimit,
			Interval: flagRateInterval,
			Burst:    flagRateBurst,
		},
	}

	newSessionGame := func() (tui.Game, error) {
		return newGame(gameCfg, logger)
	}
	server, err := tui.NewSSHServer(cfg, newSessionGame, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting dodge SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		closer.Close()
		os.Exit(1)
	}
}
