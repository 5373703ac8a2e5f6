package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-flow/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the game menu.
All connections share one progress record and history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at $XDG_DATA_HOME/nebula/host_key

Examples:
  nebula serve                           # Listen on :23234
  nebula serve --ssh :2222               # Listen on port 2222
  nebula serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from settings, :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from settings, 30)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ssh := app.settings.SSH
	if flagSSHAddr != "" {
		ssh.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		ssh.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		ssh.IdleMinutes = flagIdleTimeout
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := app.logger.WithPrefix("ssh")
	b, err := openBackends(ctx, app.logger)
	if err != nil {
		return err
	}
	defer b.Close()

	cfg := tui.SSHServerConfig{
		Address:     ssh.Address,
		HostKeyPath: ssh.HostKeyPath,
		IdleTimeout: time.Duration(ssh.IdleMinutes) * time.Minute,
		TickRate:    app.settings.TickRate,
	}
	server, err := tui.NewSSHServer(cfg, b.services(logger))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	return server.ListenAndServe(ctx)
}

func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
