package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfind/internal/config"
	"github.com/vovakirdan/tui-pathfind/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve [maze]",
	Short: "Start the pathfind SSH server",
	Long: `Start an SSH server that shows the search viewer to every client.

Each SSH connection gets its own independent run of the configured maze
and heuristic, with the same controls as 'pathfind watch'. B goes back to
a picker over the built-in mazes and the --mazes directory.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pathfind/host_key

Examples:
  pathfind serve                           # Listen on :23235 with auto-generated key
  pathfind serve --ssh :2222               # Listen on port 2222
  pathfind serve corridors --heuristic zero
  pathfind serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh -t localhost -p 23235`,
	Args: cobra.MaximumNArgs(1),
	Run:  runServe,
}

func init() {
	addSearchFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, args []string) {
	a, err := setup(cmd)
	if err != nil {
		exitWithError(err)
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		a.cfg.Serve.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		a.cfg.Serve.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		a.cfg.Serve.IdleTimeoutMinutes = flagIdleTimeout
	}
	if err := a.cfg.Validate(); err != nil {
		exitWithError(err)
	}

	first, err := a.selection(args, a.cfg.Serve.Maze)
	if err != nil {
		exitWithError(err)
	}
	hostKey, err := config.ExpandHome(a.cfg.Serve.HostKeyPath)
	if err != nil {
		exitWithError(err)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     a.cfg.Serve.Address,
		HostKeyPath: hostKey,
		IdleTimeout: a.cfg.Serve.IdleTimeout(),
		First:       first,
		Mazes:       a.allMazes(),
		Watch:       tui.WatchOptions{Delay: a.cfg.Watch.StepDelay()},
		Logger:      a.logger.WithPrefix("pathfind-ssh"),
	})
	if err != nil {
		exitWithError(fmt.Errorf("creating server: %w", err))
	}

	fmt.Printf("Starting pathfind SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh -t localhost -p <port>")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitWithError(fmt.Errorf("server: %w", err))
	}
}
