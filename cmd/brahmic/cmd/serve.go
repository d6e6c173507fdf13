package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	"github.com/brahmic-lang/brahmic/internal/playground"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket playground server",
	Long: `Starts an HTTP server with a websocket endpoint that transpiles
and runs Tenglish programs sent by connected clients.

Endpoints:
  GET /healthz   liveness probe
  WS  /ws        JSON messages {"type": "transpile"|"run", "payload": {"source": "..."}}`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8089)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = cfg.GetString("server.addr", ":8089")
	}

	srv, err := playground.New(playground.Config{
		Addr:   addr,
		Logger: corelog.GetDefault(),
	})
	if err != nil {
		return err
	}

	srv.StartAsync()

	// Block until interrupted, then drain connections.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	timeout := cfg.GetDuration("server.shutdown_timeout", 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return srv.Stop(ctx)
}
