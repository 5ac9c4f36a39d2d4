package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/breakeven/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the calculator over HTTP. Every request is independent; query
values that are not given take the configured scenario defaults.

Endpoints:
  GET /healthz
  GET /api/matrix
  GET /api/breakeven?rr=&fee=&unit=
  GET /api/curves/profit?rr=&fee=&unit=
  GET /api/curves/euro?rr=&fee=&unit=&stake=&trades=
  GET /api/scenario?rr=&fee=&unit=&stake=&trades=

Example:
  breakeven serve --addr :9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	read, write, err := cfg.Server.Timeouts()
	if err != nil {
		return err
	}
	if err := cfg.Scenario.Validate(); err != nil {
		return fmt.Errorf("default scenario: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(cfg.Scenario, log.Logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, addr, read, write); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
