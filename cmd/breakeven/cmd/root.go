package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/breakeven/config"
	"github.com/rustyeddy/breakeven/internal/logger"
	"github.com/rustyeddy/breakeven/report"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Breakeven win rate and expected profit calculator",
	Long: `Breakeven relates win rate, risk-reward ratio and trading fees to the
expected profit of a strategy.

It provides tools for:
  - The breakeven matrix over risk-reward 1..10 and win rate 0..100%
  - The breakeven win rate for a given risk-reward ratio and fee
  - Average gain per trade and total gain over a number of trades
  - Exporting computed reports to CSV or SQLite
  - A stateless HTTP API and an interactive terminal UI

Complete documentation is available at https://github.com/rustyeddy/breakeven`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	cfgFile  string
	logLevel string
	logJSON  bool
	noColor  bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	pf.BoolVar(&logJSON, "log-json", false, "log as JSON instead of console text")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if logJSON {
		c.Log.JSON = true
	}

	err = logger.Setup(logger.Options{
		Level:   c.Log.Level,
		JSON:    c.Log.JSON,
		NoColor: noColor,
		Out:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	cfg = c
	log.Debug().Str("config", cfgFile).Interface("scenario", c.Scenario).Msg("config loaded")
	return nil
}

func renderer(cmd *cobra.Command) *report.Renderer {
	return report.NewRenderer(cmd.OutOrStdout(), !noColor)
}
