package cmd

import (
	"github.com/rustyeddy/breakeven/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive calculator in the terminal",
	Long: `Adjust the inputs with the keyboard and watch the breakeven win rate
and both curves update.

Keys:
  ↑/↓ or j/k   select field
  ←/→ or h/l   decrease / increase
  H / L        decrease / increase x10
  u            toggle fee unit
  m            show the breakeven matrix
  r            reset
  q            quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(scenarioInput(cmd))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	addScenarioFlags(tuiCmd, true)
}
