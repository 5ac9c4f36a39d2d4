package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/breakeven/export"
	"github.com/rustyeddy/breakeven/scenario"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a computed report to CSV or SQLite",
	Long: `Compute a report and write it to CSV files or a SQLite database.

CSV writes reports.csv, matrix.csv and curves.csv into a directory.
SQLite writes the reports, matrix_cells and curve_points tables.

Examples:
  breakeven export --rr 2 --format csv --out ./out
  breakeven export --rr 3 --fee 0.2 --format sqlite --out reports.sqlite`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOut    string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	addScenarioFlags(exportCmd, true)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "export format: csv|sqlite (overrides config)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "CSV directory or SQLite file (overrides config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	rep, err := scenario.Evaluate(scenarioInput(cmd))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	ec := cfg.Export
	if exportFormat != "" {
		ec.Format = export.Format(exportFormat)
	}
	target := ec.Target()
	if exportOut != "" {
		target = exportOut
	}

	w, err := export.Open(ec.Format, target)
	if err != nil {
		return fmt.Errorf("open export: %w", err)
	}

	rec := export.NewRecord(rep)
	if err := w.WriteRecord(rec); err != nil {
		w.Close()
		return fmt.Errorf("write export: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}

	log.Info().Str("id", rec.ID).Str("format", string(ec.Format)).Str("target", target).Msg("report exported")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported report %s to %s\n", rec.ID, target)
	return nil
}
