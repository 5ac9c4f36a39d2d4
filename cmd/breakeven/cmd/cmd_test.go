package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/breakeven/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command. Commands share package state, so these
// tests do not run in parallel.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "breakeven version "+version)
}

func TestMatrixCommand(t *testing.T) {
	out, err := run(t, "matrix")
	require.NoError(t, err)
	assert.Contains(t, out, "RRR 1")
	assert.Contains(t, out, "RRR 10")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "-100.00%")
	assert.Contains(t, out, "1000.00%")
	assert.Contains(t, out, "Green: positive expectancy")
}

func TestBreakevenCommand(t *testing.T) {
	out, err := run(t, "breakeven", "--rr", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "risk-reward ratio of 1:1")
	assert.Contains(t, out, "you must win at least 50.00%")
}

func TestBreakevenCommand_Pips(t *testing.T) {
	out, err := run(t, "breakeven", "--rr", "3", "--fee", "5", "--unit", "pips")
	require.NoError(t, err)
	assert.Contains(t, out, "Fees as a percentage: 0.05%")
	assert.Contains(t, out, "you must win at least 25.05%")
}

func TestBreakevenCommand_PipAlias(t *testing.T) {
	out, err := run(t, "breakeven", "--rr", "3", "--fee", "5", "--unit", "pip")
	require.NoError(t, err)
	assert.Contains(t, out, "Fees as a percentage: 0.05%")
}

func TestCurveCommand_StakeTooHigh(t *testing.T) {
	_, err := run(t, "curve", "euro", "--rr", "10", "--stake", "1e307", "--trades", "1000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "above maximum")
}

func TestScenarioCommand_JSON(t *testing.T) {
	out, err := run(t, "scenario", "--json", "--rr", "3", "--fee", "0", "--unit", "percent", "--stake", "10", "--trades", "5")
	require.NoError(t, err)

	var rep scenario.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.InDelta(t, 25.0, rep.BreakevenPct, 1e-9)
	assert.Len(t, rep.ProfitCurve.Points, 100)
	assert.InDelta(t, 300.0/100*10*5, rep.EuroCurve.Points[99].Value, 1e-9)
	assert.Len(t, rep.BreakevenMatrix.Cells, 10)
}

func TestCurveCommand_InvalidInput(t *testing.T) {
	_, err := run(t, "curve", "euro", "--trades", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scenario.ErrInvalidInput))
}

func TestCurveCommand_Profit(t *testing.T) {
	out, err := run(t, "curve", "profit", "--rr", "2", "--every", "33")
	require.NoError(t, err)
	assert.Contains(t, out, "Average gain per trade")
	assert.Contains(t, out, "-100.00%")
	assert.Contains(t, out, "200.00%")
}

func TestExportCommand_CSV(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", "--format", "csv", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported report")

	for _, name := range []string{"reports.csv", "matrix.csv", "curves.csv"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakeven.yaml")

	out, err := run(t, "config", "init", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")
	assert.FileExists(t, path)

	out, err = run(t, "config", "validate", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")
	assert.Contains(t, out, "RRR 2, fee 0 percent, stake €100.00, 100 trades")
}
