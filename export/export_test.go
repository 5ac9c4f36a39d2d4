package export

import (
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/breakeven/risk"
	"github.com/rustyeddy/breakeven/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(t *testing.T) Record {
	t.Helper()

	in := scenario.Default()
	in.FeeUnit = risk.FeePips
	in.FeeValue = 20
	rep, err := scenario.Evaluate(in)
	require.NoError(t, err)
	return NewRecord(rep)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	a, b := testRecord(t), testRecord(t)
	assert.Len(t, a.ID, 26)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestOpen_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Open("xlsx", t.TempDir())
	assert.Error(t, err)
}

func TestCSVExport(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	w, err := Open(FormatCSV, dir)
	require.NoError(t, err)

	rec := testRecord(t)
	require.NoError(t, w.WriteRecord(rec))
	require.NoError(t, w.Close())

	reports := readCSV(t, filepath.Join(dir, ReportsFile))
	require.Len(t, reports, 2)
	assert.Equal(t, "report_id", reports[0][0])
	assert.Equal(t, rec.ID, reports[1][0])
	assert.Equal(t, "pips", reports[1][3])
	assert.Equal(t, "0.200000", reports[1][5])
	assert.Equal(t, "100", reports[1][7])

	matrix := readCSV(t, filepath.Join(dir, MatrixFile))
	assert.Len(t, matrix, 1+len(risk.MatrixRatios())*len(risk.MatrixWinRates()))
	assert.Equal(t, []string{rec.ID, "1.000000", "50.000000", "0.000000", "zero"}, matrix[1+5])

	curves := readCSV(t, filepath.Join(dir, CurvesFile))
	assert.Len(t, curves, 1+2*risk.CurvePoints)
	assert.Equal(t, CurveProfit, curves[1][1])
	assert.Equal(t, CurveEuro, curves[1+risk.CurvePoints][1])
}

func TestSQLiteExport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "export.db")
	w, err := Open(FormatSQLite, path)
	require.NoError(t, err)

	rec := testRecord(t)
	require.NoError(t, w.WriteRecord(rec))
	require.NoError(t, w.WriteRecord(testRecord(t)))
	require.NoError(t, w.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM reports`).Scan(&n))
	assert.Equal(t, 2, n)

	var (
		feePct    float64
		breakeven float64
		trades    int
	)
	err = db.QueryRow(`SELECT fee_percent, breakeven_percent, trades FROM reports WHERE report_id = ?`, rec.ID).
		Scan(&feePct, &breakeven, &trades)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, feePct, 1e-12)
	assert.InDelta(t, rec.Report.BreakevenPct, breakeven, 1e-12)
	assert.Equal(t, 100, trades)

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM matrix_cells WHERE report_id = ?`, rec.ID).Scan(&n))
	assert.Equal(t, 110, n)

	var category string
	require.NoError(t, db.QueryRow(`SELECT category FROM matrix_cells WHERE report_id = ? AND risk_reward = 1 AND win_rate = 50`, rec.ID).Scan(&category))
	assert.Equal(t, "zero", category)

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM curve_points WHERE report_id = ? AND curve = ?`, rec.ID, CurveEuro).Scan(&n))
	assert.Equal(t, risk.CurvePoints, n)
}

func TestSQLiteExport_DuplicateIDRollsBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "export.db")
	w, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	rec := testRecord(t)
	require.NoError(t, w.WriteRecord(rec))
	assert.Error(t, w.WriteRecord(rec))

	var n int
	require.NoError(t, w.db.QueryRow(`SELECT COUNT(*) FROM curve_points`).Scan(&n))
	assert.Equal(t, 2*risk.CurvePoints, n)
}
