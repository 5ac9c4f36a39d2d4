package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rustyeddy/breakeven/risk"
)

// File names written inside the CSV export directory.
const (
	ReportsFile = "reports.csv"
	MatrixFile  = "matrix.csv"
	CurvesFile  = "curves.csv"
)

type csvFile struct {
	f *os.File
	w *csv.Writer
}

func createCSV(path string, header []string) (*csvFile, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(fh)
	if err := w.Write(header); err != nil {
		fh.Close()
		return nil, err
	}
	return &csvFile{f: fh, w: w}, nil
}

func (c *csvFile) close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.f.Close()
		return err
	}
	return c.f.Close()
}

// CSV writes one file per table into a directory.
type CSV struct {
	reports *csvFile
	matrix  *csvFile
	curves  *csvFile
}

func NewCSV(dir string) (*CSV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	reports, err := createCSV(filepath.Join(dir, ReportsFile),
		[]string{"report_id", "created_at", "risk_reward", "fee_unit", "fee_value", "fee_percent", "stake", "trades", "breakeven_percent"})
	if err != nil {
		return nil, err
	}
	matrix, err := createCSV(filepath.Join(dir, MatrixFile),
		[]string{"report_id", "risk_reward", "win_rate", "profit_percent", "category"})
	if err != nil {
		reports.close()
		return nil, err
	}
	curves, err := createCSV(filepath.Join(dir, CurvesFile),
		[]string{"report_id", "curve", "idx", "win_rate", "value"})
	if err != nil {
		reports.close()
		matrix.close()
		return nil, err
	}

	return &CSV{reports: reports, matrix: matrix, curves: curves}, nil
}

func (j *CSV) WriteRecord(r Record) error {
	rep := r.Report
	err := j.reports.w.Write([]string{
		r.ID,
		r.CreatedAt.Format(time.RFC3339),
		f(rep.Params.RiskReward),
		string(rep.Input.FeeUnit),
		f(rep.Input.FeeValue),
		f(rep.Params.FeePct),
		f(rep.Params.Stake),
		strconv.Itoa(rep.Params.Trades),
		f(rep.BreakevenPct),
	})
	if err != nil {
		return err
	}

	for _, row := range rep.BreakevenMatrix.Cells {
		for _, c := range row {
			if err := j.matrix.w.Write([]string{r.ID, f(c.RiskReward), f(c.WinRate), f(c.Value), string(c.Category)}); err != nil {
				return err
			}
		}
	}

	for _, cv := range []struct {
		name  string
		curve risk.Curve
	}{
		{CurveProfit, rep.ProfitCurve},
		{CurveEuro, rep.EuroCurve},
	} {
		for i, p := range cv.curve.Points {
			if err := j.curves.w.Write([]string{r.ID, cv.name, strconv.Itoa(i), f(p.WinRate), f(p.Value)}); err != nil {
				return err
			}
		}
	}

	for _, c := range []*csvFile{j.reports, j.matrix, j.curves} {
		c.w.Flush()
		if err := c.w.Error(); err != nil {
			return err
		}
	}
	return nil
}

func (j *CSV) Close() error {
	var first error
	for _, c := range []*csvFile{j.reports, j.matrix, j.curves} {
		if err := c.close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
