package export

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/breakeven/risk"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// WriteRecord stores a record in a single transaction.
func (j *SQLite) WriteRecord(r Record) (err error) {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	rep := r.Report
	_, err = tx.Exec(`
		INSERT INTO reports
		(report_id, created_at, risk_reward, fee_unit, fee_value, fee_percent, stake, trades, breakeven_percent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt, rep.Params.RiskReward, string(rep.Input.FeeUnit), rep.Input.FeeValue,
		rep.Params.FeePct, rep.Params.Stake, rep.Params.Trades, rep.BreakevenPct,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	cells, err := tx.Prepare(`
		INSERT INTO matrix_cells (report_id, risk_reward, win_rate, profit_percent, category)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer cells.Close()
	for _, row := range rep.BreakevenMatrix.Cells {
		for _, c := range row {
			if _, err = cells.Exec(r.ID, c.RiskReward, c.WinRate, c.Value, string(c.Category)); err != nil {
				return fmt.Errorf("insert matrix cell: %w", err)
			}
		}
	}

	points, err := tx.Prepare(`
		INSERT INTO curve_points (report_id, curve, idx, win_rate, value)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer points.Close()
	for name, c := range map[string]risk.Curve{CurveProfit: rep.ProfitCurve, CurveEuro: rep.EuroCurve} {
		for i, p := range c.Points {
			if _, err = points.Exec(r.ID, name, i, p.WinRate, p.Value); err != nil {
				return fmt.Errorf("insert %s curve point: %w", name, err)
			}
		}
	}

	return tx.Commit()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
