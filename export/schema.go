package export

const Schema = `
CREATE TABLE IF NOT EXISTS reports (
	report_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	risk_reward REAL NOT NULL,
	fee_unit TEXT NOT NULL,
	fee_value REAL NOT NULL,
	fee_percent REAL NOT NULL,
	stake REAL NOT NULL,
	trades INTEGER NOT NULL,
	breakeven_percent REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS matrix_cells (
	report_id TEXT NOT NULL REFERENCES reports(report_id),
	risk_reward REAL NOT NULL,
	win_rate REAL NOT NULL,
	profit_percent REAL NOT NULL,
	category TEXT NOT NULL,
	PRIMARY KEY (report_id, risk_reward, win_rate)
);

CREATE TABLE IF NOT EXISTS curve_points (
	report_id TEXT NOT NULL REFERENCES reports(report_id),
	curve TEXT NOT NULL,
	idx INTEGER NOT NULL,
	win_rate REAL NOT NULL,
	value REAL NOT NULL,
	PRIMARY KEY (report_id, curve, idx)
);
`
