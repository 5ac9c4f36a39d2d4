package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rustyeddy/breakeven/pkg/id"
	"github.com/rustyeddy/breakeven/scenario"
)

// Record is a computed report tagged for export.
type Record struct {
	ID        string
	CreatedAt time.Time
	Report    scenario.Report
}

// NewRecord stamps rep with a fresh id.
func NewRecord(rep scenario.Report) Record {
	now := time.Now().UTC()
	return Record{ID: id.At(now), CreatedAt: now, Report: rep}
}

// Writer receives records. Nothing written is read back by the calculator.
type Writer interface {
	WriteRecord(Record) error
	Close() error
}

type Format string

const (
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// Open returns a writer for format. target is a directory for CSV and a
// database file for SQLite.
func Open(format Format, target string) (Writer, error) {
	switch format {
	case FormatCSV:
		return NewCSV(target)
	case FormatSQLite:
		return NewSQLite(target)
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

// Curve names used as keys in every format.
const (
	CurveProfit = "profit"
	CurveEuro   = "euro"
)

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
