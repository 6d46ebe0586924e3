package engine

import (
	"testing"

	. "volscan/internal/common"

	"github.com/stretchr/testify/require"
)

// --- Setup & Helpers --------------------------------------------------------

type row struct {
	symbol    string
	sector    string
	high, low float64
	risk      float64
}

func buildInstrument(t *testing.T, r row) Instrument {
	t.Helper()
	inst, err := NewInstrument(r.symbol, r.sector, r.high, r.low, r.risk)
	require.NoError(t, err)
	return inst
}

func buildInstruments(t *testing.T, rows ...row) []Instrument {
	t.Helper()
	out := make([]Instrument, len(rows))
	for i, r := range rows {
		out[i] = buildInstrument(t, r)
	}
	return out
}

// withVolatility builds an instrument whose volatility is exactly pct.
func withVolatility(t *testing.T, symbol string, pct float64) Instrument {
	t.Helper()
	return buildInstrument(t, row{symbol, "Tech", 100 + pct, 100, 1})
}

func symbols(insts []Instrument) []string {
	out := make([]string, len(insts))
	for i, inst := range insts {
		out[i] = inst.Symbol()
	}
	return out
}

type recordingReporter struct {
	matches []int
	results []Result
}

func (r *recordingReporter) ReportMatches(queryID string, n int) error {
	r.matches = append(r.matches, n)
	return nil
}

func (r *recordingReporter) ReportResult(result Result) error {
	r.results = append(r.results, result)
	return nil
}
