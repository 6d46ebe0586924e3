package report

import (
	"bytes"
	"errors"
	"testing"

	"volscan/internal/common"
	"volscan/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInstrument(t *testing.T) {
	inst, err := common.NewInstrument("AAA", "Tech", 100, 50, 1)
	require.NoError(t, err)
	assert.Equal(t,
		"AAA (Tech): 100.00% change, High Price: $100.00, Low Price: $50.00",
		FormatInstrument(inst))

	inst, err = common.NewInstrument("XYZ", "", 12.34, 9.99, 2)
	require.NoError(t, err)
	assert.Equal(t,
		"XYZ (): 23.52% change, High Price: $12.34, Low Price: $9.99",
		FormatInstrument(inst))
}

func TestReporter_Result(t *testing.T) {
	inst, err := common.NewInstrument("BBB", "Tech", 80, 40, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := New(&buf)
	require.NoError(t, r.ReportMatches("q", 2))
	require.NoError(t, r.ReportResult(engine.Result{Outcome: engine.HasResult, Matches: 2, Top: inst}))

	assert.Equal(t,
		"Total matching stocks: 2\n"+
			"Top recommended stock:\n"+
			"BBB (Tech): 100.00% change, High Price: $80.00, Low Price: $40.00\n",
		buf.String())
}

func TestReporter_NoCandidates(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	require.NoError(t, r.ReportMatches("q", 0))
	require.NoError(t, r.ReportResult(engine.Result{Outcome: engine.NoCandidates}))

	assert.Equal(t, "Total matching stocks: 0\nNo stocks match your criteria.\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReporter_WriteError(t *testing.T) {
	r := New(failingWriter{})
	assert.Error(t, r.ReportMatches("q", 1))
	assert.Error(t, r.ReportResult(engine.Result{}))
}
