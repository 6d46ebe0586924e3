package report

import (
	"fmt"
	"io"

	"volscan/internal/common"
	"volscan/internal/engine"

	"github.com/shopspring/decimal"
)

const (
	NoMatchLine   = "No stocks match your criteria."
	TopResultLine = "Top recommended stock:"
)

// Reporter writes query outcomes for a person to read.
type Reporter struct {
	out io.Writer
}

func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) ReportMatches(queryID string, n int) error {
	_, err := fmt.Fprintf(r.out, "Total matching stocks: %d\n", n)
	return err
}

func (r *Reporter) ReportResult(result engine.Result) error {
	if result.Outcome == engine.NoCandidates {
		_, err := fmt.Fprintln(r.out, NoMatchLine)
		return err
	}
	_, err := fmt.Fprintf(r.out, "%s\n%s\n", TopResultLine, FormatInstrument(result.Top))
	return err
}

// FormatInstrument renders e.g. "AAA (Tech): 100.00% change, High Price: $100.00, Low Price: $50.00".
func FormatInstrument(inst common.Instrument) string {
	return fmt.Sprintf("%s (%s): %s%% change, High Price: $%s, Low Price: $%s",
		inst.Symbol(),
		inst.Sector(),
		fixed(inst.Volatility()),
		fixed(inst.High()),
		fixed(inst.Low()),
	)
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

var _ engine.Reporter = (*Reporter)(nil)
