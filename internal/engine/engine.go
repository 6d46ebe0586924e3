package engine

import (
	. "volscan/internal/common"

	"github.com/rs/zerolog/log"
)

// Outcome of a query.
type Outcome int

const (
	// The filter left nothing to select from. Not an error.
	NoCandidates Outcome = iota
	// Top holds the winning instrument.
	HasResult
)

func (o Outcome) String() string {
	if o == HasResult {
		return "has result"
	}
	return "no candidates"
}

type Result struct {
	QueryID  string
	Strategy Strategy
	Outcome  Outcome
	Matches  int        // Number of candidates that passed the filter
	Top      Instrument // Only set on HasResult
}

// Reporter is told about every query the engine runs.
type Reporter interface {
	ReportMatches(queryID string, n int) error
	ReportResult(result Result) error
}

// Engine answers queries over a fixed set of instruments. Nothing is carried
// between queries.
type Engine struct {
	records  []Instrument
	reporter Reporter
}

func New(records []Instrument) *Engine {
	return &Engine{records: records}
}

func (engine *Engine) SetReporter(reporter Reporter) {
	engine.reporter = reporter
}

// Records returns the ingested instruments.
func (engine *Engine) Records() []Instrument {
	return engine.records
}

// Query filters the instruments, loads the candidates into the strategy's
// selector and takes the top one.
func (engine *Engine) Query(query Query) (Result, error) {
	if _, err := NewSelector(query.Strategy); err != nil {
		return Result{}, err
	}
	candidates := engine.Candidates(query.ID, query.Constraints)
	return engine.Select(query, candidates)
}

// Candidates returns the instruments eligible under the constraints and reports
// how many there are. The ingested records are left as they were.
func (engine *Engine) Candidates(queryID string, constraints Constraints) []Instrument {
	candidates := Filter(engine.records, constraints)
	log.Debug().
		Str("query", queryID).
		Float64("budget", constraints.Budget).
		Int("risk", constraints.RiskTolerance).
		Str("sector", constraints.PreferredSector).
		Int("candidates", len(candidates)).
		Msg("filtered instruments")

	if engine.reporter != nil {
		if err := engine.reporter.ReportMatches(queryID, len(candidates)); err != nil {
			log.Error().Err(err).Str("query", queryID).Msg("unable to report matches")
		}
	}
	return candidates
}

// Select loads candidates into the query's selector and takes the top one.
func (engine *Engine) Select(query Query, candidates []Instrument) (Result, error) {
	selector, err := NewSelector(query.Strategy)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		QueryID:  query.ID,
		Strategy: query.Strategy,
		Outcome:  NoCandidates,
		Matches:  len(candidates),
	}

	for _, inst := range candidates {
		selector.Insert(inst)
	}
	// Checked up front so ErrEmptyStructure never surfaces for an empty filter.
	if !selector.IsEmpty() {
		top, err := selector.Top()
		if err != nil {
			return Result{}, err
		}
		result.Outcome = HasResult
		result.Top = top
	}

	event := log.Info().
		Str("query", query.ID).
		Str("strategy", query.Strategy.String()).
		Str("outcome", result.Outcome.String())
	if result.Outcome == HasResult {
		event = event.
			Str("symbol", result.Top.Symbol()).
			Float64("volatility", result.Top.Volatility())
	}
	event.Msg("query complete")

	if engine.reporter != nil {
		if err := engine.reporter.ReportResult(result); err != nil {
			log.Error().Err(err).Str("query", query.ID).Msg("unable to report result")
		}
	}
	return result, nil
}
