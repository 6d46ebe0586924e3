package common

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptySymbol    = errors.New("empty symbol")
	ErrNonPositiveLow = errors.New("low price must be positive")
	ErrNonFinite      = errors.New("value must be finite")
)

// Instrument is a single tradable security as read from the source. All fields
// are fixed at construction; volatility is derived once from the high and low.
type Instrument struct {
	symbol     string  // Ticker, unique within a batch
	sector     string  // Free-text category, empty when unspecified
	high       float64 // High price over the period
	low        float64 // Low price over the period
	risk       float64 // Ordinal risk score (1 = low, 2 = medium, 3 = high)
	volatility float64 // (high - low) / low * 100
}

// NewInstrument builds an Instrument and computes its volatility. high < low is
// accepted and yields a negative volatility.
func NewInstrument(symbol, sector string, high, low, risk float64) (Instrument, error) {
	if symbol == "" {
		return Instrument{}, ErrEmptySymbol
	}
	for _, v := range []float64{high, low, risk} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Instrument{}, fmt.Errorf("%w: %v", ErrNonFinite, v)
		}
	}
	if !(low > 0) {
		return Instrument{}, fmt.Errorf("%w: %v", ErrNonPositiveLow, low)
	}
	return Instrument{
		symbol:     symbol,
		sector:     sector,
		high:       high,
		low:        low,
		risk:       risk,
		volatility: (high - low) / low * 100,
	}, nil
}

func (inst Instrument) Symbol() string      { return inst.symbol }
func (inst Instrument) Sector() string      { return inst.sector }
func (inst Instrument) High() float64       { return inst.high }
func (inst Instrument) Low() float64        { return inst.low }
func (inst Instrument) Risk() float64       { return inst.risk }
func (inst Instrument) Volatility() float64 { return inst.volatility }

func (inst Instrument) String() string {
	return fmt.Sprintf(
		`Symbol:     %s
Sector:     %s
High:       %f
Low:        %f
Risk:       %v
Volatility: %f`,
		inst.symbol,
		inst.sector,
		inst.high,
		inst.low,
		inst.risk,
		inst.volatility,
	)
}
