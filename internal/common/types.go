package common

import (
	"errors"
	"strings"
)

var ErrInvalidStrategy = errors.New("invalid strategy")

// Strategy picks the priority structure used to select the top candidate.
type Strategy int

const (
	// Binary max heap. Ties on volatility go to the earlier inserted
	// instrument.
	HeapStrategy Strategy = iota + 1
	// Ordered map keyed by symbol. Duplicate symbols collapse to the last
	// inserted, and ties on volatility go to the greatest symbol.
	MapStrategy
)

var strategyName = map[Strategy]string{
	HeapStrategy: "heap",
	MapStrategy:  "map",
}

func (s Strategy) String() string {
	if name, ok := strategyName[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStrategy accepts the menu numbers ("1", "2") or the names ("heap", "map").
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "heap":
		return HeapStrategy, nil
	case "2", "map":
		return MapStrategy, nil
	}
	return 0, ErrInvalidStrategy
}
