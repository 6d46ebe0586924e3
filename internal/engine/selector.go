package engine

import (
	"errors"
	"fmt"

	. "volscan/internal/common"
)

var (
	ErrEmptyStructure  = errors.New("empty structure")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Selector is a max-priority collection of instruments ordered by volatility.
type Selector interface {
	Insert(inst Instrument)
	// Top returns the highest volatility instrument, or ErrEmptyStructure. The
	// heap removes what it returns; the tree only reads it.
	Top() (Instrument, error)
	IsEmpty() bool
	Len() int
}

// NewSelector returns an empty selector for the strategy.
func NewSelector(strategy Strategy) (Selector, error) {
	switch strategy {
	case HeapStrategy:
		return NewHeap(), nil
	case MapStrategy:
		return NewTree(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
}
