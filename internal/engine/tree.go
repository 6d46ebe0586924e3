package engine

import (
	. "volscan/internal/common"

	"github.com/tidwall/btree"
)

type Instruments = btree.BTreeG[Instrument]

// Tree holds instruments keyed by symbol in ascending order. Inserting a symbol
// that is already present replaces the previous instrument.
type Tree struct {
	items *Instruments
}

func NewTree() *Tree {
	// Sorted by symbol, least first.
	items := btree.NewBTreeG(func(a, b Instrument) bool {
		return a.Symbol() < b.Symbol()
	})
	return &Tree{items: items}
}

func (tree *Tree) Insert(inst Instrument) {
	tree.items.Set(inst)
}

func (tree *Tree) Len() int      { return tree.items.Len() }
func (tree *Tree) IsEmpty() bool { return tree.items.Len() == 0 }

// GetMax scans every instrument in symbol order and keeps the last one whose
// volatility is >= the running maximum, so a tie goes to the greatest symbol.
// Nothing is removed; repeated calls return the same instrument.
func (tree *Tree) GetMax() (Instrument, error) {
	best, ok := tree.items.Min()
	if !ok {
		return Instrument{}, ErrEmptyStructure
	}
	tree.items.Scan(func(inst Instrument) bool {
		if inst.Volatility() >= best.Volatility() {
			best = inst
		}
		return true
	})
	return best, nil
}

func (tree *Tree) Top() (Instrument, error) {
	return tree.GetMax()
}

// Items returns the held instruments in symbol order.
func (tree *Tree) Items() []Instrument {
	return tree.items.Items()
}
