package engine

import . "volscan/internal/common"

// Heap is an array backed binary max heap keyed on volatility.
//
// Comparisons are strict in both directions, so an element only moves past
// another with a greater volatility. On equal volatility the earlier inserted
// element stays nearer the root, and when both children tie the left is taken.
type Heap struct {
	data []Instrument
}

func NewHeap() *Heap {
	return &Heap{}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (h *Heap) Len() int      { return len(h.data) }
func (h *Heap) IsEmpty() bool { return len(h.data) == 0 }

func (h *Heap) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

// Insert appends then sifts the new element up.
func (h *Heap) Insert(inst Instrument) {
	h.data = append(h.data, inst)
	h.up(len(h.data) - 1)
}

// ExtractMax removes and returns the root.
func (h *Heap) ExtractMax() (Instrument, error) {
	if len(h.data) == 0 {
		return Instrument{}, ErrEmptyStructure
	}

	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data[last] = Instrument{}
	h.data = h.data[:last]
	if len(h.data) > 1 {
		h.down(0)
	}
	return top, nil
}

func (h *Heap) Top() (Instrument, error) {
	return h.ExtractMax()
}

func (h *Heap) up(i int) {
	for i > 0 && h.data[i].Volatility() > h.data[parent(i)].Volatility() {
		h.swap(i, parent(i))
		i = parent(i)
	}
}

func (h *Heap) down(i int) {
	n := len(h.data)
	for {
		largest := i
		if l := left(i); l < n && h.data[l].Volatility() > h.data[largest].Volatility() {
			largest = l
		}
		// Right only wins if strictly greater than the current pick, so a
		// left/right tie goes left.
		if r := right(i); r < n && h.data[r].Volatility() > h.data[largest].Volatility() {
			largest = r
		}
		if largest == i {
			return
		}
		h.swap(i, largest)
		i = largest
	}
}
