package engine

import . "volscan/internal/common"

// Eligible reports whether the instrument fits within the budget and risk
// tolerance and, when a sector is preferred, belongs to exactly that sector.
func Eligible(inst Instrument, c Constraints) bool {
	// Written as the inclusion rule so a NaN on either side excludes.
	return inst.High() <= c.Budget &&
		inst.Risk() <= float64(c.RiskTolerance) &&
		(c.PreferredSector == "" || inst.Sector() == c.PreferredSector)
}

// Filter returns a new slice of the eligible instruments in input order. The
// input is not modified.
func Filter(records []Instrument, c Constraints) []Instrument {
	candidates := make([]Instrument, 0, len(records))
	for _, inst := range records {
		if Eligible(inst, c) {
			candidates = append(candidates, inst)
		}
	}
	return candidates
}
