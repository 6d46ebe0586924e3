package common

import "github.com/google/uuid"

// Constraints are the user's limits for a single query.
type Constraints struct {
	Budget          float64 // Maximum high price
	RiskTolerance   int     // Maximum risk score
	PreferredSector string  // Exact sector match, empty matches any
}

// Query is one request against the ingested instruments.
type Query struct {
	ID          string
	Constraints Constraints
	Strategy    Strategy
}

// NewQuery tags the constraints and strategy with a fresh query id.
func NewQuery(constraints Constraints, strategy Strategy) Query {
	return Query{
		ID:          uuid.New().String(),
		Constraints: constraints,
		Strategy:    strategy,
	}
}
