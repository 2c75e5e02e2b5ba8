package entities

import "time"

// Record is one counted line in a session, unique per (session, item).
// ExpectedQuantity snapshots the item's theoretical stock when the count is
// first recorded; re-recording overwrites only the actual.
type Record struct {
	RecordID         string
	SessionID        string
	ItemID           string
	ExpectedQuantity float64
	ActualQuantity   float64
	UpdatedAt        time.Time
}

// Diff is the shrinkage: actual minus expected.
func (r Record) Diff() float64 {
	return r.ActualQuantity - r.ExpectedQuantity
}
