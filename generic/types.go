/*
Package generic provides the core allocation engine.

PURPOSE:
  This package splits a single monetary total among participants according
  to per-participant rules, and guarantees the resulting amounts add up to
  the total exactly. It knows nothing about restaurants, tips or shifts;
  domain packages (see tipout/) build on top of it.

KEY CONCEPTS:
  - Rule: How one participant's share is computed (fixed, percentage,
    proportional share of the residual, externally computed)
  - Participant: An id, a rule, and the evaluation bound by its engine
  - Engine: Owns total, granularity and participants; recomputes on change
  - Combine: Merges two engines (e.g. two shifts) into a settled third one
  - Signal: Synchronous change notification for UI bindings

GUARANTEES:
  1. Conservation: sum(Amounts()) == Total() after residue correction
  2. Freshness: every mutation recomputes before returning
  3. Totality: no allocation path returns an error; division by a zero
     weight sum and not-a-number results become zero

USAGE:
  engine := generic.New(generic.WithGranularity(0.25))
  engine.SetParticipants([]generic.Participant{
      generic.NewParticipant("kitchen", generic.Percentage(0.3)),
      generic.NewParticipant("ana", generic.ProportionalShare(6)),
      generic.NewParticipant("ben", generic.ProportionalShare(4)),
  })
  engine.SetTotal(250)
  engine.Amounts() // [75, 105, 70]

SEE ALSO:
  - allocate.go: The allocation algorithm
  - combine.go: Merging engines
  - factory/rule.go: Rules from untyped input
*/
package generic

// =============================================================================
// STATUS - Allocated sum versus total
// =============================================================================

// Status classifies the allocated sum against the total.
type Status string

const (
	StatusOver  Status = "over"
	StatusUnder Status = "under"
	StatusEven  Status = "even"
)

// =============================================================================
// AMOUNT CHANGE - Payload of Engine.AmountChanged
// =============================================================================

// AmountChange describes one participant whose amount moved during a
// recomputation.
type AmountChange struct {
	Index int
	ID    string
	Old   float64
	New   float64
}
