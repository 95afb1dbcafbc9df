/*
combine.go - Merging two engines into one

PURPOSE:
  Two independently computed allocations (two shifts, two days) are merged
  into a third engine whose per-participant amounts are the sums of the
  inputs. The result is a settled record, not a new calculation.

RULES:
  - Total:        a.Total() + b.Total(), summed in decimal at combine time.
                  Later changes to a or b are NOT reflected (eager snapshot).
  - Granularity:  taken from a (the left operand). Same for id matching and
                  logger.
  - Participants: union of ids, a's order first, then b's new ids.
                  Duplicate ids collapse to the first match.
      in both:    Computed rule returning a.amount + b.amount (captured now)
      in one:     carried through; rules are pinned to their current amount
                  with a Computed rule unless they are Computed and carry no
                  residue
  - nil operand:  identity

SETTLED AMOUNTS:
  Every participant of the result carries a Computed rule. Changing the
  combined total later moves only the residue, never a settled amount.

PROPERTIES:
  Combine(a, b) and Combine(b, a) give the same amount per id. Folding three
  or more engines in any order gives the same per-id totals (within float
  tolerance). Both hold when the inputs are conserved; see Engine.Status.

SEE ALSO:
  - participant.go: Merge, settled
*/
package generic

import "go.uber.org/zap"

// Combine merges a and b into a new engine.
func Combine(a, b *Engine) *Engine {
	base := a
	if base == nil {
		base = b
	}
	if base == nil {
		return New()
	}
	matching := base.opts.matching

	c := &Engine{opts: base.opts}
	c.total = combinedTotal(a, b)

	ids := unionIDs(matching, a, b)
	participants := make([]Participant, 0, len(ids))
	for _, id := range ids {
		pa, inA := a.find(id, matching)
		pb, inB := b.find(id, matching)
		switch {
		case inA && inB:
			participants = append(participants, Merge(pa, pb))
		case inA:
			participants = append(participants, settled(pa))
		default:
			participants = append(participants, settled(pb))
		}
	}
	c.participants = participants
	c.recompute()

	c.opts.logger.Debug("allocations combined",
		zap.Float64("total", c.total),
		zap.Int("participants", len(participants)),
	)
	return c
}

// CombineAll folds engines left to right. With no engines it returns an
// empty engine.
func CombineAll(engines ...*Engine) *Engine {
	var acc *Engine
	for _, e := range engines {
		if e == nil {
			continue
		}
		acc = Combine(acc, e)
	}
	if acc == nil {
		return New()
	}
	return acc
}

func combinedTotal(a, b *Engine) float64 {
	sum := Money(0)
	if a != nil {
		sum = sum.Add(Money(a.total))
	}
	if b != nil {
		sum = sum.Add(Money(b.total))
	}
	total, _ := sum.Float64()
	return total
}

func unionIDs(matching IDMatching, engines ...*Engine) []string {
	var ids []string
	for _, e := range engines {
		if e == nil {
			continue
		}
		for _, p := range e.participants {
			if !containsID(matching, ids, p.id) {
				ids = append(ids, p.id)
			}
		}
	}
	return ids
}

func containsID(matching IDMatching, ids []string, id string) bool {
	for _, existing := range ids {
		if matching.matches(existing, id) {
			return true
		}
	}
	return false
}
