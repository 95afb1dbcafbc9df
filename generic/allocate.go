/*
allocate.go - The allocation algorithm

PURPOSE:
  Turns (total, granularity, participants) into one settled amount per
  participant such that the amounts add up to the total.

TWO PHASES:
  Phase 1 - settle every slot, in a fixed order, within one cycle:
    1. Every slot is cleared to 0.
    2. FixedAmount(v) and Percentage(p) settle first:
         FixedAmount(v)  -> v
         Percentage(p)   -> RoundToNearest(total * p, g)
    3. Computed(fn) settle next, in list order. Each fn runs exactly once.
       A Computed rule reading another participant of the same engine sees
       this cycle's fixed, percentage and earlier computed amounts; hourly
       participants still read 0 at this point.
    4. ProportionalShare(w) settles last against the residual:
         residual = total - (total * sum(fractions) + fixed + computed)
         share    = RoundToNearest(residual * w / sumOfHourWeights, g)
       A zero weight sum divides to 0.
    Any value that is not finite settles as 0, for every kind. The settled
    values are the snapshot.

  Phase 2 - residue correction:
    remainder = total - sum(snapshot)
    If remainder != 0, the FIRST participant gets
    RoundToNearest(remainder, 0.01) added as a plain value. Bound amounts are
    constants, so sum(Amounts()) matches the total until the next
    recomputation.

EXAMPLE (granularity 0.25, total 100):
  [Percentage(0.3), Hourly(4), Hourly(3), Hourly(1)]
  percentage -> 30.00
  residual   =  70.00 split 4:3:1 -> 35.00, 26.25, 8.75
  remainder  =   0.00

SEE ALSO:
  - engine.go: Calls allocate on every mutation
  - rounding.go: RoundToNearest, divideOrZero
*/
package generic

import "go.uber.org/zap"

// =============================================================================
// AGGREGATES
// =============================================================================

type aggregates struct {
	percentage float64
	fixed      float64
	computed   float64
	weights    float64
}

// residual is what proportional shares divide among themselves.
func (a aggregates) residual(total float64) float64 {
	return total - (a.percentage + a.fixed + a.computed)
}

// aggregate sums the kinds known without evaluation. Contributions that are
// not finite count as zero, matching the substitution applied when settling.
// Computed contributions are added as they settle.
func aggregate(total float64, ps []Participant) aggregates {
	var (
		agg       aggregates
		fractions float64
	)
	for _, p := range ps {
		switch p.rule.Kind() {
		case RulePercentage:
			fractions += finiteOrZero(p.rule.value)
		case RuleFixedAmount:
			agg.fixed += finiteOrZero(p.rule.value)
		case RuleProportionalShare:
			agg.weights += finiteOrZero(p.rule.value)
		}
	}
	agg.percentage = total * fractions
	return agg
}

// =============================================================================
// ALLOCATION
// =============================================================================

type allocation struct {
	funcs    []func() float64
	snapshot []float64
	residue  float64
}

func (e *Engine) allocate() allocation {
	total := e.total
	g := e.opts.granularity

	alloc := allocation{
		funcs:    make([]func() float64, len(e.participants)),
		snapshot: make([]float64, len(e.participants)),
	}
	if len(e.participants) == 0 {
		return alloc
	}

	settle := func(i int, v float64) float64 {
		if !isFinite(v) {
			p := e.participants[i]
			e.opts.logger.Warn("non-finite amount replaced with zero",
				zap.String("participant", p.id),
				zap.Stringer("rule", p.rule),
			)
			v = 0
		}
		alloc.snapshot[i] = v
		alloc.funcs[i] = constant(v)
		e.participants[i] = e.participants[i].bind(alloc.funcs[i])
		return v
	}

	// Phase 1
	for i := range e.participants {
		settle(i, 0)
	}

	agg := aggregate(total, e.participants)
	for i, p := range e.participants {
		switch p.rule.Kind() {
		case RuleFixedAmount:
			settle(i, p.rule.value)
		case RulePercentage:
			settle(i, RoundToNearest(total*p.rule.value, g))
		}
	}
	for i, p := range e.participants {
		if p.rule.IsComputed() {
			agg.computed += settle(i, p.rule.Func()())
		}
	}

	residual := agg.residual(total)
	for i, p := range e.participants {
		if p.rule.Kind() == RuleProportionalShare {
			settle(i, RoundToNearest(residual*divideOrZero(p.rule.value, agg.weights), g))
		}
	}

	// Phase 2
	remainder := total - Sum(alloc.snapshot...)
	if remainder != 0 {
		alloc.residue = RoundToNearest(remainder, Cent)
		alloc.funcs[0] = constant(alloc.snapshot[0] + alloc.residue)
	}
	return alloc
}

func constant(v float64) func() float64 {
	return func() float64 { return v }
}
