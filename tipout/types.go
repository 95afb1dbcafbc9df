// Package tipout implements restaurant tip pooling on top of the generic
// allocation engine. A shift's tips are split between the kitchen, which
// takes a fixed percentage, and front-of-house staff paid in proportion to
// the hours they worked.
package tipout

import (
	"github.com/warp/tipout-engine/factory"
	"github.com/warp/tipout-engine/generic"
)

// =============================================================================
// METHODS
// =============================================================================

// Method names how a worker's tip-out is computed.
type Method string

const (
	MethodAmount     Method = "amount"
	MethodPercentage Method = "percentage"
	MethodHourly     Method = "hourly"
	MethodFunction   Method = "function"
)

// Register tip-out vocabulary with the rule factory
func init() {
	factory.RegisterMethod("kitchen", factory.PercentageBuilder)
	factory.RegisterMethod("tips", factory.FixedAmountBuilder)
	factory.RegisterMethod("flat", factory.FixedAmountBuilder)
}

// Rule builds a rule for this method from an untyped value.
func (m Method) Rule(value any) (generic.Rule, bool) {
	return factory.NewRule(string(m), value)
}

// MethodOf reports the method a rule was built with.
func MethodOf(r generic.Rule) Method {
	switch r.Kind() {
	case generic.RulePercentage:
		return MethodPercentage
	case generic.RuleProportionalShare:
		return MethodHourly
	case generic.RuleComputed:
		return MethodFunction
	default:
		return MethodAmount
	}
}

// Amount is a flat tip-out.
func Amount(v float64) generic.Rule { return generic.FixedAmount(v) }

// Percentage is a share of the shift total, 0.3 meaning 30%.
func Percentage(p float64) generic.Rule { return generic.Percentage(p) }

// Hourly weights a worker by hours worked against the rest of the pool.
func Hourly(hours float64) generic.Rule { return generic.ProportionalShare(hours) }

// Function defers to caller logic.
func Function(fn func() float64) generic.Rule { return generic.Computed(fn) }

// =============================================================================
// WORKERS
// =============================================================================

// Worker is a participant in a tip pool.
type Worker = generic.Participant

// NewWorker creates a worker.
func NewWorker(id string, rule generic.Rule) Worker {
	return generic.NewParticipant(id, rule)
}
