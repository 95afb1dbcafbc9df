/*
rule.go - Allocation rules (how one participant's share is computed)

PURPOSE:
  A Rule is a closed variant with exactly one active kind. It carries a
  scalar payload (or, for Computed, an opaque function) and never changes
  after construction. To change how a participant is paid, build a new Rule
  and a new Participant record.

RULE KINDS:
  FixedAmount(v):        contributes v, independent of the total
  Percentage(f):         contributes f * total
  ProportionalShare(w):  splits the RESIDUAL total by weight w / sum(weights)
  Computed(fn):          contributes fn(), evaluated on demand

RESIDUAL TOTAL:
  Proportional shares divide what is left after fixed amounts, percentages
  and computed contributions are removed:

    residual = total - (percentageTotal + fixedTotal + computedTotal)
    share_i  = residual * w_i / sum(w)

COMPUTED RULES:
  The function is shared with whoever built it and may capture external
  state, including other participants' amounts. The engine invokes it and
  never mutates it. Cycles are the caller's problem.

SEE ALSO:
  - participant.go: Binds a Rule to an identity
  - engine.go: Resolves rule interactions
  - factory/rule.go: Builds rules from untyped input
*/
package generic

import (
	"fmt"
	"strconv"
)

// =============================================================================
// RULE KIND
// =============================================================================

// RuleKind identifies the active case of a Rule.
type RuleKind int

const (
	// RuleFixedAmount is first so the zero Rule is FixedAmount(0).
	RuleFixedAmount RuleKind = iota
	RulePercentage
	RuleProportionalShare
	RuleComputed
)

func (k RuleKind) String() string {
	switch k {
	case RuleFixedAmount:
		return "FixedAmount"
	case RulePercentage:
		return "Percentage"
	case RuleProportionalShare:
		return "ProportionalShare"
	case RuleComputed:
		return "Computed"
	default:
		return "RuleKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// =============================================================================
// RULE
// =============================================================================

// Rule describes how a participant's share of the total is computed.
type Rule struct {
	kind  RuleKind
	value float64
	fn    func() float64
}

// FixedAmount contributes value verbatim.
func FixedAmount(value float64) Rule {
	return Rule{kind: RuleFixedAmount, value: value}
}

// Percentage contributes fraction * total (0.3 means 30%).
func Percentage(fraction float64) Rule {
	return Rule{kind: RulePercentage, value: fraction}
}

// ProportionalShare contributes a weighted share of the residual total.
func ProportionalShare(weight float64) Rule {
	return Rule{kind: RuleProportionalShare, value: weight}
}

// Computed contributes the result of fn. An engine evaluates fn once per
// recomputation; Value evaluates it on every call. A nil fn contributes 0.
func Computed(fn func() float64) Rule {
	if fn == nil {
		fn = zero
	}
	return Rule{kind: RuleComputed, fn: fn}
}

// Kind returns the active case.
func (r Rule) Kind() RuleKind { return r.kind }

// Value returns the scalar payload. For Computed rules the function is
// evaluated.
func (r Rule) Value() float64 {
	if r.kind == RuleComputed {
		return r.Func()()
	}
	return r.value
}

// Func returns the Computed function, or nil for the other kinds.
func (r Rule) Func() func() float64 {
	if r.kind != RuleComputed {
		return nil
	}
	if r.fn == nil {
		return zero
	}
	return r.fn
}

// IsComputed reports whether the rule is the Computed kind.
func (r Rule) IsComputed() bool { return r.kind == RuleComputed }

// Equal reports whether both rules have the same kind and payload.
// Computed rules compare their current values.
func (r Rule) Equal(other Rule) bool {
	return r.kind == other.kind && r.Value() == other.Value()
}

func (r Rule) String() string {
	v := strconv.FormatFloat(r.Value(), 'g', -1, 64)
	if r.kind == RuleComputed {
		return fmt.Sprintf(".%s(with a value of %s)", r.kind, v)
	}
	return fmt.Sprintf(".%s(%s)", r.kind, v)
}

func zero() float64 { return 0 }
