package generic

import (
	"fmt"
	"strings"
)

// =============================================================================
// PARTICIPANT - Identity + rule + bound evaluation
// =============================================================================

// Participant is one receiver of a share of the total.
//
// Identity and rule belong to the participant. The evaluation function
// belongs to whichever Engine currently holds the record and is rebound on
// every recomputation. Until an engine binds one, Amount returns 0.
//
// Participants are values: changing a rule means building a new record
// (WithRule) and replacing the slot in the engine.
type Participant struct {
	id   string
	rule Rule
	eval func() float64
}

// NewParticipant builds a participant. The id is trimmed.
func NewParticipant(id string, rule Rule) Participant {
	return Participant{id: normalizeID(id), rule: rule}
}

func (p Participant) ID() string { return p.id }

func (p Participant) Rule() Rule { return p.rule }

// Amount evaluates the bound function.
func (p Participant) Amount() float64 {
	if p.eval == nil {
		return 0
	}
	return p.eval()
}

// WithRule returns a copy with a different rule and no bound evaluation.
func (p Participant) WithRule(rule Rule) Participant {
	return Participant{id: p.id, rule: rule}
}

// Equal compares identity, rule and current amount.
func (p Participant) Equal(other Participant) bool {
	return p.id == other.id && p.rule.Equal(other.rule) && p.Amount() == other.Amount()
}

func (p Participant) String() string {
	return fmt.Sprintf("{id = %s, rule = %s, amount = %v}", p.id, p.rule, p.Amount())
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// bind returns a copy evaluating fn.
func (p Participant) bind(fn func() float64) Participant {
	p.eval = fn
	return p
}

// Merge combines two participants into one whose amount is the sum of both
// amounts at merge time. The result keeps a's id and carries a Computed rule,
// so it is not recalculated against a new total.
func Merge(a, b Participant) Participant {
	sum := a.Amount() + b.Amount()
	fn := func() float64 { return sum }
	return Participant{id: a.id, rule: Computed(fn), eval: fn}
}

// settled returns a participant pinned to its current amount. A Computed
// rule passes through untouched only while its amount still equals the
// rule's value; one that absorbed residue is pinned like any other.
func settled(p Participant) Participant {
	if p.rule.IsComputed() && p.Amount() == p.rule.Value() {
		return p
	}
	amount := p.Amount()
	fn := func() float64 { return amount }
	return Participant{id: p.id, rule: Computed(fn), eval: fn}
}
