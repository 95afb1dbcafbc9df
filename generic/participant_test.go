package generic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warp/tipout-engine/generic"
)

// =============================================================================
// PARTICIPANT TESTS
// =============================================================================

func TestParticipant_UnboundAmountIsZero(t *testing.T) {
	p := generic.NewParticipant("ana", generic.FixedAmount(40))
	assert.Equal(t, 0.0, p.Amount(), "no engine has bound an evaluation yet")
}

func TestParticipant_IDIsTrimmed(t *testing.T) {
	p := generic.NewParticipant("  ana \n", generic.FixedAmount(40))
	assert.Equal(t, "ana", p.ID())
}

func TestParticipant_WithRuleDropsBinding(t *testing.T) {
	// GIVEN: A participant bound by an engine
	e := generic.New()
	e.SetParticipants([]generic.Participant{generic.NewParticipant("ana", generic.FixedAmount(40))})
	e.SetTotal(40)
	bound := e.Participants()[0]
	assert.Equal(t, 40.0, bound.Amount())

	// WHEN: The rule is swapped on the value
	changed := bound.WithRule(generic.FixedAmount(10))

	// THEN: The copy is unbound until an engine takes it
	assert.Equal(t, "ana", changed.ID())
	assert.Equal(t, 0.0, changed.Amount())
	assert.Equal(t, 40.0, bound.Amount(), "original is a separate value")
}

func TestParticipant_Equal(t *testing.T) {
	a := generic.NewParticipant("ana", generic.ProportionalShare(6))
	b := generic.NewParticipant("ana", generic.ProportionalShare(6))
	c := generic.NewParticipant("ben", generic.ProportionalShare(6))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(a.WithRule(generic.ProportionalShare(5))))
}

func TestParticipant_String(t *testing.T) {
	p := generic.NewParticipant("ana", generic.Percentage(0.3))
	assert.Equal(t, "{id = ana, rule = .Percentage(0.3), amount = 0}", p.String())
}

// =============================================================================
// MERGE TESTS
// =============================================================================

func TestMerge_SumsAmountsAndKeepsLeftID(t *testing.T) {
	// GIVEN: Two shifts where ana earned 105 and 52.5
	monday := generic.New()
	monday.SetParticipants([]generic.Participant{generic.NewParticipant("ana", generic.FixedAmount(105))})
	monday.SetTotal(105)

	tuesday := generic.New()
	tuesday.SetParticipants([]generic.Participant{generic.NewParticipant("ana", generic.FixedAmount(52.5))})
	tuesday.SetTotal(52.5)

	// WHEN: Merging the two records
	merged := generic.Merge(monday.Participants()[0], tuesday.Participants()[0])

	// THEN: The merged record carries the sum as a computed rule
	assert.Equal(t, "ana", merged.ID())
	assert.Equal(t, 157.5, merged.Amount())
	assert.True(t, merged.Rule().IsComputed())

	// AND: Later changes to the sources do not leak in
	monday.SetTotal(0)
	assert.Equal(t, 157.5, merged.Amount())
}
