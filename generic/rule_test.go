package generic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warp/tipout-engine/generic"
)

// =============================================================================
// RULE TESTS
// =============================================================================

func TestRule_ZeroValueIsFixedAmountZero(t *testing.T) {
	var r generic.Rule
	assert.Equal(t, generic.RuleFixedAmount, r.Kind())
	assert.Equal(t, 0.0, r.Value())
	assert.Nil(t, r.Func())
}

func TestRule_Value(t *testing.T) {
	assert.Equal(t, 40.0, generic.FixedAmount(40).Value())
	assert.Equal(t, 0.3, generic.Percentage(0.3).Value())
	assert.Equal(t, 6.0, generic.ProportionalShare(6).Value())
	assert.Equal(t, 7.5, generic.Computed(func() float64 { return 7.5 }).Value())
}

func TestRule_ComputedReadsCapturedStateOnEveryCall(t *testing.T) {
	// GIVEN: A computed rule over a variable
	// WHEN: The variable changes
	// THEN: Value follows it

	x := 1.0
	r := generic.Computed(func() float64 { return x })
	assert.Equal(t, 1.0, r.Value())

	x = 2
	assert.Equal(t, 2.0, r.Value())
	assert.True(t, r.IsComputed())
}

func TestRule_ComputedNilFuncIsZero(t *testing.T) {
	r := generic.Computed(nil)
	assert.Equal(t, 0.0, r.Value())
	assert.NotNil(t, r.Func())
}

func TestRule_Equal(t *testing.T) {
	assert.True(t, generic.Percentage(0.3).Equal(generic.Percentage(0.3)))
	assert.False(t, generic.Percentage(0.3).Equal(generic.FixedAmount(0.3)), "kind matters")
	assert.False(t, generic.ProportionalShare(3).Equal(generic.ProportionalShare(4)))

	// Computed rules compare by current value
	a := generic.Computed(func() float64 { return 5 })
	b := generic.Computed(func() float64 { return 5 })
	assert.True(t, a.Equal(b))
}

func TestRule_String(t *testing.T) {
	assert.Equal(t, ".Percentage(0.3)", generic.Percentage(0.3).String())
	assert.Equal(t, ".ProportionalShare(4)", generic.ProportionalShare(4).String())
	assert.Equal(t, ".Computed(with a value of 2)", generic.Computed(func() float64 { return 2 }).String())
}
