package tipout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/tipout-engine/factory"
	"github.com/warp/tipout-engine/generic"
	"github.com/warp/tipout-engine/tipout"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newShift(total float64, hours map[string]float64) *generic.Engine {
	shift := tipout.NewModel()
	shift.SetParticipants(tipout.Staff(tipout.Kitchen(), tipout.HourlyStaff(hours)...))
	shift.SetTotal(total)
	return shift
}

// =============================================================================
// MODEL TESTS
// =============================================================================

func TestNewModel_DefaultsToQuarters(t *testing.T) {
	assert.Equal(t, tipout.DefaultGranularity, tipout.NewModel().Granularity())
	assert.Equal(t, 1.0, tipout.NewModel(generic.WithGranularity(1)).Granularity())
}

func TestShift_KitchenAndStaff(t *testing.T) {
	// GIVEN: Kitchen at its standard cut, Ana 6h and Ben 4h
	// WHEN: The shift made 250 in tips
	// THEN: Kitchen 75, Ana 105, Ben 70

	shift := newShift(250, map[string]float64{"ben": 4, "ana": 6})

	ids := make([]string, 0, shift.Len())
	for _, w := range shift.Participants() {
		ids = append(ids, w.ID())
	}
	assert.Equal(t, []string{tipout.KitchenID, "ana", "ben"}, ids, "hourly staff in id order after the kitchen")
	assert.InDeltaSlice(t, []float64{75, 105, 70}, shift.Amounts(), 1e-9)
	assert.Equal(t, generic.StatusEven, shift.Status())
}

func TestWeek_CombinesShifts(t *testing.T) {
	monday := newShift(250, map[string]float64{"ana": 6, "ben": 4})
	tuesday := newShift(100, map[string]float64{"ben": 5, "cai": 5})

	week := tipout.Week(monday, tuesday)

	assert.Equal(t, 350.0, week.Total())
	kitchen, ok := week.AmountFor(tipout.KitchenID)
	require.True(t, ok)
	assert.InDelta(t, 105.0, kitchen, 1e-9)
	ben, _ := week.AmountFor("ben")
	assert.InDelta(t, 105.0, ben, 1e-9)
	assert.Equal(t, generic.StatusEven, week.Status())
}

// =============================================================================
// METHOD TESTS
// =============================================================================

func TestMethod_Rule(t *testing.T) {
	rule, ok := tipout.MethodHourly.Rule(6.0)
	require.True(t, ok)
	assert.Equal(t, generic.RuleProportionalShare, rule.Kind())

	_, ok = tipout.MethodFunction.Rule(6.0)
	assert.False(t, ok)
}

func TestMethodOf(t *testing.T) {
	assert.Equal(t, tipout.MethodAmount, tipout.MethodOf(tipout.Amount(10)))
	assert.Equal(t, tipout.MethodPercentage, tipout.MethodOf(tipout.Percentage(0.3)))
	assert.Equal(t, tipout.MethodHourly, tipout.MethodOf(tipout.Hourly(4)))
	assert.Equal(t, tipout.MethodFunction, tipout.MethodOf(tipout.Function(func() float64 { return 1 })))
}

func TestAliasesRegistered(t *testing.T) {
	rule, ok := factory.NewRule("kitchen", 0.3)
	require.True(t, ok)
	assert.Equal(t, generic.RulePercentage, rule.Kind())

	for _, alias := range []string{"tips", "flat"} {
		rule, ok := factory.NewRule(alias, 12.0)
		require.True(t, ok, alias)
		assert.Equal(t, generic.RuleFixedAmount, rule.Kind(), alias)
	}
}

// =============================================================================
// REPORT TESTS
// =============================================================================

func TestReport(t *testing.T) {
	shift := newShift(250, map[string]float64{"ana": 6, "ben": 4})

	r := tipout.NewReport(shift)

	assert.Equal(t, "250", r.Total.String())
	assert.True(t, r.Remainder.IsZero())
	assert.Equal(t, generic.StatusEven, r.Status)
	require.Len(t, r.Lines, 3)
	assert.Equal(t, tipout.MethodPercentage, r.Lines[0].Method)
	assert.Equal(t, "30%", r.Lines[0].Rule)
	assert.Equal(t, "6h", r.Lines[1].Rule)
	assert.Equal(t, "105.00", r.Lines[1].Amount.StringFixed(2))

	out := r.String()
	assert.Contains(t, out, "total 250.00 (even)")
	assert.Contains(t, out, "kitchen")
	assert.NotContains(t, out, "remainder")
}

func TestReport_ShowsRemainderWhenUnder(t *testing.T) {
	shift := tipout.NewModel()
	shift.SetTotal(40)

	r := tipout.NewReport(shift)

	assert.Equal(t, generic.StatusUnder, r.Status)
	assert.Contains(t, r.String(), "remainder 40.00")
}
