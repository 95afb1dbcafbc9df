/*
registry.go - Rule method registration and lookup

PURPOSE:
  Maps method names ("hourly", "percentage", ...) to rule builders so that
  untyped input can be turned into a generic.Rule. Domain packages register
  their own aliases on init, the way tipout adds "kitchen".

HOW IT WORKS:
  1. This package registers the core names on init
  2. Domain packages call RegisterMethod for their vocabulary
  3. NewRule / RuleFactory.Parse look the method up here

  Lookup is exact: "Hourly" and "hourly" are both registered, "HOURLY" is
  not.

USAGE:
  factory.RegisterMethod("tips", factory.FixedAmountBuilder)
  rule, ok := factory.NewRule("tips", 40.0)

SEE ALSO:
  - rule.go: Builders and the failable constructors
*/
package factory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/warp/tipout-engine/generic"
)

// Builder converts an untyped value into a rule.
type Builder func(value any) (generic.Rule, error)

// =============================================================================
// METHOD REGISTRY
// =============================================================================

var (
	methodRegistry = make(map[string]Builder)
	registryMu     sync.RWMutex
)

func init() {
	for _, name := range []string{"hours", "Hours", "hourly", "Hourly"} {
		RegisterMethod(name, ProportionalShareBuilder)
	}
	for _, name := range []string{"percentage", "Percentage"} {
		RegisterMethod(name, PercentageBuilder)
	}
	for _, name := range []string{"amount", "Amount"} {
		RegisterMethod(name, FixedAmountBuilder)
	}
	for _, name := range []string{"function", "Function"} {
		RegisterMethod(name, ComputedBuilder)
	}
}

// RegisterMethod adds or replaces a method name.
func RegisterMethod(name string, b Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	methodRegistry[name] = b
}

// LookupMethod finds a registered builder. Returns nil if not found.
func LookupMethod(name string) Builder {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return methodRegistry[name]
}

// ListMethods returns all registered method names, sorted.
func ListMethods() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(methodRegistry))
	for name := range methodRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// CORE BUILDERS
// =============================================================================

// ProportionalShareBuilder builds ProportionalShare from a number.
func ProportionalShareBuilder(value any) (generic.Rule, error) {
	return scalar(value, generic.ProportionalShare)
}

// PercentageBuilder builds Percentage from a number.
func PercentageBuilder(value any) (generic.Rule, error) {
	return scalar(value, generic.Percentage)
}

// FixedAmountBuilder builds FixedAmount from a number.
func FixedAmountBuilder(value any) (generic.Rule, error) {
	return scalar(value, generic.FixedAmount)
}

// ComputedBuilder builds Computed from a func() float64.
func ComputedBuilder(value any) (generic.Rule, error) {
	fn, ok := value.(func() float64)
	if !ok || fn == nil {
		return generic.Rule{}, fmt.Errorf("%w: want func() float64, got %T", generic.ErrInvalidRuleValue, value)
	}
	return generic.Computed(fn), nil
}

func scalar(value any, build func(float64) generic.Rule) (generic.Rule, error) {
	v, ok := toFloat(value)
	if !ok {
		return generic.Rule{}, fmt.Errorf("%w: want a number, got %T", generic.ErrInvalidRuleValue, value)
	}
	return build(v), nil
}

// toFloat accepts Go numeric kinds and decimal.Decimal.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case decimal.Decimal:
		f, _ := v.Float64()
		return f, true
	default:
		return 0, false
	}
}
