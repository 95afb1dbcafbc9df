/*
model.go - Ready-to-use tip pool configurations

PURPOSE:
  Convenience constructors for the common shape of a tip pool: the kitchen
  takes a fixed cut off the top, the rest is shared by hours worked, and
  amounts are paid out in quarters.

EXAMPLE:
  shift := tipout.NewModel()
  shift.SetParticipants(tipout.Staff(tipout.Kitchen(), tipout.HourlyStaff(map[string]float64{
      "ana": 6,
      "ben": 4,
  })...))
  shift.SetTotal(250) // kitchen 75, ana 105, ben 70

  week := tipout.Week(monday, tuesday, wednesday)

SEE ALSO:
  - generic/engine.go: Engine behavior
  - generic/combine.go: How shifts are merged
*/
package tipout

import (
	"sort"

	"github.com/warp/tipout-engine/generic"
)

const (
	// DefaultGranularity pays out in quarters.
	DefaultGranularity = 0.25

	// KitchenShare is the kitchen's cut of the shift total.
	KitchenShare = 0.3

	// KitchenID identifies the kitchen worker.
	KitchenID = "kitchen"
)

// NewModel creates an engine for one shift. Options override the default
// granularity.
func NewModel(opts ...generic.Option) *generic.Engine {
	return generic.New(append([]generic.Option{generic.WithGranularity(DefaultGranularity)}, opts...)...)
}

// Kitchen returns the kitchen worker at KitchenShare.
func Kitchen() Worker {
	return NewWorker(KitchenID, Percentage(KitchenShare))
}

// HourlyStaff creates hourly workers in id order.
func HourlyStaff(hours map[string]float64) []Worker {
	ids := make([]string, 0, len(hours))
	for id := range hours {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	workers := make([]Worker, 0, len(ids))
	for _, id := range ids {
		workers = append(workers, NewWorker(id, Hourly(hours[id])))
	}
	return workers
}

// Staff puts first ahead of the rest. The first worker absorbs the rounding
// residue, so it is usually the kitchen.
func Staff(first Worker, rest ...Worker) []Worker {
	return append([]Worker{first}, rest...)
}

// Week merges shifts into one settled record.
func Week(shifts ...*generic.Engine) *generic.Engine {
	return generic.CombineAll(shifts...)
}
